package site

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Delimiter is the line that opens and closes the front matter block.
const Delimiter = "---"

var bom = []byte("\ufeff")

// Data is the parsed site data: a nested mapping whose key order follows
// the source document. Mappings are stored as [yaml.MapSlice] and sequences
// as []any. Data is never modified after it is created.
type Data struct {
	root yaml.MapSlice
}

// NewData returns Data for the given root mapping.
func NewData(root yaml.MapSlice) *Data {
	return &Data{root: root}
}

// Root returns the root mapping.
func (d *Data) Root() yaml.MapSlice {
	if d == nil {
		return nil
	}

	return d.root
}

// LoadFile reads the document at path and loads its front matter.
func LoadFile(path string) (*Data, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrReadData.With(slog.String("path", path)).Wrap(err)
	}

	d, err := Load(doc)
	if err != nil {
		if e, ok := err.(*Error); ok {
			return nil, e.With(slog.String("path", path))
		}

		return nil, err
	}

	return d, nil
}

// Load extracts the front matter block from doc and parses it.
func Load(doc []byte) (*Data, error) {
	block, err := FrontMatter(doc)
	if err != nil {
		return nil, err
	}

	return Parse(block)
}

// FrontMatter returns the text between the opening delimiter, which must be
// the first line of doc, and the next line consisting of the delimiter
// alone. Surrounding whitespace on delimiter lines and a leading byte order
// mark are ignored.
func FrontMatter(doc []byte) ([]byte, error) {
	lines := strings.Split(string(bytes.TrimPrefix(doc, bom)), "\n")

	if strings.TrimRight(lines[0], " \t\r") != Delimiter {
		return nil, ErrFormat.Wrap(ErrOpenDelimiter)
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == Delimiter {
			block := lines[1:i]
			for j, line := range block {
				block[j] = strings.TrimSuffix(line, "\r")
			}

			return []byte(strings.Join(block, "\n")), nil
		}
	}

	return nil, ErrFormat.Wrap(ErrCloseDelimiter)
}

// Parse decodes a YAML document whose root must be a mapping.
func Parse(src []byte) (*Data, error) {
	var v any

	err := yaml.UnmarshalWithOptions(src, &v, yaml.UseOrderedMap())
	if err != nil {
		return nil, ErrFormat.Wrap(fmt.Errorf("%w: %s", ErrSyntax,
			yaml.FormatError(err, false, true)))
	}

	root, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, ErrFormat.
			With(slog.String("root", kindOf(v))).
			Wrap(ErrNotMapping)
	}

	return NewData(root), nil
}

// kindOf names the YAML kind of a decoded value for diagnostics.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case yaml.MapSlice, map[string]any:
		return "mapping"
	case []any:
		return "sequence"
	default:
		return "scalar"
	}
}
