package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultGlobal is the name of the global variable assigned by [Export].
const DefaultGlobal = "SITE_DATA"

// exportIndent is the indentation of one nesting level in exported data.
const exportIndent = "  "

var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

type exportConfig struct {
	global    string
	title     string
	source    string
	generator string
}

// ExportOption configures [Export].
type ExportOption func(exportConfig) exportConfig

// WithGlobal sets the name of the assigned window property.
func WithGlobal(name string) ExportOption {
	return func(c exportConfig) exportConfig {
		c.global = name

		return c
	}
}

// WithTitle sets the site title shown in the header comment.
func WithTitle(title string) ExportOption {
	return func(c exportConfig) exportConfig {
		c.title = title

		return c
	}
}

// WithSource sets the data document path named in the header comment.
func WithSource(path string) ExportOption {
	return func(c exportConfig) exportConfig {
		c.source = path

		return c
	}
}

// WithGenerator sets the command named in the header comment.
func WithGenerator(name string) ExportOption {
	return func(c exportConfig) exportConfig {
		c.generator = name

		return c
	}
}

// Export renders d as a script that assigns the complete data structure to
// a window property, preceded by a header comment marking the file as
// generated. Key order is preserved, nesting is indented by two spaces, and
// non-ASCII text is written as is. The result is meant to replace any
// previous export in full.
func Export(d *Data, opts ...ExportOption) ([]byte, error) {
	cfg := exportConfig{global: DefaultGlobal, generator: "sitegen"}
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	if !identPattern.MatchString(cfg.global) {
		return nil, ErrExport.
			With(slog.String("global", cfg.global)).
			Wrap(fmt.Errorf("invalid identifier %q", cfg.global))
	}

	var buf bytes.Buffer

	title := "Site Data"
	if cfg.title != "" {
		title = cfg.title + " " + title
	}

	fmt.Fprintf(&buf, "/**\n * %s\n", title)
	fmt.Fprintf(&buf, " * Auto-generated by %s - DO NOT EDIT DIRECTLY\n", cfg.generator)

	if cfg.source != "" {
		fmt.Fprintf(&buf, " * Edit %s instead and run: %s build\n", cfg.source, cfg.generator)
	}

	fmt.Fprintf(&buf, " */\n\nwindow.%s = ", cfg.global)

	if err := writeJSON(&buf, d.Root(), exportIndent, 0); err != nil {
		return nil, ErrExport.Wrap(err)
	}

	buf.WriteString(";\n")

	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler. Non-finite numbers are written as
// JavaScript literals and make the output invalid JSON.
func (d *Data) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	if err := writeJSON(&buf, d.Root(), "", 0); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writeJSON writes v as a JSON literal. With an empty indent the output is
// compact; otherwise members are placed on separate lines.
func writeJSON(buf *bytes.Buffer, v any, indent string, depth int) error {
	if items, ok := entries(v); ok {
		if len(items) == 0 {
			buf.WriteString("{}")

			return nil
		}

		buf.WriteByte('{')

		for i, item := range items {
			if i > 0 {
				buf.WriteByte(',')
			}

			newline(buf, indent, depth+1)

			if err := writeString(buf, keyText(item.Key)); err != nil {
				return err
			}

			buf.WriteByte(':')

			if indent != "" {
				buf.WriteByte(' ')
			}

			if err := writeJSON(buf, item.Value, indent, depth+1); err != nil {
				return err
			}
		}

		newline(buf, indent, depth)
		buf.WriteByte('}')

		return nil
	}

	switch x := v.(type) {
	case nil:
		buf.WriteString("null")

	case string:
		return writeString(buf, x)

	case bool:
		buf.WriteString(strconv.FormatBool(x))

	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		fmt.Fprint(buf, x)

	case float32:
		buf.WriteString(formatNumber(float64(x)))

	case float64:
		buf.WriteString(formatNumber(x))

	case time.Time:
		return writeString(buf, formatTime(x))

	case []any:
		if len(x) == 0 {
			buf.WriteString("[]")

			return nil
		}

		buf.WriteByte('[')

		for i, elem := range x {
			if i > 0 {
				buf.WriteByte(',')
			}

			newline(buf, indent, depth+1)

			if err := writeJSON(buf, elem, indent, depth+1); err != nil {
				return err
			}
		}

		newline(buf, indent, depth)
		buf.WriteByte(']')

	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Errorf("unsupported value of type %T: %w", x, err)
		}

		buf.Write(b)
	}

	return nil
}

func newline(buf *bytes.Buffer, indent string, depth int) {
	if indent == "" {
		return
	}

	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(indent, depth))
}

// writeString writes s as a JSON string without escaping HTML characters or
// non-ASCII text.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer

	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return err
	}

	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))

	return nil
}
