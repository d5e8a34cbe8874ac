package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/sitegen/site"
)

// Keys prints every placeholder key defined by the site data with the text
// it is replaced by, in document order.
type Keys struct {
	Format string `default:"text" enum:"text,json,yaml" help:"Output format (${enum})." short:"o"`
	Indent int    `default:"2"                          help:"Indent width for JSON and YAML output." short:"i"`
}

// Run executes the keys command.
func (k *Keys) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cfg := projectFrom(ctx).Config().WithDefaults()
	w := stdoutFrom(ctx)

	data, err := site.LoadFile(cfg.Path(cfg.Data))
	if err != nil {
		return err
	}

	leaves := data.Flatten()

	var out []byte

	switch k.Format {
	case "json":
		out, err = k.json(leaves)
	case "yaml":
		out, err = k.yaml(leaves)
	default:
		out = k.text(w, leaves)
	}

	if err != nil {
		return ErrMarshal.With(slog.String("format", k.Format)).Wrap(err)
	}

	_, err = w.Write(out)

	return err
}

// ordered returns the leaves as an ordered mapping from key to substitution
// text. Null leaves map to nil.
func ordered(leaves []site.Leaf) yaml.MapSlice {
	items := make(yaml.MapSlice, 0, len(leaves))

	for _, leaf := range leaves {
		var value any
		if text, ok := site.Text(leaf.Value); ok {
			value = text
		}

		items = append(items, yaml.MapItem{Key: leaf.Path, Value: value})
	}

	return items
}

func (k *Keys) json(leaves []site.Leaf) ([]byte, error) {
	compact, err := site.NewData(ordered(leaves)).MarshalJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", strings.Repeat(" ", k.Indent)); err != nil {
		return nil, err
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func (k *Keys) yaml(leaves []site.Leaf) ([]byte, error) {
	if len(leaves) == 0 {
		return []byte("{}\n"), nil
	}

	return yaml.MarshalWithOptions(ordered(leaves), yaml.Indent(k.Indent))
}

// text aligns values in a column. Keys are colorized if w is a terminal.
func (k *Keys) text(w io.Writer, leaves []site.Leaf) []byte {
	var buf bytes.Buffer

	width := 0
	for _, leaf := range leaves {
		width = max(width, len(leaf.Path))
	}

	r := lipgloss.NewRenderer(w)
	key := r.NewStyle().Foreground(lipgloss.Color("5"))
	null := r.NewStyle().Faint(true)

	for _, leaf := range leaves {
		pad := strings.Repeat(" ", width-len(leaf.Path))

		text, ok := site.Text(leaf.Value)
		if !ok {
			text = null.Render("null")
		}

		fmt.Fprintf(&buf, "%s%s  %s\n", key.Render(leaf.Path), pad, text)
	}

	return buf.Bytes()
}
