package site

import (
	"bytes"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/muhammadmuzzammil1998/jsonc"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a compiled JSON Schema that site data must satisfy.
type Schema struct {
	path   string
	schema *jsonschema.Schema
}

// LoadSchema compiles the JSON Schema at path. The schema file may contain
// JavaScript-style comments.
func LoadSchema(path string) (*Schema, error) {
	fail := ErrSchema.With(slog.String("schema", path))

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fail.Wrap(err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonc.ToJSON(b)))
	if err != nil {
		return nil, fail.Wrap(err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fail.Wrap(err)
	}

	// A file URL lets relative $ref values resolve next to the schema.
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	loc := (&url.URL{Scheme: "file", Path: p}).String()

	c := jsonschema.NewCompiler()
	if err := c.AddResource(loc, doc); err != nil {
		return nil, fail.Wrap(err)
	}

	s, err := c.Compile(loc)
	if err != nil {
		return nil, fail.Wrap(err)
	}

	return &Schema{path: path, schema: s}, nil
}

// Validate checks d against the schema.
func (s *Schema) Validate(d *Data) error {
	fail := ErrSchema.With(slog.String("schema", s.path))

	raw, err := d.MarshalJSON()
	if err != nil {
		return fail.Wrap(err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fail.Wrap(err)
	}

	if err := s.schema.Validate(inst); err != nil {
		return fail.Wrap(err)
	}

	return nil
}
