package cli

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/muhammadmuzzammil1998/jsonc"
)

// loadYAML is a [kong.ConfigurationLoader] for YAML configuration files.
//
// Keys are flag names; hyphens may be written as underscores, and nested
// mappings join their keys with hyphens, so the following are equivalent:
//
//	log-level: debug
//	log_level: debug
//	log:
//	  level: debug
//
// Repeatable flags take a sequence:
//
//	target:
//	  - index.html
//	  - "pages/**/*.html"
//
// Command-line flags override configuration file values.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return config{}, nil
	}

	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%s", yaml.FormatError(err, false, true))
	}

	return makeConfig(doc), nil
}

// loadJSONC is a [kong.ConfigurationLoader] for JSON configuration files that
// may contain JavaScript-style comments. Keys follow the rules of
// [loadYAML].
func loadJSONC(r io.Reader) (kong.Resolver, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return config{}, nil
	}

	var doc map[string]any
	if err := jsonc.Unmarshal(b, &doc); err != nil {
		return nil, err
	}

	return makeConfig(doc), nil
}

// config implements [kong.Resolver] for configuration files.
type config map[string]any

func makeConfig(doc map[string]any) config {
	c := make(config, len(doc))
	c.add("", doc)

	return c
}

func (c config) add(prefix string, doc map[string]any) {
	for key, value := range doc {
		name := strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			name = prefix + "-" + name
		}

		if sub, ok := value.(map[string]any); ok {
			c.add(name, sub)

			continue
		}

		if value = flagValue(value); value != nil {
			c[name] = value
		}
	}
}

// flagValue converts a decoded configuration value to a form kong can parse.
// Kong requires numbers as strings.
func flagValue(v any) any {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		out := make([]any, 0, len(v))
		for _, e := range v {
			if e = flagValue(e); e != nil {
				out = append(out, e)
			}
		}

		return out
	default:
		return v
	}
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Keys were normalized to hyphens when loaded; accept either form of the
	// flag name anyway.
	for _, name := range []string{flag.Name, strings.ReplaceAll(flag.Name, "_", "-")} {
		if value, ok := c[name]; ok {
			return value, nil
		}
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}
