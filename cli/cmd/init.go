package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/natefinch/atomic"

	"github.com/ardnew/sitegen/log"
	"github.com/ardnew/sitegen/pkg"
	"github.com/ardnew/sitegen/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the configuration file.
const defaultConfigIndent = 2

// ignoreFlags are never written to the configuration file. The file lives
// in the project root, so recording the root itself is meaningless.
var ignoreFlags = []string{"help", "version", "root"}

// Init writes a project configuration file with the current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath := filepath.Join(projectFrom(ctx).Config().WithDefaults().Root, configName(ktx))

	// Check if file exists and force not set
	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	b, err := yaml.MarshalWithOptions(i.document(ktx),
		yaml.Indent(defaultConfigIndent),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	err = atomic.WriteFile(confPath, bytes.NewReader(b))
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// configName returns the configuration file name from the kong variables,
// falling back to "sitegen.yaml".
func configName(ktx *kong.Context) string {
	if ktx != nil {
		if name, ok := ktx.Model.Vars()[ConfigIdentifier]; ok && name != "" {
			return name
		}
	}

	return pkg.Name + ".yaml"
}

// document returns the set application-level flags in declaration order.
func (i *Init) document(ktx *kong.Context) yaml.MapSlice {
	doc := yaml.MapSlice{}
	if ktx == nil {
		return doc
	}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.Contains(ignoreFlags, flag.Name) ||
			(flag.Group != nil && flag.Group.Key == profile.Tag) {
			continue
		}

		if val := flagValue(ktx.FlagValue(flag)); val != nil {
			doc = append(doc, yaml.MapItem{Key: flag.Name, Value: val})
		}
	}

	return doc
}

// flagValue returns the configuration value of a flag, or nil if the flag
// holds an empty value.
func flagValue(val any) any {
	if val == nil {
		return nil
	}

	rv := reflect.ValueOf(val)

	switch rv.Kind() {
	case reflect.String:
		if rv.Len() == 0 {
			return nil
		}

		return rv.String()

	case reflect.Slice:
		if rv.Len() == 0 {
			return nil
		}

		return val

	default:
		return val
	}
}
