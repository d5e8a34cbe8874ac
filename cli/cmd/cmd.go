package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type projectKey struct{}

// WithProject returns a new context.Context containing the project
// configuration shared by all commands.
func WithProject(ctx context.Context, p Project) context.Context {
	return context.WithValue(ctx, projectKey{}, p)
}

// projectFrom returns the project stored by [WithProject], or the default
// project if none was stored.
func projectFrom(ctx context.Context) Project {
	p, ok := ctx.Value(projectKey{}).(Project)
	if !ok {
		return Project{}
	}

	return p
}

type stdoutKey struct{}

// WithStdout returns a new context.Context whose commands write their output
// to w instead of [os.Stdout].
func WithStdout(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

func stdoutFrom(ctx context.Context) io.Writer {
	w, ok := ctx.Value(stdoutKey{}).(io.Writer)
	if !ok || w == nil {
		return os.Stdout
	}

	return w
}
