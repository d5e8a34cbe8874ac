package cmd

import "github.com/ardnew/sitegen/site"

var (
	ErrMarshal     = site.NewError("marshal keys")
	ErrWriteConfig = site.NewError("write configuration file")
	ErrFileExists  = site.NewError("file exists (use --force to overwrite)")
)
