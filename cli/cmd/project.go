package cmd

import (
	"github.com/alecthomas/kong"

	"github.com/ardnew/sitegen/build"
)

// Project holds the flags describing the site being built. Relative paths
// are relative to Root.
type Project struct {
	Root   string   `default:"${projectRoot}"   help:"Project root directory."                                  short:"C"`
	Data   string   `default:"${projectData}"   help:"Site data document."                                      placeholder:"FILE"`
	Output string   `default:"${projectOutput}" help:"Generated data script."                                   placeholder:"FILE"`
	Global string   `default:"${projectGlobal}" help:"Window property assigned by the data script."             placeholder:"NAME"`
	Title  string   `                           help:"Site title shown in the data script header."`
	Target []string `default:"${projectTarget}" help:"Target file or doublestar pattern (repeatable)."          placeholder:"GLOB" sep:"none"`
	Schema string   `                           help:"JSON Schema (JSON or JSONC) the site data must satisfy." placeholder:"FILE"`
}

// ProjectVars returns the kong variables holding the defaults of [Project].
func ProjectVars() kong.Vars {
	def := build.DefaultConfig()

	return kong.Vars{
		"projectRoot":   def.Root,
		"projectData":   def.Data,
		"projectOutput": def.Output,
		"projectGlobal": def.Global,
		"projectTarget": def.Targets[0],
	}
}

// ProjectGroup returns the kong help group of the project flags.
func ProjectGroup() kong.Group {
	return kong.Group{Key: "project", Title: "Project options"}
}

// Config returns the build configuration described by p.
func (p Project) Config() build.Config {
	return build.Config{
		Root:    p.Root,
		Data:    p.Data,
		Output:  p.Output,
		Global:  p.Global,
		Title:   p.Title,
		Targets: p.Target,
		Schema:  p.Schema,
	}
}
