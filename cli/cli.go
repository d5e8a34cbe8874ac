package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/sitegen/cli/cmd"
	"github.com/ardnew/sitegen/pkg"
)

// CLI is the top-level command-line interface for sitegen.
type CLI struct {
	Log     logConfig   `embed:"" group:"log"     prefix:"log-"`
	Pprof   pprofConfig `embed:"" group:"pprof"   prefix:"pprof-"`
	Project cmd.Project `embed:"" group:"project"`

	Version kong.VersionFlag `help:"Print version and exit."`

	Init cmd.Init `cmd:"" help:"Write a project configuration file with the current flag values."`
	Keys cmd.Keys `cmd:"" help:"List the placeholder keys defined by the site data."`

	Build cmd.Build `cmd:"" default:"withargs" help:"Substitute placeholders and regenerate the data script."`
}

// configFiles returns the configuration files consulted for flag defaults.
// Files later in the list take precedence.
func configFiles() (yamlFiles, jsoncFiles []string) {
	if user := userConfigPath(); user != "" {
		yamlFiles = append(yamlFiles, user)
	}

	yamlFiles = append(yamlFiles, projectConfigHidden, projectConfigYAML)
	jsoncFiles = append(jsoncFiles, projectConfigJSONC)

	return yamlFiles, jsoncFiles
}

// Run executes the sitegen CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{
		cmd.ConfigIdentifier: projectConfigYAML,
		"version":            pkg.Name + " " + pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars()).
		CloneWith(cmd.ProjectVars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	cli.Log.scan(args)

	yamlFiles, jsoncFiles := configFiles()

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group(), cmd.ProjectGroup()},
		),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(loadYAML, yamlFiles...),
		kong.Configuration(loadJSONC, jsoncFiles...),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithProject(ctx, cli.Project)

	ktx.BindTo(ctx, (*context.Context)(nil))

	// Execute the selected command
	return ktx.Run()
}
