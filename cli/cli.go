package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/tcalc/cli/cmd"
	"github.com/ardnew/tcalc/pkg"
)

// CLI is the top-level command-line interface for tcalc.
type CLI struct {
	Log    logConfig       `embed:"" group:"log"    prefix:"log-"`
	Pprof  pprofConfig     `embed:"" group:"pprof"  prefix:"pprof-"`
	Render cmd.RenderFlags `embed:"" group:"render"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Init cmd.Init `cmd:"" help:"Initialize configuration file"`
	Fmt  cmd.Fmt  `cmd:"" help:"Parse an expression and print it back formatted"`

	Eval cmd.Eval `cmd:"" default:"withargs" help:"Evaluate a time expression"`
}

// Run executes the tcalc CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(configFile)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
		"version":            pkg.Name + " " + strings.TrimSpace(pkg.Version),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{
				cli.Log.group(),
				cli.Pprof.group(),
				{Key: "render", Title: "Rendering options"},
			},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolveYAML, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Commands reach the kong model through the context.
	ctx = cmd.WithContext(ctx, ktx)
	ktx.BindTo(ctx, (*context.Context)(nil))

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// No-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command with the render flags bound.
	return ktx.Run(&cli.Render)
}
