package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/tcalc/log"
	"github.com/ardnew/tcalc/profile"
)

// defaultConfigIndent is the number of spaces used when generating the
// default configuration file.
const defaultConfigIndent = 2

// defaultConfigMode is the permission mode for the generated file.
const defaultConfigMode os.FileMode = 0o600

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	_, err := os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalWithOptions(
		i.flagValues(ktx), yaml.Indent(defaultConfigIndent),
	)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	err = os.WriteFile(confPath, data, defaultConfigMode)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// flagValues collects the current value of every persistable flag, keyed by
// flag name as the configuration resolver expects.
func (i *Init) flagValues(ktx *kong.Context) map[string]any {
	// Flags that control invocation rather than configuration.
	ignore := []string{"help", "version", "force", "now", profile.Tag}

	values := make(map[string]any)

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		switch v := ktx.FlagValue(flag).(type) {
		case nil:
			continue

		case bool, string, int, int64, uint, uint64, float64:
			if s, ok := v.(string); ok && s == "" {
				continue
			}

			values[flag.Name] = v

		default:
			values[flag.Name] = fmt.Sprint(v)
		}
	}

	return values
}
