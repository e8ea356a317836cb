package cmd

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ardnew/tcalc/lang"
	"github.com/ardnew/tcalc/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
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

// RenderFlags holds the output flags shared by commands that print expression
// results. It is embedded in the top-level CLI and bound so command Run
// methods receive it directly.
type RenderFlags struct {
	Format  string `help:"Render instants with a strftime pattern."                       placeholder:"PATTERN" short:"f"`
	Zone    string `help:"Shift rendered instants into a fixed UTC offset."               placeholder:"±HH:MM"  short:"z"`
	Seconds bool   `help:"Render durations as a raw signed second count."`
	Now     string `help:"Override the current time with an RFC 3339 datetime."           placeholder:"TIME"`
}

// Config converts the flags into a [lang.RenderConfig].
func (f *RenderFlags) Config() (lang.RenderConfig, error) {
	zone, err := lang.ParseZone(f.Zone)
	if err != nil {
		return lang.RenderConfig{}, ErrInvalidZone.Wrap(err)
	}

	return lang.RenderConfig{
		Pattern: f.Format,
		Zone:    zone,
		Seconds: f.Seconds,
	}, nil
}

// Instant returns the instant that expressions evaluate "now" against:
// the wall clock, or the --now override when given.
func (f *RenderFlags) Instant() (time.Time, error) {
	if f.Now == "" {
		return time.Now(), nil
	}

	t, err := time.Parse(time.RFC3339, f.Now)
	if err != nil {
		return time.Time{}, ErrInvalidNow.Wrap(err)
	}

	return t, nil
}

// readExpression returns the expression text: the positional arguments
// joined with spaces, or all of stdin when no arguments were given.
func readExpression(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	buf, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", ErrReadInput.Wrap(err)
	}

	return strings.TrimSpace(string(buf)), nil
}

// parseExpression parses input and logs the offending span on failure.
func parseExpression(ctx context.Context, input string) (lang.Node, error) {
	node, err := lang.ParseString(input)
	if err != nil {
		if snippet := lang.Snippet(input, err); snippet != "" {
			log.DebugContext(ctx, "parse failed\n"+snippet)
		}

		return nil, err
	}

	return node, nil
}
