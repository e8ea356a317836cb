package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/tcalc/lang"
	"github.com/ardnew/tcalc/log"
)

// Eval parses and evaluates a time expression and prints the result.
type Eval struct {
	Expr []string `arg:"" help:"Expression to evaluate (reads stdin when omitted)" name:"expr" optional:""`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context, render *RenderFlags) error {
	input, err := readExpression(e.Expr)
	if err != nil {
		return err
	}

	node, err := parseExpression(ctx, input)
	if err != nil {
		return err
	}

	now, err := render.Instant()
	if err != nil {
		return err
	}

	val, err := lang.Evaluate(node, now)
	if err != nil {
		return err
	}

	log.TraceContext(ctx, "evaluated expression",
		slog.String("input", input),
		slog.String("result", val.String()),
	)

	cfg, err := render.Config()
	if err != nil {
		return err
	}

	out, err := cfg.Render(val)
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}
