package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/tcalc/lang"
)

// Fmt parses a time expression and prints it back in canonical form, or as
// a JSON or YAML parse tree.
type Fmt struct {
	Tree   bool `help:"Emit the parse tree as indented text."        xor:"encoding"`
	JSON   bool `help:"Emit the parse tree as JSON."                 xor:"encoding"`
	YAML   bool `help:"Emit the parse tree as YAML."                 xor:"encoding"`
	Indent int  `help:"Indent width for JSON and YAML output." default:"2" short:"i"`

	Expr []string `arg:"" help:"Expression to format (reads stdin when omitted)" name:"expr" optional:""`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context) error {
	input, err := readExpression(f.Expr)
	if err != nil {
		return err
	}

	node, err := parseExpression(ctx, input)
	if err != nil {
		return err
	}

	switch {
	case f.Tree:
		fmt.Print(lang.FormatTree(node))

	case f.JSON:
		marshal := func(v any) ([]byte, error) {
			if f.Indent <= 0 {
				return json.Marshal(v)
			}

			return json.MarshalIndent(v, "", strings.Repeat(" ", f.Indent))
		}

		data, err := marshal(lang.MarshalNode(node))
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		fmt.Println(string(data))

	case f.YAML:
		data, err := yaml.MarshalWithOptions(
			lang.MarshalNode(node), yaml.Indent(f.Indent),
		)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = os.Stdout.Write(data)
		if err != nil {
			return err
		}

	default:
		fmt.Println(lang.FormatNode(node))
	}

	return nil
}
