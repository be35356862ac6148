package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shibukawa/snaprange/parser"
)

// ValidateCmd represents the validate command
type ValidateCmd struct {
	ParseFlags `embed:""`

	Expressions []string `arg:"" optional:"" help:"Range expressions (default: one per line from stdin)"`
}

// Run executes the validate command
func (cmd *ValidateCmd) Run(ctx *Context) error {
	config, err := ctx.LoadConfig()
	if err != nil {
		return err
	}

	options, err := cmd.Options(config)
	if err != nil {
		return err
	}

	inputs, err := inputsOrStdin(cmd.Expressions, ctx.Stdin)
	if err != nil {
		return err
	}

	ok := color.New(color.FgGreen)
	ng := color.New(color.FgRed)
	failed := 0

	for _, input := range inputs {
		expr, err := parser.Parse(input, options)
		if err != nil {
			failed++

			if !ctx.Quiet {
				ng.Fprintf(ctx.Stdout, "NG  %s: %v\n", input, err)
			}

			continue
		}

		if !ctx.Quiet {
			ok.Fprintf(ctx.Stdout, "OK  %s (%d values)\n", input, expr.Len())
		}
	}

	ctx.Verbosef("%d of %d expression(s) valid", len(inputs)-failed, len(inputs))

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidExpressions, failed, len(inputs))
	}

	return nil
}
