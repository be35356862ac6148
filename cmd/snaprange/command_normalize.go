package main

import (
	"fmt"

	"github.com/shibukawa/snaprange/formatter"
)

// NormalizeCmd represents the normalize command
type NormalizeCmd struct {
	ParseFlags `embed:""`

	Expressions []string `arg:"" optional:"" help:"Range expressions (default: one per line from stdin)"`
	MinSpan     int      `help:"Shortest run of consecutive values written as a span" default:"2"`
}

// Run executes the normalize command
func (cmd *NormalizeCmd) Run(ctx *Context) error {
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

	rangeFormatter := formatter.NewRangeFormatter().WithMinSpan(cmd.MinSpan)

	for _, input := range inputs {
		normalized, err := rangeFormatter.Normalize(input, options)
		if err != nil {
			return fmt.Errorf("%q: %w", input, err)
		}

		ctx.Verbosef("%s -> %s", input, normalized)
		fmt.Fprintln(ctx.Stdout, normalized)
	}

	return nil
}
