package main

import (
	"fmt"

	"github.com/shibukawa/snaprange/formatter"
)

// CompressCmd represents the compress command
type CompressCmd struct {
	Values  []string `arg:"" optional:"" help:"Values separated by spaces or commas (default: stdin)"`
	MinSpan int      `help:"Shortest run of consecutive values written as a span" default:"2"`
}

// Run executes the compress command
func (cmd *CompressCmd) Run(ctx *Context) error {
	if _, err := ctx.LoadConfig(); err != nil {
		return err
	}

	inputs, err := inputsOrStdin(cmd.Values, ctx.Stdin)
	if err != nil {
		return err
	}

	values, err := splitValues(inputs)
	if err != nil {
		return err
	}

	ctx.Verbosef("Compressing %d value(s)", len(values))

	expr, err := formatter.NewRangeFormatter().WithMinSpan(cmd.MinSpan).Format(values)
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.Stdout, expr)

	return nil
}
