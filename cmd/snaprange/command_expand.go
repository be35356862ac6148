package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/shibukawa/snaprange"
	"github.com/shibukawa/snaprange/filter"
)

// ExpandCmd represents the expand command
type ExpandCmd struct {
	ParseFlags `embed:""`

	Expressions []string `arg:"" optional:"" help:"Range expressions (default: one per line from stdin)"`
	Format      string   `short:"f" help:"Output format: text, json or yaml (default: from config)"`
	Separator   string   `short:"s" help:"Value separator for text output (default: from config)"`
	Where       string   `short:"w" help:"CEL predicate over n selecting the values to print, e.g. 'n % 2 == 0'"`
}

type expandResult struct {
	Expression string `json:"expression" yaml:"expression"`
	Values     []int  `json:"values" yaml:"values"`
}

// Run executes the expand command
func (cmd *ExpandCmd) Run(ctx *Context) error {
	config, err := ctx.LoadConfig()
	if err != nil {
		return err
	}

	options, err := cmd.Options(config)
	if err != nil {
		return err
	}

	format := cmd.Format
	if format == "" {
		format = config.Output.Format
	}

	separator := cmd.Separator
	if separator == "" {
		separator = config.Output.Separator
	}

	where := cmd.Where
	if where == "" {
		where = config.Filter
	}

	var predicate *filter.Predicate

	if where != "" {
		predicate, err = filter.Compile(where)
		if err != nil {
			return fmt.Errorf("invalid --where expression: %w", err)
		}

		ctx.Verbosef("Filtering with %s", predicate)
	}

	inputs, err := inputsOrStdin(cmd.Expressions, ctx.Stdin)
	if err != nil {
		return err
	}

	results := make([]expandResult, 0, len(inputs))

	for _, input := range inputs {
		values, err := snaprange.ParseWithOptions(input, options)
		if err != nil {
			return fmt.Errorf("%q: %w", input, err)
		}

		if predicate != nil {
			values, err = predicate.Apply(values)
			if err != nil {
				return err
			}
		}

		ctx.Verbosef("%s: %d value(s)", input, len(values))

		results = append(results, expandResult{
			Expression: input,
			Values:     values,
		})
	}

	return writeResults(ctx.Stdout, results, format, separator)
}

// writeResults prints the expansions in the requested format
func writeResults(w io.Writer, results []expandResult, format, separator string) error {
	switch format {
	case snaprange.FormatText:
		for _, result := range results {
			fmt.Fprintln(w, joinInts(result.Values, separator))
		}

		return nil
	case snaprange.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(results)
	case snaprange.FormatYAML:
		data, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}

		_, err = w.Write(data)

		return err
	default:
		return fmt.Errorf("%w: %s (must be text, json or yaml)", ErrUnknownFormat, format)
	}
}
