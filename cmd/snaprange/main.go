package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/shibukawa/snaprange"
)

const version = "v0.1.0"

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
	NoColor bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// LoadConfig loads the configuration and applies its color setting.
func (c *Context) LoadConfig() (*snaprange.Config, error) {
	config, err := snaprange.LoadConfig(c.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.NoColor || !config.Output.IsColorEnabled() {
		color.NoColor = true
	}

	return config, nil
}

// Verbosef prints progress information to stderr when --verbose is set.
func (c *Context) Verbosef(format string, args ...any) {
	if !c.Verbose || c.Quiet {
		return
	}

	color.New(color.FgBlue).Fprintf(c.Stderr, format+"\n", args...)
}

// CLI represents the command-line interface
type CLI struct {
	Config    string       `help:"Configuration file path (.yaml or .toml)" default:"snaprange.yaml"`
	Verbose   bool         `help:"Enable verbose output" short:"v"`
	Quiet     bool         `help:"Suppress output" short:"q"`
	NoColor   bool         `help:"Disable colored output"`
	Expand    ExpandCmd    `cmd:"" help:"Expand range expressions into values"`
	Validate  ValidateCmd  `cmd:"" help:"Validate range expressions"`
	Normalize NormalizeCmd `cmd:"" help:"Rewrite range expressions in compact form"`
	Compress  CompressCmd  `cmd:"" help:"Format a list of values as a range expression"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Stdout, "snaprange "+version)
	return nil
}

// run parses args and executes the selected command.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, options ...kong.Option) error {
	var cli CLI

	options = append([]kong.Option{
		kong.Name("snaprange"),
		kong.Description("Expand row range expressions such as 0,6-12."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	}, options...)

	parser, err := kong.New(&cli, options...)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	appCtx := &Context{
		Config:  cli.Config,
		Verbose: cli.Verbose,
		Quiet:   cli.Quiet,
		NoColor: cli.NoColor,
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
	}

	return kctx.Run(appCtx)
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
