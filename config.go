package snaprange

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/shibukawa/snaprange/filter"
	"github.com/shibukawa/snaprange/parser"
)

// Config represents the snaprange configuration
type Config struct {
	Parse  ParseConfig  `yaml:"parse" toml:"parse"`
	Output OutputConfig `yaml:"output" toml:"output"`
	// Filter is a default CEL predicate applied by the expand command.
	Filter string `yaml:"filter" toml:"filter"`
}

// ParseConfig represents parser settings
type ParseConfig struct {
	Strict        bool   `yaml:"strict" toml:"strict"`
	ReversedSpans string `yaml:"reversed_spans" toml:"reversed_spans"`
	// MaxValues is a pointer so that an explicit 0 (unlimited) differs from unset.
	MaxValues *int `yaml:"max_values" toml:"max_values"`
}

// OutputConfig represents CLI output settings
type OutputConfig struct {
	Format    string `yaml:"format" toml:"format"`
	Separator string `yaml:"separator" toml:"separator"`
	Color     *bool  `yaml:"color" toml:"color"`
}

// IsColorEnabled returns true if colored output is enabled (default: true)
func (o *OutputConfig) IsColorEnabled() bool {
	if o.Color == nil {
		return true
	}

	return *o.Color
}

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ParserOptions converts the parse section into parser.Options.
func (c *Config) ParserOptions() (parser.Options, error) {
	policy, err := parser.ParseReversedSpanPolicy(c.Parse.ReversedSpans)
	if err != nil {
		return parser.Options{}, err
	}

	options := parser.Options{
		Strict:        c.Parse.Strict,
		ReversedSpans: policy,
		MaxValues:     parser.DefaultMaxValues,
	}
	if c.Parse.MaxValues != nil {
		options.MaxValues = *c.Parse.MaxValues
	}

	return options, nil
}

// LoadConfig loads configuration from the specified file. Files ending in
// .toml are decoded as TOML, everything else as YAML.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Check if config file exists
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		// Return default configuration if file doesn't exist
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := decodeConfig(configPath, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(config)
	expandConfigEnvVars(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// decodeConfig decodes YAML or TOML. Both reject unknown fields.
func decodeConfig(configPath string, data []byte) (*Config, error) {
	var config Config

	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		meta, err := toml.Decode(string(data), &config)
		if err != nil {
			return nil, err
		}

		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown field %q", ErrConfigValidation, undecoded[0].String())
		}

		return &config, nil
	}

	// Parse YAML with strict mode to detect unknown fields
	err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	if _, err := parser.ParseReversedSpanPolicy(config.Parse.ReversedSpans); err != nil {
		return fmt.Errorf("%w: parse.reversed_spans: %w", ErrConfigValidation, err)
	}

	if config.Parse.MaxValues != nil && *config.Parse.MaxValues < 0 {
		return fmt.Errorf("%w: parse.max_values must be non-negative, got %d", ErrConfigValidation, *config.Parse.MaxValues)
	}

	validFormats := map[string]bool{
		FormatText: true,
		FormatJSON: true,
		FormatYAML: true,
	}
	if !validFormats[config.Output.Format] {
		return fmt.Errorf("%w: output.format '%s' is invalid: must be one of text, json, yaml", ErrConfigValidation, config.Output.Format)
	}

	if config.Filter != "" {
		if _, err := filter.Compile(config.Filter); err != nil {
			return fmt.Errorf("%w: filter: %w", ErrConfigValidation, err)
		}
	}

	return nil
}

// intPtr returns a pointer to an int value
func intPtr(i int) *int {
	return &i
}

// boolPtr returns a pointer to a bool value
func boolPtr(b bool) *bool {
	return &b
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Parse: ParseConfig{
			Strict:        false,
			ReversedSpans: parser.ReversedEmpty.String(),
			MaxValues:     intPtr(parser.DefaultMaxValues),
		},
		Output: OutputConfig{
			Format:    FormatText,
			Separator: ",",
			Color:     boolPtr(true),
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	defaults := getDefaultConfig()

	if config.Parse.ReversedSpans == "" {
		config.Parse.ReversedSpans = defaults.Parse.ReversedSpans
	}

	if config.Parse.MaxValues == nil {
		config.Parse.MaxValues = defaults.Parse.MaxValues
	}

	if config.Output.Format == "" {
		config.Output.Format = defaults.Output.Format
	}

	if config.Output.Separator == "" {
		config.Output.Separator = defaults.Output.Separator
	}

	if config.Output.Color == nil {
		config.Output.Color = defaults.Output.Color
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	// Try to load .env file from current directory
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareEnvVar   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		return os.Getenv(varName)
	})

	s = bareEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		return os.Getenv(varName)
	})

	return s
}

// expandConfigEnvVars expands environment variables in string settings
func expandConfigEnvVars(config *Config) {
	config.Parse.ReversedSpans = expandEnvVars(config.Parse.ReversedSpans)
	config.Output.Format = expandEnvVars(config.Output.Format)
	config.Output.Separator = expandEnvVars(config.Output.Separator)
	config.Filter = expandEnvVars(config.Filter)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
