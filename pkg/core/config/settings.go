package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	clerror "github.com/msto63/cpplite/pkg/core/error"
)

// Configuration keys
const (
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyMaxSourceBytes = "parser.max_source_bytes"
	KeyValidate       = "parser.validate"
	KeyOutputFormat   = "output.format"
)

// Output formats accepted by output.format
var OutputFormats = []string{"tree", "sexpr", "json", "yaml"}

// Settings holds the typed cpplite configuration
type Settings struct {
	Log    LogSettings    `toml:"log" yaml:"log"`
	Parser ParserSettings `toml:"parser" yaml:"parser"`
	Output OutputSettings `toml:"output" yaml:"output"`
}

// LogSettings holds logging settings
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// ParserSettings holds front end settings
type ParserSettings struct {
	MaxSourceBytes int  `toml:"max_source_bytes" yaml:"max_source_bytes"`
	Validate       bool `toml:"validate" yaml:"validate"`
}

// OutputSettings holds CLI output settings
type OutputSettings struct {
	Format string `toml:"format" yaml:"format"`
}

// DefaultValues returns the default configuration tree
func DefaultValues() map[string]interface{} {
	return map[string]interface{}{
		KeyLogLevel:       "warn",
		KeyLogFormat:      "text",
		KeyMaxSourceBytes: 1 << 20,
		KeyValidate:       false,
		KeyOutputFormat:   "tree",
	}
}

// DefaultSettings returns the settings used when no file is present
func DefaultSettings() Settings {
	return Empty("", DefaultValues()).Settings()
}

// Settings resolves the typed settings, honoring environment overrides
func (c *Config) Settings() Settings {
	defaults := DefaultValues()
	return Settings{
		Log: LogSettings{
			Level:  c.GetString(KeyLogLevel, defaults[KeyLogLevel].(string)),
			Format: c.GetString(KeyLogFormat, defaults[KeyLogFormat].(string)),
		},
		Parser: ParserSettings{
			MaxSourceBytes: c.GetInt(KeyMaxSourceBytes, defaults[KeyMaxSourceBytes].(int)),
			Validate:       c.GetBool(KeyValidate, defaults[KeyValidate].(bool)),
		},
		Output: OutputSettings{
			Format: c.GetString(KeyOutputFormat, defaults[KeyOutputFormat].(string)),
		},
	}
}

// Validate checks the settings for values the CLI cannot use
func (s Settings) Validate() error {
	if s.Parser.MaxSourceBytes < 0 {
		return clerror.New("parser.max_source_bytes must not be negative").
			WithCode(clerror.CodeInvalidConfig).
			WithDetail("value", s.Parser.MaxSourceBytes)
	}

	for _, f := range OutputFormats {
		if strings.EqualFold(s.Output.Format, f) {
			return nil
		}
	}
	return clerror.New(fmt.Sprintf("unknown output.format %q (want one of %s)", s.Output.Format, strings.Join(OutputFormats, ", "))).
		WithCode(clerror.CodeInvalidConfig).
		WithDetail("value", s.Output.Format)
}

// Encode writes the settings as TOML or YAML
func (s Settings) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return clerror.Wrap(err, "failed to encode settings").WithCode(clerror.CodeInternal)
		}
		return enc.Close()
	default:
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return clerror.Wrap(err, "failed to encode settings").WithCode(clerror.CodeInternal)
		}
		return nil
	}
}
