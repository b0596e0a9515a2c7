// Package config defines core configuration types for gomdedit.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

// Flavor selects the parser used to turn markdown text into a document.
type Flavor string

const (
	// FlavorNative is the reduced two-pass grammar of pkg/parser/markdown.
	FlavorNative Flavor = "native"
	// FlavorGoldmark is CommonMark via goldmark.
	FlavorGoldmark Flavor = "goldmark"
	// FlavorGFM is goldmark with the GitHub Flavored Markdown extensions.
	FlavorGFM Flavor = "gfm"
)

// IsValid returns true if the flavor is known.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorNative, FlavorGoldmark, FlavorGFM:
		return true
	default:
		return false
	}
}

// LogLevel names a charmbracelet/log level.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// IsValid returns true if the level is known.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParserConfig selects and tunes the markdown parser.
type ParserConfig struct {
	Flavor Flavor `mapstructure:"flavor" yaml:"flavor"`
}

// RenderConfig holds the class names the renderer puts on syntax fragments.
type RenderConfig struct {
	// SyntaxClass is set on every syntax fragment.
	SyntaxClass string `mapstructure:"syntax_class" yaml:"syntax_class"`

	// VisibleClass and HiddenClass toggle with cursor proximity.
	VisibleClass string `mapstructure:"visible_class" yaml:"visible_class"`
	HiddenClass  string `mapstructure:"hidden_class" yaml:"hidden_class"`

	// DetectCodeLanguage adds a guessed language class to unlabeled code
	// blocks. Nil means unset, so a lower-precedence layer decides.
	DetectCodeLanguage *bool `mapstructure:"detect_code_language" yaml:"detect_code_language,omitempty"`
}

// DetectEnabled reports whether code language detection is on.
func (r RenderConfig) DetectEnabled() bool {
	return r.DetectCodeLanguage != nil && *r.DetectCodeLanguage
}

// Config is the root configuration structure for gomdedit.
type Config struct {
	Parser ParserConfig `mapstructure:"parser" yaml:"parser"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`

	// LogLevel is the minimum level written to stderr.
	LogLevel LogLevel `mapstructure:"log_level" yaml:"log_level"`

	// CLI-level options (not persisted to config files).

	// Format is the output format of commands that print a document.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Output is the file to write instead of stdout.
	Output string `mapstructure:"-" yaml:"-"`

	// Color controls styled terminal output.
	Color ColorMode `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	detect := false
	return &Config{
		Parser: ParserConfig{Flavor: FlavorNative},
		Render: RenderConfig{
			SyntaxClass:        "md-syntax",
			VisibleClass:       "md-syntax-visible",
			HiddenClass:        "md-syntax-hidden",
			DetectCodeLanguage: &detect,
		},
		LogLevel: LogLevelWarn,
		Format:   FormatMarkdown,
		Color:    ColorAuto,
	}
}
