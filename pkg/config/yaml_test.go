package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies detect flag", func(t *testing.T) {
		original := config.NewConfig()
		clone := original.Clone()
		require.NotNil(t, clone.Render.DetectCodeLanguage)

		*clone.Render.DetectCodeLanguage = true
		assert.False(t, *original.Render.DetectCodeLanguage)
	})

	t.Run("preserves all fields", func(t *testing.T) {
		original := config.NewConfig()
		original.Parser.Flavor = config.FlavorGFM
		original.LogLevel = config.LogLevelDebug
		original.Format = config.FormatJSON
		original.Output = "out.json"
		original.Color = config.ColorNever

		clone := original.Clone()
		assert.Equal(t, original, clone)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("nested keys", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Parser.Flavor = config.FlavorGFM

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "parser:\n  flavor: gfm")
		assert.Contains(t, string(data), "syntax_class: md-syntax")
		assert.Contains(t, string(data), "log_level: warn")
	})

	t.Run("CLI fields are not written", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Output = "secret.md"

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.NotContains(t, string(data), "secret.md")
	})

	t.Run("header", func(t *testing.T) {
		data, err := config.NewConfig().ToYAMLWithHeader("# hello")
		require.NoError(t, err)
		assert.Regexp(t, `^# hello\n\nparser:`, string(data))
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte(`
parser:
  flavor: goldmark
render:
  hidden_class: off
  detect_code_language: true
log_level: debug
`))
		require.NoError(t, err)
		assert.Equal(t, config.FlavorGoldmark, cfg.Parser.Flavor)
		assert.Equal(t, "off", cfg.Render.HiddenClass)
		assert.True(t, cfg.Render.DetectEnabled())
		assert.Equal(t, config.LogLevelDebug, cfg.LogLevel)
	})

	t.Run("empty input", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("\n"))
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
		assert.False(t, cfg.Render.DetectEnabled())
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := config.FromYAML([]byte("flavour: gfm\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})

	t.Run("round trip", func(t *testing.T) {
		original := config.NewConfig()
		original.Format = ""
		original.Color = ""

		data, err := original.ToYAML()
		require.NoError(t, err)
		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, original, parsed)
	})
}

func TestGenerateTemplate(t *testing.T) {
	t.Run("yaml parses back to defaults", func(t *testing.T) {
		data, err := config.GenerateTemplate(config.TemplateOptions{})
		require.NoError(t, err)
		assert.Contains(t, string(data), "# Parser:")

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		defaults := config.NewConfig()
		assert.Equal(t, defaults.Parser, cfg.Parser)
		assert.Equal(t, defaults.Render, cfg.Render)
		assert.Equal(t, defaults.LogLevel, cfg.LogLevel)
	})

	t.Run("json", func(t *testing.T) {
		data, err := config.GenerateTemplate(config.TemplateOptions{Format: "json"})
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, "warn", doc["log_level"])
		parser, ok := doc["parser"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "native", parser["flavor"])
	})
}
