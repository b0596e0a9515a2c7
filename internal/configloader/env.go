package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/gomdedit/pkg/config"
)

// envVarPrefix is the prefix for all gomdedit environment variables.
const envVarPrefix = "GOMDEDIT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
)

// envMapping binds an environment variable to a config field.
type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FLAVOR":               {"parser.flavor", envTypeString, "Parser flavor: native, goldmark or gfm"},
	"SYNTAX_CLASS":         {"render.syntax_class", envTypeString, "Class on every syntax fragment"},
	"VISIBLE_CLASS":        {"render.visible_class", envTypeString, "Class on syntax shown near the cursor"},
	"HIDDEN_CLASS":         {"render.hidden_class", envTypeString, "Class on hidden syntax"},
	"DETECT_CODE_LANGUAGE": {"render.detect_code_language", envTypeBool, "Guess languages of unlabeled code blocks: true or false"},
	"LOG_LEVEL":            {"log_level", envTypeString, "Log level: debug, info, warn or error"},
	"FORMAT":               {"format", envTypeString, "Output format: markdown, json, html or tree"},
	"COLOR":                {"color", envTypeString, "Styled output: auto, always or never"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOMDEDIT_ (e.g., GOMDEDIT_FLAVOR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "parser.flavor":
		cfg.Parser.Flavor = config.Flavor(value)
	case "render.syntax_class":
		cfg.Render.SyntaxClass = value
	case "render.visible_class":
		cfg.Render.VisibleClass = value
	case "render.hidden_class":
		cfg.Render.HiddenClass = value
	case "log_level":
		cfg.LogLevel = config.LogLevel(value)
	case "format":
		f, err := config.ParseOutputFormat(value)
		if err != nil {
			return err
		}
		cfg.Format = f
	case "color":
		cfg.Color = config.ColorMode(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "render.detect_code_language":
		cfg.Render.DetectCodeLanguage = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes a supported environment variable.
type EnvVar struct {
	Name        string
	Field       string
	Description string
}

// ListEnvVars returns all supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Field: mapping.field, Description: mapping.help})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
