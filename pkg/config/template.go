package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "json".
	Format string
}

const templateYAML = `# gomdedit configuration
# See: https://github.com/yaklabco/gomdedit

# Parser: native (reduced grammar), goldmark (CommonMark) or gfm
parser:
  flavor: native

# Class names put on rendered markdown syntax fragments
render:
  syntax_class: md-syntax
  visible_class: md-syntax-visible
  hidden_class: md-syntax-hidden
  # Guess a language class for code blocks without a fence label
  detect_code_language: false

# Log level: debug, info, warn or error
log_level: warn
`

// GenerateTemplate creates a commented configuration file template.
// JSON output carries the same values without comments.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON([]byte(templateYAML))
	}
	return []byte(templateYAML), nil
}

// templateToJSON converts a YAML template to JSON format.
func templateToJSON(yamlContent []byte) ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(yamlContent, &doc); err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gomdedit configuration
# See: https://github.com/yaklabco/gomdedit`
}
