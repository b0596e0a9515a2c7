package configloader

import "github.com/yaklabco/gomdedit/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Strings: override overwrites base if non-empty
//   - Pointers: override overwrites base if non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Parser.Flavor != "" {
		result.Parser.Flavor = override.Parser.Flavor
	}
	result.Render = mergeRender(base.Render, override.Render)
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	return &result
}

// mergeRender merges render settings field by field.
func mergeRender(base, override config.RenderConfig) config.RenderConfig {
	result := base

	if override.SyntaxClass != "" {
		result.SyntaxClass = override.SyntaxClass
	}
	if override.VisibleClass != "" {
		result.VisibleClass = override.VisibleClass
	}
	if override.HiddenClass != "" {
		result.HiddenClass = override.HiddenClass
	}
	if override.DetectCodeLanguage != nil {
		detect := *override.DetectCodeLanguage
		result.DetectCodeLanguage = &detect
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
