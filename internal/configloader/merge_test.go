package configloader

import (
	"testing"

	"github.com/yaklabco/gomdedit/pkg/config"
)

func TestMergeAll(t *testing.T) {
	t.Parallel()

	on, off := true, false
	got := MergeAll(
		config.NewConfig(),
		&config.Config{Render: config.RenderConfig{DetectCodeLanguage: &on, SyntaxClass: "syn"}},
		&config.Config{LogLevel: config.LogLevelError},
		&config.Config{Render: config.RenderConfig{DetectCodeLanguage: &off}},
	)

	if got.Render.SyntaxClass != "syn" {
		t.Errorf("expected syntax class syn, got %q", got.Render.SyntaxClass)
	}
	if got.Render.DetectEnabled() {
		t.Error("an explicit false should override an earlier true")
	}
	if got.LogLevel != config.LogLevelError {
		t.Errorf("expected log level error, got %q", got.LogLevel)
	}
	if got.Parser.Flavor != config.FlavorNative {
		t.Errorf("unset flavor should keep default, got %q", got.Parser.Flavor)
	}
}

func TestMergeAll_Empty(t *testing.T) {
	t.Parallel()

	if MergeAll() != nil {
		t.Error("MergeAll() with no configs should be nil")
	}
}

func TestMerge_DoesNotAliasOverride(t *testing.T) {
	t.Parallel()

	on := true
	override := &config.Config{Render: config.RenderConfig{DetectCodeLanguage: &on}}
	got := merge(config.NewConfig(), override)

	on = false
	if !got.Render.DetectEnabled() {
		t.Error("merged config should not share the override's pointer")
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	if len(vars) != len(envMappings) {
		t.Fatalf("expected %d vars, got %d", len(envMappings), len(vars))
	}
	for i := 1; i < len(vars); i++ {
		if vars[i-1].Name >= vars[i].Name {
			t.Errorf("vars not sorted: %s before %s", vars[i-1].Name, vars[i].Name)
		}
	}
	if GetEnvVarName("parser.flavor") != "GOMDEDIT_FLAVOR" {
		t.Errorf("unexpected env var for parser.flavor: %q", GetEnvVarName("parser.flavor"))
	}
}
