package cli_test

import (
	"testing"

	"github.com/yaklabco/gomdedit/internal/cli"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "gomdedit" {
		t.Errorf("expected Use to be 'gomdedit', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})

	expectedSubcommands := [][]string{
		{"parse"},
		{"render"},
		{"tree"},
		{"edit"},
		{"fmt"},
		{"import"},
		{"version"},
		{"config", "init"},
		{"config", "show"},
		{"config", "env"},
	}

	for _, path := range expectedSubcommands {
		subCmd, _, err := cmd.Find(path)
		if err != nil {
			t.Errorf("expected subcommand %v to exist, got error: %v", path, err)
			continue
		}

		if subCmd.Name() != path[len(path)-1] {
			t.Errorf("expected subcommand name %q, got %q", path[len(path)-1], subCmd.Name())
		}
	}
}

func TestEditCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})
	editCmd, _, err := cmd.Find([]string{"edit"})
	if err != nil {
		t.Fatalf("edit command not found: %v", err)
	}

	expectedFlags := []string{
		"at", "from", "to", "text", "format", "cursor",
		"diff", "summary", "write", "backup", "force", "output",
	}

	for _, name := range expectedFlags {
		if editCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s on edit", name)
		}
	}

	if editCmd.Flags().ShorthandLookup("w") == nil {
		t.Error("expected -w shorthand for --write")
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})

	for _, name := range []string{"debug", "config", "no-config", "color", "flavor"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag --%s", name)
		}
	}
}
