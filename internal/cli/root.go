// Package cli provides the Cobra command structure for gomdedit.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	noConfig   bool
	color      string
	flavor     string
}

// NewRootCommand creates the root gomdedit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "gomdedit",
		Short: "Parse, edit and render Markdown as a structured document",
		Long: `gomdedit turns Markdown into a structured document tree addressed by
text positions, applies position-based edits to it, and renders it to HTML
with the Markdown syntax kept beside the styled text. Syntax markers are shown
only while the cursor sits inside the node that owns them.

Documents can be read as Markdown or as JSON and written back as Markdown,
JSON, HTML or an annotated tree.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.StringVar(&flags.configPath, "config", "", "path to config file")
	pf.BoolVar(&flags.noConfig, "no-config", false, "ignore system, user and project config files")
	pf.StringVar(&flags.color, "color", "", "colorize output: auto, always, never")
	pf.StringVar(&flags.flavor, "flavor", "", "markdown parser: native, goldmark, gfm")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(newParseCommand(flags))
	rootCmd.AddCommand(newRenderCommand(flags))
	rootCmd.AddCommand(newTreeCommand(flags))
	rootCmd.AddCommand(newEditCommand(flags))
	rootCmd.AddCommand(newFmtCommand(flags))
	rootCmd.AddCommand(newImportCommand(flags))
	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
