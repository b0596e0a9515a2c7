package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/configloader"
	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
)

func newConfigCommand(global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create and inspect configuration",
		Long: `Configuration is merged from, lowest to highest precedence: built-in
defaults, the system file, the user file ($XDG_CONFIG_HOME/gomdedit), the
nearest project file (.gomdedit.yml, searched upward to the repository root),
the --config file, GOMDEDIT_* environment variables and command-line flags.`,
	}

	cmd.AddCommand(newConfigInitCommand(global))
	cmd.AddCommand(newConfigShowCommand(global))
	cmd.AddCommand(newConfigEnvCommand(global))

	return cmd
}

// initFlags holds the flags for the config init command.
type initFlags struct {
	force  bool
	format string
	output string
}

func newConfigInitCommand(global *globalFlags) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a commented configuration file",
		Long: `Create a .gomdedit.yml configuration file in the current directory
holding every option at its default value.

Examples:
  gomdedit config init                      Create .gomdedit.yml
  gomdedit config init --format json        Create .gomdedit.json
  gomdedit config init --output custom.yml  Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, global, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: .gomdedit.yml or .gomdedit.json)")

	return cmd
}

func runInit(cmd *cobra.Command, global *globalFlags, flags *initFlags) error {
	level := "info"
	if global.debug {
		level = "debug"
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)

	if flags.format != "yaml" && flags.format != "json" {
		return fmt.Errorf("%w: invalid format %q: must be yaml or json", ErrUsage, flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.ProjectConfigFiles[0]
		if flags.format == "json" {
			outputPath = ".gomdedit.json"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Format: flags.format})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(cmd.Context(), absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	if flags.format == "json" {
		logger.Info("json configs are not discovered automatically; pass them with --config")
	}
	return nil
}

func newConfigShowCommand(global *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after merging every source, preceded by the
files it was loaded from. With --output the resolved values are saved as a
new configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := loadSession(cmd, global, nil)
			if err != nil {
				return err
			}

			if output != "" {
				if err := configloader.WriteConfig(cmd.Context(), sess.cfg, output); err != nil {
					return err
				}
				sess.logger.Info("wrote configuration", logging.FieldPath, output)
				return nil
			}

			content, err := sess.cfg.ToYAML()
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}

			var sb strings.Builder
			if len(sess.result.LoadedFrom) == 0 {
				sb.WriteString("# no config files loaded; showing defaults\n")
			}
			for _, path := range sess.result.LoadedFrom {
				sb.WriteString("# loaded: " + path + "\n")
			}
			sb.Write(content)
			_, err = io.WriteString(sess.out, sb.String())
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "save the resolved configuration to this file")

	return cmd
}

func newConfigEnvCommand(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "env [field...]",
		Short: "List supported environment variables",
		Long: `List the GOMDEDIT_* environment variables and the config fields they set.
With field arguments such as render.hidden_class, print only their variable names.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd, global, nil)
			if err != nil {
				return err
			}

			var sb strings.Builder
			if len(args) > 0 {
				for _, field := range args {
					name := configloader.GetEnvVarName(field)
					if name == "" {
						return fmt.Errorf("%w: no environment variable for field %q", ErrUsage, field)
					}
					sb.WriteString(name + "\n")
				}
				_, err = io.WriteString(sess.out, sb.String())
				return err
			}

			vars := configloader.ListEnvVars()
			nameWidth, fieldWidth := 0, 0
			for _, v := range vars {
				nameWidth = max(nameWidth, len(v.Name))
				fieldWidth = max(fieldWidth, len(v.Field))
			}
			for _, v := range vars {
				name := sess.styles.Bold.Render(rpad(v.Name, nameWidth))
				field := sess.styles.Dim.Render(rpad(v.Field, fieldWidth))
				fmt.Fprintf(&sb, "%s  %s  %s\n", name, field, v.Description)
			}
			_, err = io.WriteString(sess.out, sb.String())
			return err
		},
	}
}
