package cli

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/logging"
)

type importFlags struct {
	format string
	output string
}

func newImportCommand(global *globalFlags) *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Convert HTML into a document",
		Long: `Convert an HTML page or fragment to Markdown and load it as a document.
The output is normalized Markdown by default; use --format to emit JSON, the
rendered HTML or the document tree instead.

Examples:
  gomdedit import page.html
  gomdedit import --format json page.html -o page.json
  curl -s https://example.com | gomdedit import`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override, err := formatOverride(cmd, flags.format)
			if err != nil {
				return err
			}
			sess, err := loadSession(cmd, global, override)
			if err != nil {
				return err
			}

			in, err := sess.readInput(cmd.Context(), argOrStdin(args))
			if err != nil {
				return err
			}

			md, err := htmltomarkdown.ConvertString(string(in.content))
			if err != nil {
				return fmt.Errorf("convert %s: %w", in.name, err)
			}

			ed := sess.newEditor()
			if err := ed.Load(md); err != nil {
				return err
			}
			sess.logger.Debug("imported html",
				logging.FieldInput, in.name,
				logging.FieldBlocks, ed.Doc().ChildCount(),
			)

			out, err := sess.format(ed, sess.cfg.Format, false)
			if err != nil {
				return err
			}
			return sess.writeOutput(cmd.Context(), flags.output, out)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: markdown, json, html, tree")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}
