package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/config"
)

func newParseCommand(global *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse Markdown into a JSON document",
		Long: `Parse a Markdown file (or standard input) and print the document tree
as JSON. The result can be fed back to any command that accepts a document.

Examples:
  gomdedit parse README.md
  gomdedit parse --flavor gfm README.md -o readme.json
  cat notes.md | gomdedit parse`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd, global, nil)
			if err != nil {
				return err
			}

			in, err := sess.readInput(cmd.Context(), argOrStdin(args))
			if err != nil {
				return err
			}

			ed := sess.newEditor()
			if err := in.load(ed); err != nil {
				return err
			}
			sess.logger.Debug("parsed document",
				logging.FieldInput, in.name,
				logging.FieldBlocks, ed.Doc().ChildCount(),
				logging.FieldSize, ed.Doc().Size(),
			)

			out, err := sess.format(ed, config.FormatJSON, false)
			if err != nil {
				return err
			}
			return sess.writeOutput(cmd.Context(), output, out)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}
