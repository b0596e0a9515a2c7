package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/config"
)

type treeFlags struct {
	ranges  bool
	cursor  int
	summary bool
	width   int
}

func newTreeCommand(global *globalFlags) *cobra.Command {
	flags := &treeFlags{}

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Show the document tree",
		Long: `Print the document as an indented tree of nodes with their attributes,
marks and text. With --ranges every node shows the [start,end] positions it
covers; with --cursor the nodes containing the cursor are highlighted.

Examples:
  gomdedit tree README.md
  gomdedit tree --ranges --cursor 12 README.md
  gomdedit tree --summary doc.json`,
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
			if cmd.Flags().Changed("cursor") {
				ed.SetCursor(flags.cursor)
			}
			if cmd.Flags().Changed("width") {
				sess.width = flags.width
			}

			out, err := sess.format(ed, config.FormatTree, flags.ranges)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(sess.out, out); err != nil {
				return err
			}

			if flags.summary {
				stats := pretty.CollectStats(ed.Doc())
				if _, err := io.WriteString(sess.out, "\n"+sess.styles.FormatKindTable(stats)); err != nil {
					return err
				}
				_, err = io.WriteString(sess.out, sess.styles.FormatSummaryOneLine(stats))
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.ranges, "ranges", false, "show the position range of every node")
	cmd.Flags().IntVar(&flags.cursor, "cursor", 0, "highlight the nodes containing this position")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "append per-kind statistics")
	cmd.Flags().IntVar(&flags.width, "width", 0, "truncate text previews to this width; 0 disables truncation")

	return cmd
}
