package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/editor"
	"github.com/yaklabco/gomdedit/pkg/render/htmlhost"
)

type renderFlags struct {
	cursor    int
	selection string
	detect    bool
	wrap      bool
	output    string
}

func newRenderCommand(global *globalFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document to HTML",
		Long: `Render Markdown or a JSON document to HTML. Every piece of Markdown
syntax is emitted as its own span next to the styled content. Syntax spans
carry the visible class while the cursor is inside the node that owns them
and the hidden class otherwise. Without --cursor all syntax is hidden.

Examples:
  gomdedit render README.md
  gomdedit render --cursor 3 README.md
  gomdedit render --selection 0:5 --wrap doc.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd, global, func(c *config.Config) {
				if cmd.Flags().Changed("detect-language") {
					c.Render.DetectCodeLanguage = &flags.detect
				}
			})
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
			if err := applyCursorFlags(cmd, ed, flags.cursor, flags.selection); err != nil {
				return err
			}

			markup, err := renderMarkup(ed, flags.wrap)
			if err != nil {
				return err
			}
			sess.logger.Debug("rendered document", logging.FieldInput, in.name, logging.FieldSize, len(markup))
			return sess.writeOutput(cmd.Context(), flags.output, markup+"\n")
		},
	}

	cmd.Flags().IntVar(&flags.cursor, "cursor", 0, "cursor position; reveals syntax of the nodes around it")
	cmd.Flags().StringVar(&flags.selection, "selection", "", "select a FROM:TO range; the cursor moves to TO")
	cmd.Flags().BoolVar(&flags.detect, "detect-language", false, "guess a language class for unlabeled code blocks")
	cmd.Flags().BoolVar(&flags.wrap, "wrap", false, "include the editor container element in the output")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}

// applyCursorFlags positions the cursor and selection when their flags
// were given on the command line.
func applyCursorFlags(cmd *cobra.Command, ed *editor.Editor, cursor int, selection string) error {
	if cmd.Flags().Changed("cursor") {
		ed.SetCursor(cursor)
	}
	if selection != "" {
		from, to, err := parseRange(selection)
		if err != nil {
			return err
		}
		ed.SetSelection(from, to)
	}
	return nil
}

// parseRange parses a FROM:TO position range.
func parseRange(s string) (int, int, error) {
	left, right, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: range %q must be FROM:TO", ErrUsage, s)
	}
	from, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: range start %q: %w", ErrUsage, left, err)
	}
	to, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: range end %q: %w", ErrUsage, right, err)
	}
	return from, to, nil
}

// renderMarkup returns the rendered children, or the whole container
// element when wrap is set.
func renderMarkup(ed *editor.Editor, wrap bool) (string, error) {
	if !wrap {
		return ed.Markup()
	}
	container, ok := ed.Container().(*htmlhost.Element)
	if !ok {
		return "", editor.ErrNoMarkup
	}
	return container.Markup()
}
