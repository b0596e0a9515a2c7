package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/editor"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
	"github.com/yaklabco/gomdedit/pkg/textdiff"
)

// Edit operations accepted by the edit command.
const (
	opInsert      = "insert"
	opDelete      = "delete"
	opDeleteRange = "delete-range"
	opReplace     = "replace"
	opSplit       = "split"
	opJoin        = "join"
)

var editOps = []string{opInsert, opDelete, opDeleteRange, opReplace, opSplit, opJoin}

type editFlags struct {
	at       int
	from     int
	to       int
	text     string
	format   string
	cursor   int
	diff     bool
	wordDiff bool
	ranges   bool
	summary  bool
	write    bool
	backup   bool
	force    bool
	output   string
}

func newEditCommand(global *globalFlags) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <operation> [file]",
		Short: "Apply a position-based edit to a document",
		Long: `Apply one edit to a Markdown or JSON document and print the result.
Positions count characters of text content; block boundaries take no space.

Operations:
  insert        insert --text at --at
  delete        delete --from..--to inside a single text node
  delete-range  delete --from..--to across node boundaries
  replace       replace --from..--to with --text
  split         split the text node at --at in two
  join          merge the text node at --at into its left sibling

Examples:
  gomdedit edit insert --at 0 --text "Hello " notes.md
  gomdedit edit delete-range --from 3 --to 20 --diff notes.md
  gomdedit edit replace --from 2 --to 7 --text world --word-diff notes.md
  gomdedit edit replace --from 0 --to 5 --text Title -w --backup notes.md
  gomdedit edit split --at 4 --format tree --ranges doc.json`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: editOps,
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[0]
			if !slices.Contains(editOps, op) {
				return fmt.Errorf("%w: unknown operation %q; must be one of: %s",
					ErrUsage, op, strings.Join(editOps, ", "))
			}

			override, err := formatOverride(cmd, flags.format)
			if err != nil {
				return err
			}
			sess, err := loadSession(cmd, global, override)
			if err != nil {
				return err
			}
			return runEdit(cmd, sess, flags, op, argOrStdin(args[1:]))
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.at, "at", 0, "position for insert, split and join")
	f.IntVar(&flags.from, "from", 0, "start of the range for delete, delete-range and replace")
	f.IntVar(&flags.to, "to", 0, "end of the range for delete, delete-range and replace")
	f.StringVar(&flags.text, "text", "", "text for insert and replace")
	f.StringVar(&flags.format, "format", "", "output format: markdown, json, html, tree")
	f.IntVar(&flags.cursor, "cursor", 0, "cursor position for html and tree output")
	f.BoolVar(&flags.diff, "diff", false, "print a diff of the markdown instead of the result")
	f.BoolVar(&flags.wordDiff, "word-diff", false, "print a word-level diff of the markdown instead of the result")
	f.BoolVar(&flags.ranges, "ranges", false, "show position ranges in tree output")
	f.BoolVar(&flags.summary, "summary", false, "report document statistics before and after the edit on stderr")
	f.BoolVarP(&flags.write, "write", "w", false, "write the markdown result back to the input file")
	f.BoolVar(&flags.backup, "backup", false, "keep a backup of the input file when writing")
	f.BoolVar(&flags.force, "force", false, "write even if the file changed since it was read")
	f.StringVarP(&flags.output, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}

func runEdit(cmd *cobra.Command, sess *session, flags *editFlags, op, arg string) error {
	ctx := cmd.Context()

	if err := checkEditFlags(cmd, flags, op); err != nil {
		return err
	}

	in, err := sess.readInput(ctx, arg)
	if err != nil {
		return err
	}
	if flags.write && in.info == nil {
		return fmt.Errorf("%w: --write needs a file argument", ErrUsage)
	}

	ed := sess.newEditor()
	if err := in.load(ed); err != nil {
		return err
	}

	before := ed.Doc()
	beforeMarkdown := withNewline(ed.Markdown())

	if err := applyEdit(ed, flags, op); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	afterMarkdown := withNewline(ed.Markdown())

	changes := textdiff.Lines(beforeMarkdown, afterMarkdown)
	inserted, deleted := textdiff.Stats(textdiff.Diff(before.TextContent(), ed.Doc().TextContent()))
	sess.logger.Debug("applied edit",
		logging.FieldOp, op,
		logging.FieldChanged, textdiff.Changed(changes),
		logging.FieldInserted, inserted,
		logging.FieldDeleted, deleted,
	)

	if flags.summary {
		summary := sess.styles.FormatEditSummary(
			pretty.CollectStats(before), pretty.CollectStats(ed.Doc()), inserted, deleted)
		if _, err := io.WriteString(cmd.ErrOrStderr(), summary); err != nil {
			return err
		}
	}

	if flags.write {
		return saveMarkdown(ctx, sess, in, afterMarkdown, flags.backup, flags.force)
	}

	if flags.diff {
		return sess.writeOutput(ctx, flags.output, sess.styles.FormatDiff(changes))
	}
	if flags.wordDiff {
		words := sess.styles.FormatInlineDiff(textdiff.Diff(beforeMarkdown, afterMarkdown))
		return sess.writeOutput(ctx, flags.output, withNewline(words))
	}

	if cmd.Flags().Changed("cursor") {
		ed.SetCursor(flags.cursor)
	}
	out, err := sess.format(ed, sess.cfg.Format, flags.ranges)
	if err != nil {
		return err
	}
	return sess.writeOutput(ctx, flags.output, out)
}

// checkEditFlags rejects flag combinations the operation cannot use.
func checkEditFlags(cmd *cobra.Command, flags *editFlags, op string) error {
	var required []string
	switch op {
	case opInsert:
		required = []string{"at", "text"}
	case opDelete, opDeleteRange:
		required = []string{"from", "to"}
	case opReplace:
		required = []string{"from", "to", "text"}
	case opSplit, opJoin:
		required = []string{"at"}
	}
	for _, name := range required {
		if !cmd.Flags().Changed(name) {
			return fmt.Errorf("%w: %s requires --%s", ErrUsage, op, name)
		}
	}
	if flags.write && (flags.diff || flags.wordDiff || flags.output != "") {
		return fmt.Errorf("%w: --write cannot be combined with --diff, --word-diff or --output", ErrUsage)
	}
	if flags.diff && flags.wordDiff {
		return fmt.Errorf("%w: --diff and --word-diff are mutually exclusive", ErrUsage)
	}
	return nil
}

func applyEdit(ed *editor.Editor, flags *editFlags, op string) error {
	switch op {
	case opInsert:
		return ed.Insert(flags.at, flags.text)
	case opDelete:
		return ed.Delete(flags.from, flags.to)
	case opDeleteRange:
		return ed.DeleteRange(flags.from, flags.to)
	case opReplace:
		return ed.Replace(flags.from, flags.to, flags.text)
	case opSplit:
		return ed.Split(flags.at)
	case opJoin:
		return ed.Join(flags.at)
	default:
		return fmt.Errorf("%w: unknown operation %q", ErrUsage, op)
	}
}

// saveMarkdown writes content back to the input file unless it is unchanged
// on disk or was modified by someone else since it was read.
func saveMarkdown(ctx context.Context, sess *session, in *input, content string, backup, force bool) error {
	if in.isJSON() {
		return fmt.Errorf("%w: --write only supports markdown files, not %s", ErrUsage, in.name)
	}
	written, err := fsutil.SaveFile(ctx, in.info, []byte(content), fsutil.SaveOptions{
		Backup: backup,
		Force:  force,
	})
	if err != nil {
		return err
	}
	sess.logger.Info("saved", logging.FieldPath, in.name, logging.FieldChanged, written)
	return nil
}
