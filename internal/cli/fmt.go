package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
	"github.com/yaklabco/gomdedit/pkg/runner"
	"github.com/yaklabco/gomdedit/pkg/textdiff"
)

type fmtFlags struct {
	write          bool
	check          bool
	diff           bool
	backup         bool
	force          bool
	jobs           int
	exclude        []string
	followSymlinks bool
}

func newFmtCommand(global *globalFlags) *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Normalize Markdown formatting",
		Long: `Parse Markdown files and print them back in canonical form: ATX
headings, "-" bullets, "1." numbering, fenced code blocks and "**", "*",
"~~" and backtick emphasis. Content the document model cannot express is
dropped, so review the diff before writing.

Directories are searched recursively for .md and .markdown files, skipping
hidden entries. With no paths, standard input is formatted.

Exit status is 1 when --check finds a file that would change.

Examples:
  gomdedit fmt README.md
  gomdedit fmt --check docs
  gomdedit fmt -w --backup --exclude "vendor/**" .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.write && flags.check {
				return fmt.Errorf("%w: --write and --check are mutually exclusive", ErrUsage)
			}
			sess, err := loadSession(cmd, global, nil)
			if err != nil {
				return err
			}
			if len(args) == 0 || slices.Equal(args, []string{stdinArg}) {
				if flags.write {
					return fmt.Errorf("%w: --write needs file arguments", ErrUsage)
				}
				return fmtStdin(cmd, sess, flags)
			}
			return runFmt(cmd, sess, flags, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&flags.write, "write", "w", false, "write the result back to each file")
	f.BoolVar(&flags.check, "check", false, "list files that would change and exit non-zero")
	f.BoolVar(&flags.diff, "diff", false, "print a diff instead of the formatted result")
	f.BoolVar(&flags.backup, "backup", false, "keep a backup of each file when writing")
	f.BoolVar(&flags.force, "force", false, "write even if a file changed since it was read")
	f.IntVarP(&flags.jobs, "jobs", "j", 0, "files formatted in parallel (default: number of CPUs)")
	f.StringSliceVar(&flags.exclude, "exclude", nil, "glob of paths to skip; repeatable")
	f.BoolVar(&flags.followSymlinks, "follow-symlinks", false, "descend into symlinked directories")

	return cmd
}

func fmtStdin(cmd *cobra.Command, sess *session, flags *fmtFlags) error {
	in, err := sess.readInput(cmd.Context(), stdinArg)
	if err != nil {
		return err
	}

	original := string(in.content)
	formatted := runner.Format(sess.parser(), original)
	changes := textdiff.Lines(original, formatted)

	switch {
	case flags.check:
		if textdiff.Changed(changes) {
			if _, err := fmt.Fprintln(sess.out, in.name); err != nil {
				return err
			}
			return ErrUnformatted
		}
		return nil
	case flags.diff:
		_, err = io.WriteString(sess.out, sess.styles.FormatDiff(changes))
		return err
	default:
		_, err = io.WriteString(sess.out, formatted)
		return err
	}
}

func runFmt(cmd *cobra.Command, sess *session, flags *fmtFlags, paths []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	r := runner.New(sess.parser())
	result, err := r.Run(ctx, runner.Options{
		Paths:          paths,
		ExcludeGlobs:   flags.exclude,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           flags.jobs,
		Write:          flags.write,
		Save:           fsutil.SaveOptions{Backup: flags.backup, Force: flags.force},
	})
	if err != nil {
		return err
	}

	for _, file := range result.Files {
		if file.Error != nil {
			logger.Error("format failed", logging.FieldPath, file.Path, logging.FieldError, file.Error)
			continue
		}

		var out string
		switch {
		case flags.check:
			if file.Changed {
				out = file.Path + "\n"
			}
		case flags.write:
			if file.Skipped {
				logger.Warn("skipped modified file", logging.FieldPath, file.Path)
			}
		case flags.diff:
			if file.Changed {
				out = sess.styles.Bold.Render(file.Path) + "\n" + sess.styles.FormatDiff(file.Changes)
			}
		default:
			out = file.Formatted
		}
		if _, err := io.WriteString(sess.out, out); err != nil {
			return err
		}
	}

	logger.Debug("fmt finished",
		"files", result.Stats.FilesDiscovered,
		logging.FieldChanged, result.Stats.FilesChanged,
		"written", result.Stats.FilesWritten,
	)

	if errs := result.Errors(); len(errs) > 0 {
		return errors.Join(errs...)
	}
	if flags.check && result.HasChanges() {
		return ErrUnformatted
	}
	return nil
}
