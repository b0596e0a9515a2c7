package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
	"github.com/yaklabco/gomdedit/pkg/parser/markdown"
	"github.com/yaklabco/gomdedit/pkg/textdiff"
)

// Runner formats files with a parser. It is safe for concurrent use if the
// parser is. It logs through the logger attached to the Run context.
type Runner struct {
	parser Parser
}

// New creates a runner.
func New(parser Parser) *Runner {
	return &Runner{parser: parser}
}

// Format parses text and serializes it back as canonical markdown ending in
// a newline.
func Format(parser Parser, text string) string {
	out := markdown.Serialize(parser.Parse(text))
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

// Run discovers files under opts.Paths and formats them concurrently.
// Outcomes are returned in path order regardless of completion order.
// Per-file failures are recorded on the outcome, not returned.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	outcomes := make([]FileOutcome, len(files))
	var group errgroup.Group
	group.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		group.Go(func() error {
			outcomes[i] = r.process(ctx, path, opts)
			return nil
		})
	}
	_ = group.Wait()

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) process(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}
	if err := ctx.Err(); err != nil {
		outcome.Error = err
		return outcome
	}
	logger := logging.FromContext(logging.With(ctx, logging.FieldPath, path))

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	outcome.Formatted = Format(r.parser, string(content))
	outcome.Changes = textdiff.Lines(string(content), outcome.Formatted)
	outcome.Changed = textdiff.Changed(outcome.Changes)
	logger.Debug("formatted", logging.FieldChanged, outcome.Changed)

	if !opts.Write || !outcome.Changed {
		return outcome
	}

	written, err := fsutil.SaveFile(ctx, info, []byte(outcome.Formatted), opts.Save)
	switch {
	case errors.Is(err, fsutil.ErrModified):
		logger.Warn("file changed while formatting; skipped")
		outcome.Skipped = true
	case err != nil:
		outcome.Error = err
	default:
		outcome.Written = written
	}
	return outcome
}
