package runner

import "github.com/yaklabco/gomdedit/pkg/textdiff"

// FileOutcome is the result of formatting one file.
type FileOutcome struct {
	// Path is the absolute file path.
	Path string

	// Formatted is the normalized markdown.
	Formatted string

	// Changes is the line diff from the file content to Formatted.
	Changes []textdiff.Change

	// Changed reports whether formatting alters the file.
	Changed bool

	// Written reports whether the file was saved.
	Written bool

	// Skipped reports a file left alone because it changed on disk
	// while being formatted.
	Skipped bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesChanged    int
	FilesWritten    int
	FilesSkipped    int
	FilesErrored    int
}

// Result is the overall run result.
type Result struct {
	// Files holds one outcome per discovered file, sorted by path.
	Files []FileOutcome

	Stats Stats
}

// HasChanges reports whether any file would be or was reformatted.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// Errors returns the per-file errors in path order.
func (r *Result) Errors() []error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, f := range r.Files {
		if f.Error != nil {
			errs = append(errs, f.Error)
		}
	}
	return errs
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	r.Stats.FilesProcessed++
	if outcome.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
	if outcome.Skipped {
		r.Stats.FilesSkipped++
	}
}
