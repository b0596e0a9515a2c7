// Package runner formats Markdown files in bulk. It discovers files under
// the given paths and normalizes them concurrently, optionally writing the
// results back in place.
package runner

import (
	"github.com/yaklabco/gomdedit/pkg/doctree"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
)

// Parser turns markdown text into a document.
type Parser interface {
	Parse(text string) *doctree.Doc
}

// Options controls a formatting run.
type Options struct {
	// Paths are the files or directories to process. If empty, defaults to
	// the working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// picked up while walking directories. Files named explicitly in Paths
	// are always included.
	Extensions []string

	// ExcludeGlobs skip matching files and directories. Patterns are
	// matched against the slash-separated path relative to WorkingDir and
	// against the base name; "**" crosses directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of files processed at once.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Write saves changed files in place.
	Write bool

	// Save controls backups and conflict handling when Write is set.
	Save fsutil.SaveOptions
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
