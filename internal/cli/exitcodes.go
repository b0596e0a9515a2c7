package cli

import (
	"errors"

	"github.com/yaklabco/gomdedit/pkg/doctree"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
)

// Exit codes for gomdedit.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitUnformatted indicates fmt --check found files that would change.
	ExitUnformatted = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates an invalid configuration file or document.
	ExitDataError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrUnformatted signals that fmt --check found differences. It carries
	// no message worth logging.
	ErrUnformatted = errors.New("input is not formatted")

	// ErrUsage wraps invalid flags and arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig wraps configuration loading failures.
	ErrConfig = errors.New("configuration error")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUnformatted):
		return ExitUnformatted
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig),
		errors.Is(err, doctree.ErrInvalidJSON),
		errors.Is(err, doctree.ErrUnknownNodeType),
		errors.Is(err, doctree.ErrUnknownMarkType),
		errors.Is(err, doctree.ErrMissingText),
		errors.Is(err, doctree.ErrInvalidAttr):
		return ExitDataError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrModified):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
