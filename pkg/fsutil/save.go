package fsutil

import (
	"context"
	"crypto/sha256"
	"fmt"
)

// SaveOptions controls SaveFile.
type SaveOptions struct {
	// Backup writes a sidecar backup before the first change.
	Backup bool

	// Force skips the external modification check.
	Force bool
}

// SaveFile writes content back to the file described by info, which must
// come from ReadFile. It refuses with ErrModified when the file changed on
// disk in between, keeps the original permission bits, and skips the write
// when content is unchanged. Returns true if the file was written.
func SaveFile(ctx context.Context, info *FileInfo, content []byte, opts SaveOptions) (bool, error) {
	if info == nil {
		return false, ErrNilFileInfo
	}

	if sha256.Sum256(content) == info.Hash {
		return false, nil
	}

	if !opts.Force {
		modified, err := CheckModified(ctx, info)
		if err != nil {
			return false, err
		}
		if modified {
			return false, fmt.Errorf("%w: %s", ErrModified, info.Path)
		}
	}

	if opts.Backup {
		if _, err := CreateBackup(ctx, info.Path); err != nil {
			return false, err
		}
	}

	return WriteAtomicIfChanged(ctx, info.Path, content, info.Mode.Perm())
}
