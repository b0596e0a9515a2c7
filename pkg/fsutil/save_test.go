package fsutil_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/yaklabco/gomdedit/pkg/fsutil"
)

func TestSaveFile(t *testing.T) {
	t.Parallel()

	t.Run("writes and keeps mode", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "doc.md", "old")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}

		written, err := fsutil.SaveFile(context.Background(), info, []byte("new"), fsutil.SaveOptions{})
		if err != nil || !written {
			t.Fatalf("SaveFile() = %v, %v; want true, nil", written, err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if stat.Mode().Perm() != 0o600 {
			t.Errorf("mode = %v, want 0600", stat.Mode().Perm())
		}
		if _, err := os.Stat(fsutil.BackupPath(path)); !os.IsNotExist(err) {
			t.Error("no backup expected without SaveOptions.Backup")
		}
	})

	t.Run("unchanged content is not written", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "doc.md", "same")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}

		written, err := fsutil.SaveFile(context.Background(), info, []byte("same"), fsutil.SaveOptions{Backup: true})
		if err != nil || written {
			t.Errorf("SaveFile() = %v, %v; want false, nil", written, err)
		}
		if _, err := os.Stat(fsutil.BackupPath(path)); !os.IsNotExist(err) {
			t.Error("unchanged content should not create a backup")
		}
	})

	t.Run("backup keeps the original", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "doc.md", "original")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}

		if _, err := fsutil.SaveFile(context.Background(), info, []byte("edited"), fsutil.SaveOptions{Backup: true}); err != nil {
			t.Fatal(err)
		}

		backup, err := os.ReadFile(fsutil.BackupPath(path))
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(backup) != "original" {
			t.Errorf("backup = %q, want %q", backup, "original")
		}
	})

	t.Run("refuses external modification", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "doc.md", "v1")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("someone else"), 0o600); err != nil {
			t.Fatal(err)
		}

		_, err = fsutil.SaveFile(context.Background(), info, []byte("mine"), fsutil.SaveOptions{})
		if !errors.Is(err, fsutil.ErrModified) {
			t.Fatalf("expected ErrModified, got %v", err)
		}

		written, err := fsutil.SaveFile(context.Background(), info, []byte("mine"), fsutil.SaveOptions{Force: true})
		if err != nil || !written {
			t.Errorf("forced SaveFile() = %v, %v; want true, nil", written, err)
		}
	})
}

func TestCreateBackup_Idempotent(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "doc.md", "first")

	created, err := fsutil.CreateBackup(context.Background(), path)
	if err != nil || !created {
		t.Fatalf("first CreateBackup() = %v, %v", created, err)
	}

	if err := os.WriteFile(path, []byte("second"), 0o600); err != nil {
		t.Fatal(err)
	}
	created, err = fsutil.CreateBackup(context.Background(), path)
	if err != nil || created {
		t.Errorf("second CreateBackup() = %v, %v; want false, nil", created, err)
	}

	backup, err := os.ReadFile(fsutil.BackupPath(path))
	if err != nil {
		t.Fatal(err)
	}
	if string(backup) != "first" {
		t.Errorf("backup = %q, want %q", backup, "first")
	}
}
