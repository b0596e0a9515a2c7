package runner_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
	"github.com/yaklabco/gomdedit/pkg/parser/markdown"
	"github.com/yaklabco/gomdedit/pkg/runner"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFormat(t *testing.T) {
	t.Parallel()

	p := markdown.New()
	assert.Equal(t, "# Title\n\n- a\n- b\n", runner.Format(p, "#  Title\n\n* a\n* b"))
	assert.Equal(t, "- a\n", runner.Format(p, "- a\n"))
}

func TestRun_Check(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	clean := write(t, dir, "clean.md", "# Title\n")
	dirty := write(t, dir, "dirty.md", "* item\n")

	r := runner.New(markdown.New())
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 2})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, clean, result.Files[0].Path)
	assert.False(t, result.Files[0].Changed)
	assert.Equal(t, dirty, result.Files[1].Path)
	assert.True(t, result.Files[1].Changed)
	assert.Equal(t, "- item\n", result.Files[1].Formatted)

	assert.True(t, result.HasChanges())
	assert.Equal(t, runner.Stats{FilesDiscovered: 2, FilesProcessed: 2, FilesChanged: 1}, result.Stats)
	assert.Equal(t, "* item\n", readBack(t, dirty), "check mode never writes")
}

func TestRun_LogsThroughContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := write(t, dir, "doc.md", "* item\n")

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewWithWriter(&buf, "debug"))
	_, err := runner.New(markdown.New()).Run(ctx, runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "formatted")
	assert.Contains(t, buf.String(), path)
	assert.Contains(t, buf.String(), "changed=true")
}

func TestRun_Write(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := write(t, dir, "doc.md", "***\n")

	r := runner.New(markdown.New())
	result, err := r.Run(context.Background(), runner.Options{
		Paths: []string{dir},
		Write: true,
		Save:  fsutil.SaveOptions{Backup: true},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesWritten)
	assert.Equal(t, "---\n", readBack(t, path))
	assert.Equal(t, "***\n", readBack(t, fsutil.BackupPath(path)))
}

func TestRun_ManyFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for i := range 20 {
		write(t, dir, string(rune('a'+i))+".md", "* x\n")
	}

	r := runner.New(markdown.New())
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 4, Write: true})
	require.NoError(t, err)
	assert.Equal(t, 20, result.Stats.FilesWritten)
	assert.Empty(t, result.Errors())
	for i := 1; i < len(result.Files); i++ {
		assert.Less(t, result.Files[i-1].Path, result.Files[i].Path)
	}
}

func TestRun_Empty(t *testing.T) {
	t.Parallel()

	r := runner.New(markdown.New())
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasChanges())
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, dir, "a.md", "a\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.New(markdown.New())
	_, err := r.Run(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func readBack(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
