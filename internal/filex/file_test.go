package filex

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirectory(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "a", "b", "todo.json")

	got, err := EnsureParentDir(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "a", "b"), got)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureParentDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o660))

	_, err := EnsureParentDir(filepath.Join(blocker, "todo.json"))
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestWriteFileAtomic_ReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.json")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o600))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}
}

func TestWriteFileAtomic_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "todo.json")

	require.NoError(t, WriteFileAtomic(path, []byte("{}"), 0o600))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "todo.json", entries[0].Name())
}

func TestWriteFileAtomic_FailureKeepsPreviousVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "todo.json")
	require.NoError(t, WriteFileAtomic(path, []byte("durable"), 0o600))

	// a directory at the target makes the final rename fail
	target := filepath.Join(dir, "taken")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0o700))
	require.Error(t, WriteFileAtomic(target, []byte("lost"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "durable", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2, "temp file must be cleaned up")
}

func TestWriteFileAtomic_DirSyncFailureAfterRename(t *testing.T) {
	orig := syncDirFn
	syncDirFn = func(string) error { return errors.New("fsync: input/output error") }
	t.Cleanup(func() { syncDirFn = orig })

	path := filepath.Join(t.TempDir(), "todo.json")
	err := WriteFileAtomic(path, []byte("new"), 0o600)

	require.ErrorIs(t, err, ErrDirNotSynced)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	require.Equal(t, "new", string(data), "contents are replaced even though the dir sync failed")
}
