// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenRead(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		data []byte
	}{
		{"plain text", []byte("hello")},
		{"empty buffer", []byte{}},
		{"binary", []byte{0x00, 0xff, 0x10, 0x00, 0x7f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.name+".bin")
			require.NoError(t, Write(path, tt.data))

			got, err := Read(path)
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestWriteCreatesParentDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "x", "y.txt")

	require.NoError(t, Write(path, []byte("hello")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
	assert.Len(t, data, 5)
}

func TestWriteLeavesNoTempArtifacts(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, Write(filepath.Join(tmpDir, "y.txt"), []byte("hello")))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "y.txt", entries[0].Name())
}

func TestWriteOverwritesAtomically(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.txt")

	require.NoError(t, Write(path, []byte("first")))
	require.NoError(t, Write(path, []byte("second")))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestWriteFailureKeepsExistingFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory write permissions are not enforced the same way on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are not enforced")
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "keep.txt")
	require.NoError(t, Write(path, []byte("original")))

	// Make the directory unwritable so the temp file cannot be created.
	require.NoError(t, os.Chmod(tmpDir, 0500))
	t.Cleanup(func() { _ = os.Chmod(tmpDir, 0700) })

	err := Write(path, []byte("replacement"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOpen)

	require.NoError(t, os.Chmod(tmpDir, 0700))
	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}

func TestWriteDirCreateError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory write permissions are not enforced the same way on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are not enforced")
	}

	tmpDir := t.TempDir()
	require.NoError(t, os.Chmod(tmpDir, 0500))
	t.Cleanup(func() { _ = os.Chmod(tmpDir, 0700) })

	err := Write(filepath.Join(tmpDir, "sub", "file.txt"), []byte("data"))
	assert.ErrorIs(t, err, ErrDirCreate)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOpen)
}

func TestEnsureFilePath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a", "b", "c.txt")

	require.NoError(t, EnsureFilePath(path))

	// The parents exist, the file itself does not.
	assert.True(t, DirExists(filepath.Join(tmpDir, "a", "b")))
	assert.False(t, Exists(path))
}

func TestEnsureFolderPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a", "b", "c")

	require.NoError(t, EnsureFolderPath(path))
	assert.True(t, DirExists(path))

	// Idempotent for an existing directory.
	require.NoError(t, EnsureFolderPath(path))
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "present.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	assert.True(t, Exists(file))
	assert.True(t, Exists(tmpDir))
	assert.False(t, Exists(filepath.Join(tmpDir, "absent.txt")))

	assert.True(t, DirExists(tmpDir))
	assert.False(t, DirExists(file))
}
