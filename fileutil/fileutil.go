// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permissions
const (
	// DirPermission is the default permission for creating directories (rwxr-xr-x)
	DirPermission = 0755
	// FilePermission is the default permission for creating files (rw-r--r--)
	FilePermission = 0644
)

// Sentinel error kinds. Errors returned by this package wrap exactly one of
// these, so callers can identify the failing stage with errors.Is.
var (
	// ErrDirCreate indicates a parent directory could not be created.
	ErrDirCreate = errors.New("directory creation failed")
	// ErrOpen indicates a file could not be opened or created.
	ErrOpen = errors.New("open failed")
	// ErrWrite indicates fewer bytes were written than requested.
	ErrWrite = errors.New("write failed")
	// ErrCommit indicates the temporary file could not replace the destination.
	ErrCommit = errors.New("commit failed")
	// ErrRead indicates the file contents could not be read in full.
	ErrRead = errors.New("read failed")
)

// Write writes data to path atomically.
//
// Parent directories are created as needed. The data goes to a unique
// temporary file in the destination directory, which is synced, closed and
// renamed over path. On any failure the temporary file is removed and a
// pre-existing file at path is left untouched.
func Write(path string, data []byte) error {
	if err := EnsureFilePath(path); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("%w: couldn't open a temp file for %s: %w", ErrOpen, path, err)
	}
	tmpPath := tmpFile.Name()
	// Ensure file is closed on all paths
	defer func() { _ = tmpFile.Close() }()

	n, err := tmpFile.Write(data)
	if err != nil || n != len(data) {
		_ = os.Remove(tmpPath)
		if err == nil {
			err = io.ErrShortWrite
		}
		return fmt.Errorf("%w: error writing data to %s: %w", ErrWrite, path, err)
	}

	// Flush before rename so the commit is durable, not just atomic.
	if err := tmpFile.Sync(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: error syncing data to %s: %w", ErrCommit, path, err)
	}

	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: error closing temp file for %s: %w", ErrCommit, path, err)
	}

	// CreateTemp uses 0600; the final file gets the package default.
	if err := os.Chmod(tmpPath, FilePermission); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: error setting permissions on %s: %w", ErrCommit, path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: error committing data to %s: %w", ErrCommit, path, err)
	}

	return nil
}

// Read reads the entire file at path.
//
// The file size is determined at open and exactly that many bytes are read;
// a mismatch is reported as ErrRead.
func Read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to open %s for reading: %w", ErrOpen, path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: unable to stat %s: %w", ErrRead, path, err)
	}

	data := make([]byte, info.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("%w: error reading data from %s: %w", ErrRead, path, err)
	}
	return data, nil
}

// EnsureFilePath creates all parent directories of the given file path.
func EnsureFilePath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPermission); err != nil {
		return fmt.Errorf("%w: unable to create directory %s: %w", ErrDirCreate, dir, err)
	}
	return nil
}

// EnsureFolderPath creates the given directory path itself, including all
// parents.
func EnsureFolderPath(path string) error {
	if err := os.MkdirAll(path, DirPermission); err != nil {
		return fmt.Errorf("%w: unable to create directory %s: %w", ErrDirCreate, path, err)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
