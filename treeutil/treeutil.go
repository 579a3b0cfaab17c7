// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

package treeutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/proxer05/PrismLauncher/fileutil"
	"github.com/proxer05/PrismLauncher/logutil"
)

// entryKind classifies a directory entry for traversal purposes.
type entryKind int

const (
	kindUnknown entryKind = iota
	kindFile
	kindDir
	kindLink
)

// classify determines how an entry is treated during deletion. Link
// detection is platform-specific (see isLink).
func classify(path string, info fs.FileInfo) entryKind {
	switch {
	case isLink(path, info):
		return kindLink
	case info.IsDir():
		return kindDir
	case info.Mode().IsRegular():
		return kindFile
	default:
		return kindUnknown
	}
}

// CopyOptions controls CopyTree behavior.
type CopyOptions struct {
	// FollowSymlinks copies link targets instead of recreating the links.
	// Forced on when running on Windows.
	FollowSymlinks bool
}

// CopyTree copies all entries under src into dst, creating the destination
// tree as needed. Files are copied byte for byte, directories recursed,
// and symlinks either followed or recreated according to opts.
//
// A failing entry does not stop the traversal; all per-entry failures are
// joined into the returned error. An immediate error is returned when src
// is not an existing directory or dst cannot be created.
func CopyTree(src, dst string, opts CopyOptions) error {
	// Always deep copy on Windows; recreating native links there is
	// unreliable.
	if runtime.GOOS == "windows" {
		opts.FollowSymlinks = true
	}

	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("source directory %s does not exist", src)
		}
		return fmt.Errorf("inspecting %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source %s is not a directory", src)
	}
	if err := fileutil.EnsureFolderPath(dst); err != nil {
		return err
	}
	return copyTree(src, dst, opts)
}

func copyTree(src, dst string, opts CopyOptions) error {
	logutil.Debug("copying directory", "src", src, "dst", dst)

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", src, err)
	}

	var errs []error
	for _, entry := range entries {
		innerSrc := filepath.Join(src, entry.Name())
		innerDst := filepath.Join(dst, entry.Name())
		if err := copyEntry(innerSrc, innerDst, opts); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func copyEntry(src, dst string, opts CopyOptions) error {
	info, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", src, err)
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		if !opts.FollowSymlinks {
			return copyLink(src, dst)
		}
		// Following: classify by the link target instead.
		info, err = os.Stat(src)
		if err != nil {
			return fmt.Errorf("resolving symlink %s: %w", src, err)
		}
	}

	switch {
	case info.IsDir():
		logutil.Debug("recursing", "src", src, "dst", dst)
		if err := fileutil.EnsureFolderPath(dst); err != nil {
			return err
		}
		return copyTree(src, dst, opts)
	case info.Mode().IsRegular():
		logutil.Debug("copying file", "src", src, "dst", dst)
		return copyFile(src, dst, info.Mode().Perm())
	default:
		logutil.Error("copy failed: unknown filesystem object", "path", src)
		return fmt.Errorf("unknown filesystem object %s", src)
	}
}

// copyLink recreates the symlink at src as a link at dst pointing to the
// same target.
func copyLink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf("reading symlink %s: %w", src, err)
	}
	logutil.Debug("recreating symlink", "src", src, "dst", dst, "target", target)
	if err := os.Symlink(target, dst); err != nil {
		return fmt.Errorf("creating symlink %s: %w", dst, err)
	}
	return nil
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}

// DeleteTree removes path and everything under it. Directories are
// recursed into before removal, so every directory is empty by the time it
// is deleted and the root goes last. Links (symlinks everywhere, reparse
// points on Windows) are removed without recursing into their targets.
//
// Returns nil when path does not exist or is not a directory. Per-entry
// failures do not stop the traversal and are joined into the returned
// error.
func DeleteTree(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("inspecting %s: %w", path, err)
	}
	// Only directories are tree-shaped; anything else is left alone.
	if !info.IsDir() {
		return nil
	}
	return deleteTree(path)
}

func deleteTree(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", path, err)
	}

	var errs []error
	for _, entry := range entries {
		if err := deleteEntry(filepath.Join(path, entry.Name())); err != nil {
			errs = append(errs, err)
		}
	}

	// All children are gone (or reported); remove the directory itself.
	if err := os.Remove(path); err != nil {
		errs = append(errs, fmt.Errorf("removing directory %s: %w", path, err))
	}
	return errors.Join(errs...)
}

func deleteEntry(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", path, err)
	}

	switch classify(path, info) {
	case kindLink:
		logutil.Debug("removing link", "path", path)
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing link %s: %w", path, err)
		}
		return nil
	case kindDir:
		logutil.Debug("recursing", "path", path)
		return deleteTree(path)
	case kindFile:
		logutil.Debug("removing file", "path", path)
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing file %s: %w", path, err)
		}
		return nil
	default:
		logutil.Error("delete failed: unknown filesystem object", "path", path)
		return fmt.Errorf("unknown filesystem object %s", path)
	}
}
