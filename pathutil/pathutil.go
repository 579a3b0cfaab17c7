// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultProbeLimit is the number of numbered candidates UniqueDirName
// tries before giving up.
const DefaultProbeLimit = 9000

// badFilenameChars are rejected by at least one supported filesystem, plus
// '!' which breaks Java classpath handling.
const badFilenameChars = `"\/?<>:*|!`

// Combine joins path segments with the platform separator and
// canonicalizes the result, collapsing "." and ".." segments and redundant
// separators. An empty segment is skipped; if only one non-empty segment
// remains it is returned unchanged.
func Combine(elem ...string) string {
	out := ""
	for _, e := range elem {
		switch {
		case e == "":
			// joining with an empty segment returns the other side unchanged
		case out == "":
			out = e
		default:
			out = filepath.Clean(out + string(filepath.Separator) + e)
		}
	}
	return out
}

// AbsoluteDir returns the absolute path of the directory containing path.
func AbsoluteDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Dir(abs), nil
}

// Normalize makes path relative to the current working directory if its
// absolute form lies under it; otherwise it returns the absolute form.
func Normalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return abs
	}

	if abs == cwd {
		return "."
	}
	if strings.HasPrefix(abs, cwd+string(filepath.Separator)) {
		rel, err := filepath.Rel(cwd, abs)
		if err == nil {
			return rel
		}
	}
	return abs
}

// RemoveInvalidFilenameChars replaces every character of s that cannot
// appear in a filename with replacement. The output has the same length as
// the input.
func RemoveInvalidFilenameChars(s string, replacement rune) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(badFilenameChars, r) {
			return replacement
		}
		return r
	}, s)
}

// UniqueDirName returns a directory name derived from base that does not
// yet exist under inDir, probing base, base1, base2, … up to
// DefaultProbeLimit. See UniqueDirNameLimit.
func UniqueDirName(base, inDir string) string {
	return UniqueDirNameLimit(base, inDir, DefaultProbeLimit)
}

// UniqueDirNameLimit is UniqueDirName with an explicit probe limit. The
// base name is sanitized with '-' first. Returns "" when every candidate up
// to the limit is taken.
func UniqueDirNameLimit(base, inDir string, limit int) string {
	baseName := RemoveInvalidFilenameChars(base, '-')
	for num := 0; num <= limit; num++ {
		dirName := baseName
		if num > 0 {
			dirName = baseName + strconv.Itoa(num)
		}
		if _, err := os.Lstat(Combine(inDir, dirName)); err != nil {
			return dirName
		}
	}
	return ""
}

// ResolveExecutable resolves name to an absolute executable path.
//
// A bare name (no path separator) is searched for on the system executable
// search path. A name containing a separator is checked directly. Returns
// "" if the name is empty, not found, or not executable.
func ResolveExecutable(name string) string {
	if name == "" {
		return ""
	}
	// exec.LookPath performs the PATH search for bare names and checks the
	// file directly when the name contains a separator; either way it
	// verifies the candidate exists and is executable.
	path, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	return abs
}

// IsProblematicJavaPath reports whether the absolute form of path contains
// '!', which Java mistakes for a jar separator in classpath entries.
func IsProblematicJavaPath(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return strings.Contains(abs, "!")
}
