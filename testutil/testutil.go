// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/proxer05/PrismLauncher/logutil"
)

// WriteTree creates a directory tree under root from a map of
// slash-separated relative paths to file contents. A key with a trailing
// slash creates an (empty) directory and its value is ignored.
//
// Example:
//
//	testutil.WriteTree(t, root, map[string]string{
//	    "a.txt":      "hello",
//	    "sub/b.txt":  "world",
//	    "empty/":     "",
//	})
func WriteTree(t *testing.T, root string, tree map[string]string) {
	t.Helper()

	for rel, content := range tree {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatalf("Failed to create fixture directory %s: %v", path, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create fixture directory for %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create fixture file %s: %v", path, err)
		}
	}
}

// ReadTree snapshots the directory tree under root into the map form used
// by WriteTree: files map to their contents, directories to a key with a
// trailing slash and empty value. Symlinks are skipped; tests that care
// about links check them explicitly.
func ReadTree(t *testing.T, root string) map[string]string {
	t.Helper()

	tree := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		switch {
		case d.Type()&fs.ModeSymlink != 0:
			// skip
		case d.IsDir():
			tree[rel+"/"] = ""
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			tree[rel] = string(data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to read tree under %s: %v", root, err)
	}
	return tree
}

// CaptureLogs redirects the shared logger into a buffer for the duration
// of the test and returns the buffer. Debug level is enabled so traversal
// diagnostics are captured too.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	logutil.SetupLogger(true, false)
	logutil.SetOutput(&buf)
	t.Cleanup(func() {
		logutil.SetupLogger(false, false)
	})
	return &buf
}
