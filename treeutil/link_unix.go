//go:build !windows

// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

package treeutil

import "io/fs"

// isLink reports whether the entry is a symbolic link. The path parameter
// is unused on Unix systems; lstat mode bits are authoritative here.
func isLink(_ string, info fs.FileInfo) bool {
	return info.Mode()&fs.ModeSymlink != 0
}
