//go:build windows

// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

package treeutil

import (
	"io/fs"

	"golang.org/x/sys/windows"
)

// isLink reports whether the entry is a reparse point. Junctions and mount
// points do not always surface as symlinks through lstat, so the attribute
// query is authoritative; lstat mode bits are the fallback when the query
// fails.
func isLink(path string, info fs.FileInfo) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return info.Mode()&fs.ModeSymlink != 0
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return info.Mode()&fs.ModeSymlink != 0
	}
	return attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0
}
