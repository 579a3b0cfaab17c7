// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

// Package fileutil provides atomic file I/O and directory creation helpers.
//
// # Atomic Writes
//
// Write never leaves a destination file in a partial state. The buffer goes
// to a uniquely named temporary file in the destination directory first and
// is renamed over the destination only after a successful sync and close.
// Readers of the destination path either see the previous contents or the
// complete new contents, never a mix. Concurrent writers to the same path
// are not coordinated; the last commit wins.
//
// # Error Kinds
//
// Failures wrap one of the exported sentinel errors so callers can dispatch
// on the failing stage without parsing messages:
//
//	if err := fileutil.Write(path, data); errors.Is(err, fileutil.ErrCommit) {
//	    // the temp file was written but could not replace the destination
//	}
//
// Every returned error also carries the target path and the underlying OS
// error text.
//
// # Permissions
//
// Directories are created with DirPermission (0755) and files with
// FilePermission (0644).
package fileutil
