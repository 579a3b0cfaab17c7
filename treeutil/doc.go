// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

// Package treeutil implements recursive directory tree operations: deep
// copy with a symlink policy and recursive delete with platform-aware link
// detection.
//
// Both operations walk the tree depth-first and never abort on the first
// failure. Every failing entry is reported; the returned error joins all
// per-entry failures, so err == nil means every entry succeeded.
//
// On Windows, reparse points (junctions, symlinks) are detected with a
// native attribute query and removed as links rather than recursed into.
// On Unix systems ordinary symlink detection applies. Copying always
// follows symlinks on Windows regardless of the requested policy, because
// recreating native links there is unreliable.
package treeutil
