// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

// Package testutil provides common testing helpers for the filesystem
// utility packages.
//
// This package includes helpers for:
//   - Building fixture trees from a path→content map (WriteTree)
//   - Snapshotting a directory tree back into such a map (ReadTree)
//   - Capturing log output during test execution (CaptureLogs)
//
// All functions use t.Helper() for proper test line reporting.
package testutil
