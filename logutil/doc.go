// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides the shared structured logger for the filesystem
// utility packages.
//
// A single global slog.Logger writes text or JSON to stderr. Debug logging
// is switched on either programmatically via SetupLogger or through the
// LAUNCHER_DEBUG environment variable. SetOutput redirects the logger,
// which tests use to capture diagnostics.
//
// All functions are safe for concurrent use.
package logutil
