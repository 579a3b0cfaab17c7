// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

// Package desktop integrates with the user's desktop environment: opening
// files and folders in the OS default handler, locating the desktop
// directory and creating shortcuts.
//
// Opening a path is fire-and-forget; failures are logged but never
// returned, since there is nothing useful a caller can do about a missing
// handler.
//
// Shortcut support is platform-specific. On Linux a desktop entry file is
// written and marked executable. Shell link (.lnk) creation on Windows is
// not implemented and reports ErrShortcutUnsupported, as do all other
// platforms.
package desktop
