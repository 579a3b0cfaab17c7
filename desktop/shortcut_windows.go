//go:build windows

// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

package desktop

// TODO: implement .lnk creation through IShellLink once COM interop is
// wired up; until then shortcut creation reports failure on Windows.
func createShortcut(location, target string, args []string, name, icon string) error {
	return ErrShortcutUnsupported
}
