//go:build !linux && !windows

// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

package desktop

import "github.com/proxer05/PrismLauncher/logutil"

func createShortcut(location, target string, args []string, name, icon string) error {
	logutil.Warn("desktop shortcuts are not supported on this platform")
	return ErrShortcutUnsupported
}
