//go:build linux

// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

package desktop

import (
	"fmt"
	"os"

	"github.com/proxer05/PrismLauncher/fileutil"
	"github.com/proxer05/PrismLauncher/pathutil"
)

func createShortcut(location, target string, args []string, name, icon string) error {
	path := pathutil.Combine(location, name+".desktop")

	if err := fileutil.Write(path, []byte(renderDesktopEntry(target, args, name, icon))); err != nil {
		return fmt.Errorf("writing desktop entry %s: %w", path, err)
	}
	// Desktop environments refuse entries that are not executable.
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("marking desktop entry %s executable: %w", path, err)
	}
	return nil
}
