// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

package desktop

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/browser"

	"github.com/proxer05/PrismLauncher/fileutil"
	"github.com/proxer05/PrismLauncher/logutil"
)

// launch hands a local path to the OS default-handler launcher.
// Overridable in tests.
var launch = browser.OpenFile

// Dir returns the user's desktop directory as reported by the OS standard
// user-directories mechanism.
func Dir() string {
	return xdg.UserDirs.Desktop
}

// OpenDir opens the directory at path in the OS default file manager. When
// ensureExists is true the directory is created first if missing. Failures
// are logged, not returned.
func OpenDir(path string, ensureExists bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		logutil.Warn("could not resolve path", "path", path, "error", err)
		return
	}
	if ensureExists && !fileutil.DirExists(abs) {
		if err := fileutil.EnsureFolderPath(abs); err != nil {
			logutil.Warn("could not create directory before opening", "path", abs, "error", err)
		}
	}
	openPath(abs)
}

// OpenFile opens the file at path in its OS default handler. Failures are
// logged, not returned.
func OpenFile(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		logutil.Warn("could not resolve path", "path", path, "error", err)
		return
	}
	openPath(abs)
}

func openPath(abs string) {
	logutil.Debug("opening in default handler", "path", abs)
	if err := launch(abs); err != nil {
		logutil.Warn("could not open path in default handler", "path", abs, "error", err)
	}
}
