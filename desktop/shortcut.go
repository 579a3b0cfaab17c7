// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

package desktop

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShortcutUnsupported is returned by CreateShortcut on platforms
// without shortcut support.
var ErrShortcutUnsupported = errors.New("desktop shortcuts are not supported on this platform")

// CreateShortcut creates a shortcut to the executable at target inside the
// location directory. args are passed to the executable when the shortcut
// is launched; name is the display name and shortcut file base name; icon
// names the icon shown by the desktop environment.
//
// On Linux this writes an executable desktop entry file. Everywhere else
// it returns ErrShortcutUnsupported.
func CreateShortcut(location, target string, args []string, name, icon string) error {
	return createShortcut(location, target, args, name, icon)
}

// renderDesktopEntry builds the desktop entry file contents. Arguments are
// single-quoted so paths with spaces survive the Exec line.
func renderDesktopEntry(target string, args []string, name, icon string) string {
	argstring := ""
	if len(args) > 0 {
		argstring = " '" + strings.Join(args, "' '") + "'"
	}

	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "TryExec=%s\n", target)
	fmt.Fprintf(&b, "Exec=%s%s\n", target, argstring)
	fmt.Fprintf(&b, "Name=%s\n", name)
	fmt.Fprintf(&b, "Icon=%s\n", icon)
	return b.String()
}
