// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

package desktop

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxer05/PrismLauncher/fileutil"
	"github.com/proxer05/PrismLauncher/testutil"
)

// stubLaunch replaces the default-handler launcher for the duration of the
// test and records the paths handed to it.
func stubLaunch(t *testing.T, err error) *[]string {
	t.Helper()

	var opened []string
	orig := launch
	launch = func(path string) error {
		opened = append(opened, path)
		return err
	}
	t.Cleanup(func() { launch = orig })
	return &opened
}

func TestOpenFilePassesAbsolutePath(t *testing.T) {
	opened := stubLaunch(t, nil)

	OpenFile("some/relative/file.txt")

	require.Len(t, *opened, 1)
	assert.True(t, filepath.IsAbs((*opened)[0]))
	assert.Equal(t, "file.txt", filepath.Base((*opened)[0]))
}

func TestOpenDirCreatesMissingDirectory(t *testing.T) {
	opened := stubLaunch(t, nil)

	path := filepath.Join(t.TempDir(), "new-instance")
	OpenDir(path, true)

	assert.True(t, fileutil.DirExists(path))
	require.Len(t, *opened, 1)
	assert.Equal(t, path, (*opened)[0])
}

func TestOpenDirWithoutEnsure(t *testing.T) {
	opened := stubLaunch(t, nil)

	path := filepath.Join(t.TempDir(), "absent")
	OpenDir(path, false)

	assert.False(t, fileutil.Exists(path))
	// Still handed off; the handler decides what a missing path means.
	assert.Len(t, *opened, 1)
}

func TestOpenFileSwallowsLauncherErrors(t *testing.T) {
	buf := testutil.CaptureLogs(t)
	stubLaunch(t, assert.AnError)

	OpenFile("whatever.txt")

	assert.Contains(t, buf.String(), "could not open path in default handler")
}

func TestDirIsAbsoluteWhenSet(t *testing.T) {
	dir := Dir()
	if dir == "" {
		t.Skip("no desktop directory in this environment")
	}
	assert.True(t, filepath.IsAbs(dir))
}

func TestRenderDesktopEntry(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "no args",
			args: nil,
			want: "[Desktop Entry]\n" +
				"Type=Application\n" +
				"TryExec=/opt/launcher/bin/launcher\n" +
				"Exec=/opt/launcher/bin/launcher\n" +
				"Name=My Instance\n" +
				"Icon=launcher\n",
		},
		{
			name: "quoted args",
			args: []string{"--launch", "my instance"},
			want: "[Desktop Entry]\n" +
				"Type=Application\n" +
				"TryExec=/opt/launcher/bin/launcher\n" +
				"Exec=/opt/launcher/bin/launcher '--launch' 'my instance'\n" +
				"Name=My Instance\n" +
				"Icon=launcher\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderDesktopEntry("/opt/launcher/bin/launcher", tt.args, "My Instance", "launcher")
			assert.Equal(t, tt.want, got)
		})
	}
}
