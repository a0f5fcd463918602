//go:build windows

package autolaunch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/windows/registry"
)

// writeFakeApp drops an executable file into a fresh temp directory and
// returns its absolute path.
func writeFakeApp(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "the-app.exe")
	if err := os.WriteFile(path, []byte("MZ"), 0755); err != nil {
		t.Fatalf("writing fake application: %v", err)
	}
	return path
}

// readRunValue reads a value from the current user's Run key directly.
func readRunValue(t *testing.T, name string) (string, bool) {
	t.Helper()
	key, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.QUERY_VALUE)
	if err != nil {
		t.Fatalf("opening Run key: %v", err)
	}
	defer key.Close()

	val, _, err := key.GetStringValue(name)
	if errors.Is(err, registry.ErrNotExist) {
		return "", false
	}
	if err != nil {
		t.Fatalf("reading Run value %q: %v", name, err)
	}
	return val, true
}

func TestRegistryRoundTrip(t *testing.T) {
	appPath := writeFakeApp(t)
	al := New("AutolaunchRoundTripTest", appPath)
	t.Cleanup(func() { _ = al.Disable() })

	enabled, err := al.IsEnabled()
	if err != nil {
		t.Fatalf("IsEnabled() error = %v", err)
	}
	if enabled {
		t.Fatal("IsEnabled() = true before Enable()")
	}

	if err := al.Enable(); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}

	val, ok := readRunValue(t, "AutolaunchRoundTripTest")
	if !ok {
		t.Fatal("Enable() left no Run value behind")
	}
	if want := `"` + appPath + `"`; val != want {
		t.Errorf("Run value = %q, want %q", val, want)
	}

	enabled, err = al.IsEnabled()
	if err != nil {
		t.Fatalf("IsEnabled() error = %v", err)
	}
	if !enabled {
		t.Fatal("IsEnabled() = false after Enable()")
	}

	if err := al.Enable(); err != nil {
		t.Fatalf("second Enable() error = %v", err)
	}

	if err := al.Disable(); err != nil {
		t.Fatalf("Disable() error = %v", err)
	}
	if _, ok := readRunValue(t, "AutolaunchRoundTripTest"); ok {
		t.Error("Run value still present after Disable()")
	}

	enabled, err = al.IsEnabled()
	if err != nil {
		t.Fatalf("IsEnabled() error = %v", err)
	}
	if enabled {
		t.Fatal("IsEnabled() = true after Disable()")
	}

	if err := al.Disable(); err != nil {
		t.Fatalf("second Disable() error = %v", err)
	}
}

func TestRegistryValueIncludesArgs(t *testing.T) {
	appPath := writeFakeApp(t)
	al, err := NewBuilder().
		SetAppName("AutolaunchArgsTest").
		SetAppPath(appPath).
		SetArgs("--profile", "work").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	t.Cleanup(func() { _ = al.Disable() })

	if err := al.Enable(); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	val, ok := readRunValue(t, "AutolaunchArgsTest")
	if !ok {
		t.Fatal("Enable() left no Run value behind")
	}
	if want := `"` + appPath + `" --profile work`; val != want {
		t.Errorf("Run value = %q, want %q", val, want)
	}
}

func TestCommandData(t *testing.T) {
	tests := []struct {
		name    string
		backend *registryBackend
		want    string
	}{
		{
			"path only",
			&registryBackend{appPath: `C:\Program Files\the-app.exe`},
			`"C:\Program Files\the-app.exe"`,
		},
		{
			"with args",
			&registryBackend{appPath: `C:\the-app.exe`, args: []string{"--minimized"}},
			`"C:\the-app.exe" --minimized`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.backend.commandData(); got != tt.want {
				t.Errorf("commandData() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnableRejectsBadPaths(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"relative", `relative\path\the-app.exe`},
		{"missing", filepath.Join(t.TempDir(), "no-such-app.exe")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			al := New("AutolaunchBadPathTest", tt.path)
			if err := al.Enable(); !errors.Is(err, ErrInvalidPath) {
				t.Errorf("Enable() error = %v, want ErrInvalidPath", err)
			}
			enabled, err := al.IsEnabled()
			if err != nil {
				t.Fatalf("IsEnabled() error = %v", err)
			}
			if enabled {
				t.Error("failed Enable() still left a Run value behind")
			}
		})
	}
}
