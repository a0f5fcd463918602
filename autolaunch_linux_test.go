//go:build linux

package autolaunch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFakeApp drops an executable file into a fresh temp directory and
// returns its absolute path.
func writeFakeApp(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "the-app")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("writing fake application: %v", err)
	}
	return path
}

func TestEnableDisableRoundTrip(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	appPath := writeFakeApp(t)

	al := New("the-app", appPath, false)

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

	entryPath := filepath.Join(configHome, "autostart", "the-app.desktop")
	data, err := os.ReadFile(entryPath)
	if err != nil {
		t.Fatalf("reading desktop entry: %v", err)
	}
	if !strings.Contains(string(data), "Exec="+appPath) {
		t.Errorf("desktop entry lacks the Exec line:\n%s", data)
	}

	enabled, err = al.IsEnabled()
	if err != nil {
		t.Fatalf("IsEnabled() error = %v", err)
	}
	if !enabled {
		t.Fatal("IsEnabled() = false after Enable()")
	}

	// Enabling twice overwrites in place.
	if err := al.Enable(); err != nil {
		t.Fatalf("second Enable() error = %v", err)
	}

	if err := al.Disable(); err != nil {
		t.Fatalf("Disable() error = %v", err)
	}
	if _, err := os.Stat(entryPath); !os.IsNotExist(err) {
		t.Errorf("desktop entry still present after Disable(): stat error = %v", err)
	}

	enabled, err = al.IsEnabled()
	if err != nil {
		t.Fatalf("IsEnabled() error = %v", err)
	}
	if enabled {
		t.Fatal("IsEnabled() = true after Disable()")
	}

	// Disabling twice is fine.
	if err := al.Disable(); err != nil {
		t.Fatalf("second Disable() error = %v", err)
	}
}

func TestEnableRejectsBadPaths(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	tests := []struct {
		name string
		path string
	}{
		{"relative", "relative/path/to/app"},
		{"missing", filepath.Join(t.TempDir(), "no-such-app")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			al := New("the-app", tt.path, false)
			if err := al.Enable(); !errors.Is(err, ErrInvalidPath) {
				t.Errorf("Enable() error = %v, want ErrInvalidPath", err)
			}
			enabled, err := al.IsEnabled()
			if err != nil {
				t.Fatalf("IsEnabled() error = %v", err)
			}
			if enabled {
				t.Error("failed Enable() still left an artifact behind")
			}
		})
	}
}

func TestEnableWritesFullCommandLine(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	appPath := writeFakeApp(t)

	al, err := NewBuilder().
		SetAppName("the-app").
		SetAppPath(appPath).
		SetArgs("--profile", "work").
		SetHidden(true).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if err := al.Enable(); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(configHome, "autostart", "the-app.desktop"))
	if err != nil {
		t.Fatalf("reading desktop entry: %v", err)
	}
	want := "Exec=" + appPath + " --profile work --hidden"
	if !strings.Contains(string(data), want) {
		t.Errorf("desktop entry Exec line = missing %q in:\n%s", want, data)
	}
}

func TestIsEnabledDoesNotCreateArtifacts(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	al := New("the-app", writeFakeApp(t), false)
	if _, err := al.IsEnabled(); err != nil {
		t.Fatalf("IsEnabled() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(configHome, "autostart")); !os.IsNotExist(err) {
		t.Errorf("IsEnabled() created the autostart directory: stat error = %v", err)
	}
}
