// Package xdg renders and manages XDG autostart desktop entries.
//
// Entries live in the user's autostart directory (XDG_CONFIG_HOME/autostart,
// usually ~/.config/autostart) and are named after the application, so
// repeated installs always target the same file.
package xdg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Guliveer/autolaunch/internal/pathutil"
)

// entryTemplate is the desktop entry written during installation. The
// X-GNOME-Autostart-enabled key marks the entry active for desktop
// environments that honor it; removal of the file is the disabled state.
var entryTemplate = template.Must(template.New("desktop").Parse(`[Desktop Entry]
Type=Application
Version=1.0
Name={{.Name}}
Comment=Autostart entry for {{.Name}}
Exec={{.Exec}}
StartupNotify=false
Terminal=false
X-GNOME-Autostart-enabled=true
`))

// AutostartDir returns the user's autostart directory. XDG_CONFIG_HOME is
// honored through os.UserConfigDir.
func AutostartDir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(cfg, "autostart"), nil
}

// Render produces the desktop entry document for an application name and its
// full Exec command line.
func Render(name, exec string) (string, error) {
	var b strings.Builder
	data := struct{ Name, Exec string }{Name: name, Exec: exec}
	if err := entryTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering desktop entry: %w", err)
	}
	return b.String(), nil
}

// Entry is one autostart desktop entry bound to an application name.
type Entry struct {
	Name string
	Exec string // full command line: the program path followed by its arguments
	Dir  string // target directory; empty means the user's autostart directory
}

// Path returns the desktop file location for this entry.
func (e *Entry) Path() (string, error) {
	dir, err := e.resolveDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, e.Name+".desktop"), nil
}

// Install renders the entry and writes it, creating the autostart directory
// if missing. An existing entry with the same name is overwritten.
func (e *Entry) Install() error {
	dir, err := e.resolveDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating autostart directory: %w", err)
	}
	entry, err := Render(e.Name, e.Exec)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, e.Name+".desktop")
	if err := os.WriteFile(path, []byte(entry), 0644); err != nil {
		return fmt.Errorf("writing desktop entry: %w", err)
	}
	return nil
}

// Uninstall removes the desktop file. A file that is already gone is not an
// error.
func (e *Entry) Uninstall() error {
	path, err := e.Path()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing desktop entry: %w", err)
	}
	return nil
}

// Installed reports whether the desktop file exists. The file contents are
// not inspected; existence is the enabled state.
func (e *Entry) Installed() (bool, error) {
	path, err := e.Path()
	if err != nil {
		return false, err
	}
	ok, err := pathutil.Exists(path)
	if err != nil {
		return false, fmt.Errorf("checking desktop entry: %w", err)
	}
	return ok, nil
}

func (e *Entry) resolveDir() (string, error) {
	if e.Dir != "" {
		return e.Dir, nil
	}
	return AutostartDir()
}
