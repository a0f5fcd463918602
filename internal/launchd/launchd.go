// Package launchd renders and manages per-user LaunchAgent property lists.
//
// A LaunchAgent is identified by a reverse-domain label derived from the
// application name. The label doubles as the plist filename, so repeated
// installs always target the same file.
package launchd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Guliveer/autolaunch/internal/pathutil"
)

const labelPrefix = "com.autolaunch."

// plistTemplate is the LaunchAgent document written during installation.
// String nodes are XML-escaped; launchd refuses plists with raw metacharacters.
var plistTemplate = template.Must(template.New("plist").
	Funcs(template.FuncMap{"xml": escapeXML}).
	Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>{{xml .Label}}</string>
    <key>ProgramArguments</key>
    <array>
{{- range .Args}}
        <string>{{xml .}}</string>
{{- end}}
    </array>
    <key>RunAtLoad</key>
    <true/>
</dict>
</plist>
`))

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeXML(s string) string { return xmlEscaper.Replace(s) }

// Label returns the reverse-domain identifier for appName, used as both the
// plist filename and its Label key. The transform is deterministic: the name
// is lowercased and every character outside [a-z0-9] is dropped; a name with
// nothing left falls back to "app".
func Label(appName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(appName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return labelPrefix + "app"
	}
	return labelPrefix + b.String()
}

// Dir returns the per-user LaunchAgents directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, "Library", "LaunchAgents"), nil
}

// Plist renders the LaunchAgent document for label with the given program
// argument vector.
func Plist(label string, args []string) (string, error) {
	var b strings.Builder
	data := struct {
		Label string
		Args  []string
	}{Label: label, Args: args}
	if err := plistTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering plist: %w", err)
	}
	return b.String(), nil
}

// Agent is one LaunchAgent plist bound to a label.
type Agent struct {
	Label string
	Args  []string // ProgramArguments: the program path first, then its arguments
	Dir   string   // target directory; empty means the per-user LaunchAgents directory
}

// Path returns the plist location for this agent.
func (a *Agent) Path() (string, error) {
	dir, err := a.resolveDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, a.Label+".plist"), nil
}

// Install renders the plist and writes it, creating the LaunchAgents
// directory if missing. An existing plist with the same label is overwritten.
func (a *Agent) Install() error {
	dir, err := a.resolveDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating LaunchAgents directory: %w", err)
	}
	plist, err := Plist(a.Label, a.Args)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, a.Label+".plist")
	if err := os.WriteFile(path, []byte(plist), 0644); err != nil {
		return fmt.Errorf("writing plist: %w", err)
	}
	return nil
}

// Uninstall removes the plist. A plist that is already gone is not an error.
func (a *Agent) Uninstall() error {
	path, err := a.Path()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing plist: %w", err)
	}
	return nil
}

// Installed reports whether the plist exists. The file contents are not
// inspected; existence is the enabled state.
func (a *Agent) Installed() (bool, error) {
	path, err := a.Path()
	if err != nil {
		return false, err
	}
	ok, err := pathutil.Exists(path)
	if err != nil {
		return false, fmt.Errorf("checking plist: %w", err)
	}
	return ok, nil
}

func (a *Agent) resolveDir() (string, error) {
	if a.Dir != "" {
		return a.Dir, nil
	}
	return Dir()
}
