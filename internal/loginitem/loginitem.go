// Package loginitem drives the macOS Login Items list through AppleScript.
//
// Every mutation and query is one osascript invocation against the System
// Events application. The OS list is the only state; nothing is cached, and
// a crash mid-invocation can leave the list inconsistent with the caller's
// expectation. Callers needing stronger guarantees must serialize themselves.
package loginitem

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an AppleScript statement and returns its standard output.
// Production code uses OsascriptRunner; tests substitute a fake.
type Runner interface {
	Run(script string) (string, error)
}

// OsascriptRunner invokes the system osascript interpreter. The call blocks
// until the subprocess exits; there is no timeout.
type OsascriptRunner struct{}

// Run executes script with `osascript -e`. A non-zero exit is an error
// carrying the interpreter's stderr when available.
func (OsascriptRunner) Run(script string) (string, error) {
	out, err := exec.Command("osascript", "-e", script).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("osascript: %s: %w", bytes.TrimSpace(exitErr.Stderr), err)
		}
		return "", fmt.Errorf("osascript: %w", err)
	}
	return string(out), nil
}

const tellSystemEvents = `tell application "System Events" to `

// AddScript builds the statement that registers a login item for path under
// name, with the hidden property controlling windowless launch.
func AddScript(name, path string, hidden bool) string {
	return fmt.Sprintf(
		tellSystemEvents+`make login item at end with properties {name:"%s",path:"%s",hidden:%t}`,
		name, path, hidden)
}

// RemoveScript builds the statement that deletes the login item named name.
// The exists guard makes deleting a missing item a successful no-op.
func RemoveScript(name string) string {
	return fmt.Sprintf(
		tellSystemEvents+`if exists login item "%s" then delete login item "%s"`,
		name, name)
}

// ListScript builds the statement that returns every login item name as a
// comma-separated list.
func ListScript() string {
	return tellSystemEvents + `get the name of every login item`
}

// ParseNames splits osascript's comma-separated list output into trimmed
// names. Empty output yields nil.
func ParseNames(out string) []string {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	parts := strings.Split(out, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// Client manages login items through a Runner. The zero value runs osascript.
type Client struct {
	Runner Runner
}

func (c *Client) runner() Runner {
	if c.Runner != nil {
		return c.Runner
	}
	return OsascriptRunner{}
}

// Add registers a login item for path under name.
func (c *Client) Add(name, path string, hidden bool) error {
	if _, err := c.runner().Run(AddScript(name, path, hidden)); err != nil {
		return fmt.Errorf("adding login item %q: %w", name, err)
	}
	return nil
}

// Remove deletes the login item named name. A missing item is not an error.
func (c *Client) Remove(name string) error {
	if _, err := c.runner().Run(RemoveScript(name)); err != nil {
		return fmt.Errorf("removing login item %q: %w", name, err)
	}
	return nil
}

// Contains reports whether a login item named name exists. A failing query is
// surfaced as an error, never as "not present".
func (c *Client) Contains(name string) (bool, error) {
	out, err := c.runner().Run(ListScript())
	if err != nil {
		return false, fmt.Errorf("listing login items: %w", err)
	}
	for _, n := range ParseNames(out) {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}
