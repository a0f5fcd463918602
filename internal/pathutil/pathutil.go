// Package pathutil validates application paths before a backend persists them.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether path refers to an existing filesystem entry.
// A missing entry is not an error; any other stat failure is returned so
// callers can tell "absent" from "inaccessible".
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// LoginItemName derives the name macOS assigns to a login item: the last
// path element with a trailing ".app" bundle extension removed. Any other
// extension is kept as-is.
func LoginItemName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".app")
}
