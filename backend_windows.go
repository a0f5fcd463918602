//go:build windows

package autolaunch

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/windows/registry"
)

const supported = true

// runKey is the per-user autostart location; values under it are command
// lines started at login.
const runKey = `Software\Microsoft\Windows\CurrentVersion\Run`

// New creates an AutoLaunch for appName at appPath. On Windows the autostart
// artifact is a string value named appName under the current user's Run key.
func New(appName, appPath string) *AutoLaunch {
	s := settings{appName: appName, appPath: appPath}
	return s.newFacade(newRegistryBackend(s))
}

// newAutoLaunch resolves builder settings on Windows. The hidden option has
// no registry representation and is dropped; use_launch_agent is rejected.
func newAutoLaunch(s settings) (*AutoLaunch, error) {
	if s.useLaunchAgent {
		return nil, fmt.Errorf("%w: launch agents are a macOS mechanism", ErrUnsupportedPlatform)
	}
	s.hidden = false
	return s.newFacade(newRegistryBackend(s)), nil
}

// registryBackend persists the autostart state as a REG_SZ value under the
// current user's Run key.
type registryBackend struct {
	valueName string
	appPath   string
	args      []string
}

func newRegistryBackend(s settings) *registryBackend {
	return &registryBackend{valueName: s.appName, appPath: s.appPath, args: s.args}
}

// commandData builds the value payload: the quoted application path so it
// survives spaces, followed by any launch arguments.
func (r *registryBackend) commandData() string {
	cmd := `"` + r.appPath + `"`
	if len(r.args) > 0 {
		cmd += " " + strings.Join(r.args, " ")
	}
	return cmd
}

func (r *registryBackend) enable() error {
	if err := validatePath(r.appPath); err != nil {
		return err
	}
	key, _, err := registry.CreateKey(registry.CURRENT_USER, runKey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("opening Run key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue(r.valueName, r.commandData()); err != nil {
		return fmt.Errorf("writing Run value %q: %w", r.valueName, err)
	}
	return nil
}

func (r *registryBackend) disable() error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.SET_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening Run key: %w", err)
	}
	defer key.Close()

	if err := key.DeleteValue(r.valueName); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("deleting Run value %q: %w", r.valueName, err)
	}
	return nil
}

func (r *registryBackend) isEnabled() (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("opening Run key: %w", err)
	}
	defer key.Close()

	if _, _, err := key.GetStringValue(r.valueName); err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading Run value %q: %w", r.valueName, err)
	}
	return true, nil
}
