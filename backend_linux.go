//go:build linux

package autolaunch

import (
	"fmt"
	"strings"

	"github.com/Guliveer/autolaunch/internal/xdg"
)

const supported = true

// New creates an AutoLaunch for appName at appPath. On Linux the autostart
// artifact is an XDG desktop entry named after the application; hidden
// appends a --hidden flag to the persisted command line.
func New(appName, appPath string, hidden bool) *AutoLaunch {
	s := settings{appName: appName, appPath: appPath, hidden: hidden}
	return s.newFacade(newDesktopBackend(s))
}

// newAutoLaunch resolves builder settings on Linux.
func newAutoLaunch(s settings) (*AutoLaunch, error) {
	if s.useLaunchAgent {
		return nil, fmt.Errorf("%w: launch agents are a macOS mechanism", ErrUnsupportedPlatform)
	}
	return s.newFacade(newDesktopBackend(s)), nil
}

// desktopBackend persists the autostart state as a desktop entry in the
// user's XDG autostart directory.
type desktopBackend struct {
	appName string
	appPath string
	command []string
}

func newDesktopBackend(s settings) *desktopBackend {
	return &desktopBackend{
		appName: s.appName,
		appPath: s.appPath,
		command: s.commandLine(),
	}
}

func (d *desktopBackend) entry() *xdg.Entry {
	return &xdg.Entry{Name: d.appName, Exec: strings.Join(d.command, " ")}
}

func (d *desktopBackend) enable() error {
	if err := validatePath(d.appPath); err != nil {
		return err
	}
	return d.entry().Install()
}

func (d *desktopBackend) disable() error {
	return d.entry().Uninstall()
}

func (d *desktopBackend) isEnabled() (bool, error) {
	return d.entry().Installed()
}
