//go:build darwin

package autolaunch

import (
	"github.com/Guliveer/autolaunch/internal/launchd"
	"github.com/Guliveer/autolaunch/internal/loginitem"
	"github.com/Guliveer/autolaunch/internal/pathutil"
)

const supported = true

// New creates an AutoLaunch for appName at appPath. useLaunchAgent selects a
// per-user LaunchAgent plist over the default AppleScript-managed login item;
// hidden asks the application to start without windows.
//
// With the login item mechanism the name shown by the OS always tracks the
// last element of appPath (minus a ".app" bundle extension), so a mismatched
// appName is corrected silently rather than rejected.
func New(appName, appPath string, useLaunchAgent, hidden bool) *AutoLaunch {
	return newDarwin(settings{
		appName:        appName,
		appPath:        appPath,
		useLaunchAgent: useLaunchAgent,
		hidden:         hidden,
	})
}

// newAutoLaunch resolves builder settings on macOS.
func newAutoLaunch(s settings) (*AutoLaunch, error) {
	return newDarwin(s), nil
}

func newDarwin(s settings) *AutoLaunch {
	if s.useLaunchAgent {
		return s.newFacade(&launchAgentBackend{
			label:   launchd.Label(s.appName),
			appPath: s.appPath,
			command: s.commandLine(),
		})
	}
	// Login items carry the executable's own name; correct a mismatch here
	// so every later operation targets the item the OS actually lists.
	s.appName = pathutil.LoginItemName(s.appPath)
	return s.newFacade(&loginItemBackend{
		name:    s.appName,
		appPath: s.appPath,
		hidden:  s.hidden,
	})
}

// launchAgentBackend persists the autostart state as a LaunchAgent plist
// whose filename and Label derive deterministically from the application
// name.
type launchAgentBackend struct {
	label   string
	appPath string
	command []string
}

func (l *launchAgentBackend) agent() *launchd.Agent {
	return &launchd.Agent{Label: l.label, Args: l.command}
}

func (l *launchAgentBackend) enable() error {
	if err := validatePath(l.appPath); err != nil {
		return err
	}
	return l.agent().Install()
}

func (l *launchAgentBackend) disable() error {
	return l.agent().Uninstall()
}

func (l *launchAgentBackend) isEnabled() (bool, error) {
	return l.agent().Installed()
}

// loginItemBackend keeps the autostart state in the OS Login Items list,
// mutated and queried through osascript. Operations are not atomic: a crash
// mid-subprocess can leave the list inconsistent with the caller's view.
type loginItemBackend struct {
	name    string
	appPath string
	hidden  bool
	client  loginitem.Client
}

func (b *loginItemBackend) enable() error {
	if err := validatePath(b.appPath); err != nil {
		return err
	}
	return b.client.Add(b.name, b.appPath, b.hidden)
}

func (b *loginItemBackend) disable() error {
	return b.client.Remove(b.name)
}

func (b *loginItemBackend) isEnabled() (bool, error) {
	return b.client.Contains(b.name)
}
