//go:build !linux && !darwin && !windows

package autolaunch

const supported = false

// New creates an AutoLaunch whose operations all fail: no autostart mechanism
// is wired for this operating system.
func New(appName, appPath string) *AutoLaunch {
	s := settings{appName: appName, appPath: appPath}
	return s.newFacade(unsupportedBackend{})
}

func newAutoLaunch(s settings) (*AutoLaunch, error) {
	return nil, ErrUnsupportedPlatform
}

type unsupportedBackend struct{}

func (unsupportedBackend) enable() error  { return ErrUnsupportedPlatform }
func (unsupportedBackend) disable() error { return ErrUnsupportedPlatform }
func (unsupportedBackend) isEnabled() (bool, error) {
	return false, ErrUnsupportedPlatform
}
