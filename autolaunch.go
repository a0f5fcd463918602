package autolaunch

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Guliveer/autolaunch/internal/pathutil"
)

// hiddenArg is appended to the persisted command line when the hidden option
// is set, asking the application to start without showing a window.
const hiddenArg = "--hidden"

// AutoLaunch manages the autostart setting of a single application. Instances
// are immutable after construction; create them with New or through a Builder.
type AutoLaunch struct {
	appName string
	appPath string
	args    []string
	hidden  bool
	backend backend
	logger  *zap.Logger
}

// Supported reports whether the running operating system has an autostart
// mechanism wired up.
func Supported() bool { return supported }

// AppName returns the application name binding this instance to its artifact.
// With the macOS AppleScript mechanism this is the corrected name derived
// from the application path, not necessarily the name passed in.
func (a *AutoLaunch) AppName() string { return a.appName }

// AppPath returns the application path persisted on enable.
func (a *AutoLaunch) AppPath() string { return a.appPath }

// Args returns a copy of the extra launch arguments.
func (a *AutoLaunch) Args() []string { return append([]string(nil), a.args...) }

// Hidden reports whether the application is asked to start hidden. Always
// false on Windows, which has no hidden flag.
func (a *AutoLaunch) Hidden() bool { return a.hidden }

// Enable writes this application's autostart artifact. Enabling an already
// enabled application overwrites the artifact in place and is not an error.
// The application path must be absolute and exist.
func (a *AutoLaunch) Enable() error {
	a.logger.Debug("enabling autostart",
		zap.String("app_name", a.appName),
		zap.String("app_path", a.appPath))
	return a.backend.enable()
}

// Disable removes this application's autostart artifact. Disabling an already
// disabled application is not an error.
func (a *AutoLaunch) Disable() error {
	a.logger.Debug("disabling autostart",
		zap.String("app_name", a.appName))
	return a.backend.disable()
}

// IsEnabled reports whether the autostart artifact currently exists. The
// external state is read fresh on every call; access failures are returned
// as errors, never as "disabled".
func (a *AutoLaunch) IsEnabled() (bool, error) {
	a.logger.Debug("querying autostart state",
		zap.String("app_name", a.appName))
	return a.backend.isEnabled()
}

// settings is the resolved configuration handed to the per-platform
// constructor.
type settings struct {
	appName        string
	appPath        string
	args           []string
	hidden         bool
	useLaunchAgent bool
	logger         *zap.Logger
}

// newFacade binds a backend to an AutoLaunch, defaulting the logger to a nop.
func (s settings) newFacade(b backend) *AutoLaunch {
	logger := s.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AutoLaunch{
		appName: s.appName,
		appPath: s.appPath,
		args:    s.args,
		hidden:  s.hidden,
		backend: b,
		logger:  logger,
	}
}

// commandLine is the argument vector persisted by the file-based backends:
// the application path, the extra launch arguments, then the hidden flag.
func (s settings) commandLine() []string {
	cmd := make([]string, 0, len(s.args)+2)
	cmd = append(cmd, s.appPath)
	cmd = append(cmd, s.args...)
	if s.hidden {
		cmd = append(cmd, hiddenArg)
	}
	return cmd
}

// validatePath enforces the enable-time contract: the application path must
// be absolute and refer to an existing filesystem entry.
func validatePath(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%w: %q is not absolute", ErrInvalidPath, path)
	}
	ok, err := pathutil.Exists(path)
	if err != nil {
		return fmt.Errorf("checking application path: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %q does not exist", ErrInvalidPath, path)
	}
	return nil
}
