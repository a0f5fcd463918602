package autolaunch

import (
	"fmt"

	"go.uber.org/zap"
)

// Builder accumulates optional configuration and validates it into an
// AutoLaunch. It papers over the per-platform constructor differences: every
// field can be set anywhere, and Build resolves what the running OS needs.
//
// app_name and app_path are required on every platform. Everything else
// defaults: no extra arguments, hidden off, login items over launch agents
// on macOS, no logging.
type Builder struct {
	appName        string
	appPath        string
	args           []string
	hidden         bool
	useLaunchAgent bool
	logger         *zap.Logger
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// SetAppName sets the application name identifying the autostart artifact.
func (b *Builder) SetAppName(name string) *Builder {
	b.appName = name
	return b
}

// SetAppPath sets the application path launched at login. It must be absolute
// and exist by the time Enable is called.
func (b *Builder) SetAppPath(path string) *Builder {
	b.appPath = path
	return b
}

// SetArgs sets extra arguments persisted after the application path. The
// macOS AppleScript mechanism cannot express arguments and ignores them.
func (b *Builder) SetArgs(args ...string) *Builder {
	b.args = args
	return b
}

// SetHidden asks the application to start without showing a window. Honored
// on Linux and macOS; Windows has no hidden flag.
func (b *Builder) SetHidden(hidden bool) *Builder {
	b.hidden = hidden
	return b
}

// SetUseLaunchAgent selects the LaunchAgent plist mechanism instead of the
// AppleScript-managed login item. macOS only; building with it set anywhere
// else fails with ErrUnsupportedPlatform.
func (b *Builder) SetUseLaunchAgent(use bool) *Builder {
	b.useLaunchAgent = use
	return b
}

// SetLogger attaches a logger for operation-level debug output. Without one,
// nothing is logged.
func (b *Builder) SetLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// FromConfig copies a loaded Config into the builder, replacing any fields
// set before.
func (b *Builder) FromConfig(cfg *Config) *Builder {
	b.appName = cfg.AppName
	b.appPath = cfg.AppPath
	b.args = cfg.Args
	b.hidden = cfg.Hidden
	b.useLaunchAgent = cfg.UseLaunchAgent
	return b
}

// Build validates the accumulated fields and constructs the AutoLaunch for
// the running platform. It fails with ErrMissingField when app_name or
// app_path was never set, and with ErrUnsupportedPlatform when the selected
// mechanism does not exist on this OS.
func (b *Builder) Build() (*AutoLaunch, error) {
	if b.appName == "" {
		return nil, fmt.Errorf("%w: app_name", ErrMissingField)
	}
	if b.appPath == "" {
		return nil, fmt.Errorf("%w: app_path", ErrMissingField)
	}
	return newAutoLaunch(settings{
		appName:        b.appName,
		appPath:        b.appPath,
		args:           b.args,
		hidden:         b.hidden,
		useLaunchAgent: b.useLaunchAgent,
		logger:         b.logger,
	})
}
