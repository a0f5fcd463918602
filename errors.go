package autolaunch

import "errors"

var (
	// ErrInvalidPath reports an application path that is not absolute or does
	// not exist. The path is checked when enabling, never at construction.
	ErrInvalidPath = errors.New("invalid application path")

	// ErrMissingField reports a Build call with a required field never set.
	ErrMissingField = errors.New("missing required field")

	// ErrUnsupportedPlatform reports an autostart mechanism that does not
	// exist on the running operating system.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
