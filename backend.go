package autolaunch

// backend is one platform-native autostart mechanism. Exactly one backend is
// bound per AutoLaunch at construction. Implementations hold no state beyond
// the application identity they were built with; every call inspects or
// mutates the external artifact directly.
type backend interface {
	enable() error
	disable() error
	isEnabled() (bool, error)
}
