// Package autolaunch configures an application to start automatically when
// the user logs in.
//
// Three incompatible native mechanisms hide behind one contract:
//
//   - Windows: a string value under the current user's registry Run key
//   - macOS: an AppleScript-managed Login Item, or a per-user LaunchAgent
//     property list when the launch agent option is set
//   - Linux: an XDG autostart desktop entry
//
// The artifact's existence is the enabled state; there is no separate state
// file, and every query reads the external state fresh. Enable and Disable
// are idempotent: enabling twice leaves one artifact, disabling an already
// disabled application succeeds.
//
// Construct either through the platform constructor New (whose parameters
// differ per GOOS, mirroring what each mechanism needs) or through the
// portable Builder:
//
//	app, err := autolaunch.NewBuilder().
//		SetAppName("the-app").
//		SetAppPath("/path/to/the-app").
//		Build()
//	if err != nil {
//		// handle it
//	}
//	if err := app.Enable(); err != nil {
//		// handle it
//	}
//	on, err := app.IsEnabled()
//
// The application path must be absolute and must exist when Enable is called;
// construction itself never touches the filesystem. All operations block until
// the underlying filesystem, registry, or subprocess call completes; there is
// no cancellation. Instances are immutable and independent; two instances
// sharing an application name race on the same external artifact, last writer
// wins.
package autolaunch
