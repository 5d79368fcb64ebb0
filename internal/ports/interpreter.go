package ports

import "context"

// InterpreterPort probes the available Python interpreter and installs
// the pinned version through a version manager when required.
type InterpreterPort interface {
	// Probe runs `<command> --version` and returns the executable path
	// and parsed version.  A missing interpreter is not an error; it is
	// reported as empty path and version.
	Probe(ctx context.Context, command string) (path string, version string, err error)

	// Install provisions the exact pinned version and returns the path
	// of the resulting interpreter executable.
	Install(ctx context.Context, version string) (path string, err error)
}
