package ports

import "context"

// VenvPort manages the virtual environment directory.
type VenvPort interface {
	// Active returns the VIRTUAL_ENV path of a currently activated
	// environment, or "" when none is active.
	Active() string

	// Probe reports whether dir holds a virtual environment and, if
	// so, the version of its interpreter.
	Probe(ctx context.Context, dir string) (exists bool, version string, err error)

	Create(ctx context.Context, python string, dir string, prompt string) error
	Remove(dir string) error

	// PythonPath returns the venv's interpreter executable path.
	PythonPath(dir string) string
}
