package ports

import "context"

// SystemPackagePort queries the host package database for native
// prerequisite packages.
type SystemPackagePort interface {
	// Query returns the installed version of a package, or installed
	// false when the package is absent.
	Query(ctx context.Context, name string) (version string, installed bool, err error)
}
