package ports

import (
	"context"

	"venvctl/internal/types"
)

// PipPort drives the venv's pip.  Install receives the manifest file
// itself so pip sees requirements in manifest order.
type PipPort interface {
	Install(ctx context.Context, venvDir string, manifestPath string, indexURL string) error
	UpgradePip(ctx context.Context, venvDir string, indexURL string) error
	Freeze(ctx context.Context, venvDir string) ([]types.InstalledPackage, error)
}
