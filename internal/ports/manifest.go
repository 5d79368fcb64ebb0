package ports

import "venvctl/internal/types"

// ManifestPort loads a requirements manifest in one of the supported
// formats and digests its raw content for drift detection.
type ManifestPort interface {
	LoadManifest(ref types.ManifestRef) (types.Manifest, error)
	Digest(path string) (string, error)
}
