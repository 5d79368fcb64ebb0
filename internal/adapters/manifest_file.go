package adapters

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/cespare/xxhash/v2"

	"venvctl/internal/core"
	"venvctl/internal/ports"
	"venvctl/internal/types"
)

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

// pyprojectFile is the subset of pyproject.toml read for dependencies.
type pyprojectFile struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
}

func (a ManifestFileAdapter) LoadManifest(ref types.ManifestRef) (types.Manifest, error) {
	data, err := os.ReadFile(ref.Path)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("requirements manifest not found").
			WithCause(err)
	}
	switch ref.Format {
	case types.ManifestFormatRequirements, "":
		return core.ParseManifest(ref.Path, data)
	case types.ManifestFormatPyproject:
		return a.loadPyproject(ref.Path, data)
	default:
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported manifest format: %s", ref.Format))
	}
}

func (a ManifestFileAdapter) loadPyproject(path string, data []byte) (types.Manifest, error) {
	var file pyprojectFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse pyproject.toml").
			WithCause(err)
	}
	manifest := types.Manifest{
		Path:   path,
		Format: types.ManifestFormatPyproject,
	}
	seen := map[string]int{}
	for i, entry := range file.Project.Dependencies {
		req, ok, err := core.ParseRequirementLine(entry, i+1)
		if err != nil {
			return types.Manifest{}, err
		}
		if !ok {
			continue
		}
		if prev, dup := seen[req.Name]; dup {
			return types.Manifest{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate dependency %s (entries %d and %d)", req.Name, prev, i+1))
		}
		seen[req.Name] = i + 1
		manifest.Requirements = append(manifest.Requirements, req)
	}
	return manifest, nil
}

// Digest hashes the manifest bytes so the lock file can record exactly
// what it was generated from.
func (a ManifestFileAdapter) Digest(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("requirements manifest not found").
			WithCause(err)
	}
	return fmt.Sprintf("xxh64:%016x", xxhash.Sum64(data)), nil
}

var _ ports.ManifestPort = ManifestFileAdapter{}
