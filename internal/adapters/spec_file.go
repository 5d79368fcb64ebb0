package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"venvctl/internal/ports"
	"venvctl/internal/types"
)

type SpecFileAdapter struct{}

func NewSpecFileAdapter() SpecFileAdapter {
	return SpecFileAdapter{}
}

func (a SpecFileAdapter) LoadSpec(path string) (types.EnvSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.EnvSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("environment spec not found").
			WithCause(err)
	}
	var spec types.EnvSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return types.EnvSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse environment spec yaml").
			WithCause(err)
	}
	if spec.Kind != types.SpecKindEnvironment {
		return types.EnvSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec kind is not environment")
	}
	applySpecDefaults(&spec)
	anchorSpecPaths(&spec, filepath.Dir(path))
	return spec, nil
}

// anchorSpecPaths resolves relative manifest and venv paths against
// the spec file's directory, so the spec means the same thing from any
// working directory.
func anchorSpecPaths(spec *types.EnvSpec, dir string) {
	if spec.Manifest.Path != "" && !filepath.IsAbs(spec.Manifest.Path) {
		spec.Manifest.Path = filepath.Join(dir, spec.Manifest.Path)
	}
	if spec.Venv.Dir != "" && !filepath.IsAbs(spec.Venv.Dir) {
		spec.Venv.Dir = filepath.Join(dir, spec.Venv.Dir)
	}
}

func applySpecDefaults(spec *types.EnvSpec) {
	if spec.Python.Manager == "" {
		spec.Python.Manager = types.ManagerPyenv
	}
	if spec.Python.Command == "" {
		spec.Python.Command = "python3"
	}
	if spec.Manifest.Format == "" {
		spec.Manifest.Format = types.ManifestFormatRequirements
	}
}

var _ ports.EnvSpecPort = SpecFileAdapter{}
