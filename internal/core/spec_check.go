package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"
	"github.com/rs/zerolog/log"

	"venvctl/internal/types"
)

type SpecChecker struct{}

var validManifestFormats = map[types.ManifestFormat]struct{}{
	types.ManifestFormatRequirements: {},
	types.ManifestFormatPyproject:    {},
}

var validManagers = map[types.InterpreterManager]struct{}{
	types.ManagerPyenv:      {},
	types.ManagerPyLauncher: {},
	types.ManagerSystem:     {},
}

func NewSpecChecker() SpecChecker {
	return SpecChecker{}
}

// ValidateSpec checks the shape of an environment spec before any
// operation uses it.
func (c SpecChecker) ValidateSpec(ctx context.Context, spec types.EnvSpec) error {
	assert.NotEmpty(ctx, spec.APIVersion, "api_version must be set")
	assert.NotEmpty(ctx, string(spec.Kind), "kind must be set")
	assert.NotEmpty(ctx, spec.Metadata.Name, "metadata.name must be set")
	if spec.Kind != types.SpecKindEnvironment {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported spec kind: %s", spec.Kind))
	}
	if len(spec.Metadata.Owners) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata.owners must not be empty")
	}
	if spec.Python.Version == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("python.version must be set")
	}
	if _, err := pep440.Parse(spec.Python.Version); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("python.version is not a valid version: %q", spec.Python.Version)).
			WithCause(err)
	}
	if spec.Python.Manager != "" {
		if _, ok := validManagers[spec.Python.Manager]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unsupported python.manager: %s", spec.Python.Manager))
		}
	}
	if spec.Venv.Dir == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("venv.dir must be set")
	}
	if spec.Manifest.Path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest.path must be set")
	}
	if spec.Manifest.Format != "" {
		if _, ok := validManifestFormats[spec.Manifest.Format]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unsupported manifest format: %s", spec.Manifest.Format))
		}
	}
	for _, prereq := range spec.Prereqs {
		if prereq.Name == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("prereq name must not be empty")
		}
		if prereq.MinVersion == "" {
			continue
		}
		if _, err := debversion.NewVersion(prereq.MinVersion); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("prereq %s has an invalid min_version: %q", prereq.Name, prereq.MinVersion)).
				WithCause(err)
		}
	}
	log.Ctx(ctx).Debug().Str("env", spec.Metadata.Name).Msg("spec validated")
	return nil
}
