package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"venvctl/internal/core"
	"venvctl/internal/types"
)

// Status reports environment drift without mutating anything.
func (s Service) Status(ctx context.Context, req StatusRequest) (StatusResult, error) {
	specPath := strings.TrimSpace(req.SpecPath)
	if specPath == "" {
		return StatusResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("environment spec path is required")
	}
	spec, err := s.SpecLoader.LoadSpec(specPath)
	if err != nil {
		return StatusResult{}, err
	}
	manifest, err := s.Manifest.LoadManifest(spec.Manifest)
	if err != nil {
		return StatusResult{}, err
	}
	digest, err := s.Manifest.Digest(spec.Manifest.Path)
	if err != nil {
		return StatusResult{}, err
	}
	probe, err := s.buildProbe(ctx, spec)
	if err != nil {
		return StatusResult{}, err
	}

	status := types.EnvStatus{
		EnvName:            spec.Metadata.Name,
		PinnedVersion:      spec.Python.Version,
		InterpreterVersion: probe.InterpreterVersion,
		VenvExists:         probe.VenvExists,
		VenvVersion:        probe.VenvVersion,
		ManifestDigest:     digest,
		Prereqs:            probe.Prereqs,
	}
	status.InterpreterMatch, err = core.MatchesPin(probe.InterpreterVersion, spec.Python.Version)
	if err != nil {
		return StatusResult{}, err
	}

	if req.LockPath != "" {
		if lock, lockErr := s.LockWriter.ReadLock(req.LockPath); lockErr == nil {
			status.LockDigest = lock.ManifestDigest
			status.ManifestDrift = lock.ManifestDigest != digest
		}
	}

	if probe.VenvExists {
		installed, err := s.Pip.Freeze(ctx, spec.Venv.Dir)
		if err != nil {
			return StatusResult{}, err
		}
		status.Requirements, err = compareRequirements(manifest.Requirements, installed)
		if err != nil {
			return StatusResult{}, err
		}
	}
	return StatusResult{Status: status}, nil
}

func compareRequirements(requirements []types.Requirement, installed []types.InstalledPackage) ([]types.RequirementStatus, error) {
	versions := map[string]string{}
	for _, pkg := range installed {
		versions[pkg.Name] = pkg.Version
	}
	var statuses []types.RequirementStatus
	for _, req := range requirements {
		status := types.RequirementStatus{Requirement: req}
		version, ok := versions[req.Name]
		if !ok {
			status.Missing = true
			statuses = append(statuses, status)
			continue
		}
		status.Installed = version
		satisfied, err := core.CheckInstalled(req, version)
		if err != nil {
			return nil, err
		}
		status.Satisfied = satisfied
		statuses = append(statuses, status)
	}
	return statuses, nil
}
