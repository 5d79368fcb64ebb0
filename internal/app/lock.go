package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"venvctl/internal/core"
	"venvctl/internal/types"
)

// Lock freezes the venv's installed versions for the manifest's
// requirements and writes the lock file.  Every manifest entry must be
// installed and satisfy its constraint; anything else means the venv
// does not reflect the manifest and locking it would be a lie.
func (s Service) Lock(ctx context.Context, req LockRequest) (LockResult, error) {
	specPath := strings.TrimSpace(req.SpecPath)
	if specPath == "" {
		return LockResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("environment spec path is required")
	}
	lockPath := strings.TrimSpace(req.LockPath)
	if lockPath == "" {
		return LockResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lock file path is required")
	}
	spec, err := s.SpecLoader.LoadSpec(specPath)
	if err != nil {
		return LockResult{}, err
	}
	manifest, err := s.Manifest.LoadManifest(spec.Manifest)
	if err != nil {
		return LockResult{}, err
	}
	digest, err := s.Manifest.Digest(spec.Manifest.Path)
	if err != nil {
		return LockResult{}, err
	}
	exists, _, err := s.Venv.Probe(ctx, spec.Venv.Dir)
	if err != nil {
		return LockResult{}, err
	}
	if !exists {
		return LockResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no virtual environment at %s, run bootstrap first", spec.Venv.Dir))
	}
	installed, err := s.Pip.Freeze(ctx, spec.Venv.Dir)
	if err != nil {
		return LockResult{}, err
	}

	versions := map[string]string{}
	for _, pkg := range installed {
		versions[pkg.Name] = pkg.Version
	}
	lock := types.Lockfile{
		Generator:      "venvctl",
		PythonVersion:  spec.Python.Version,
		ManifestDigest: digest,
	}
	for _, requirement := range manifest.Requirements {
		version, ok := versions[requirement.Name]
		if !ok {
			return LockResult{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("requirement %s is not installed, run bootstrap first", requirement.Name))
		}
		satisfied, err := core.CheckInstalled(requirement, version)
		if err != nil {
			return LockResult{}, err
		}
		if !satisfied {
			return LockResult{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("installed %s %s does not satisfy %q", requirement.Name, version, requirement.Specifier))
		}
		lock.Entries = append(lock.Entries, types.LockEntry{
			Name:    requirement.Name,
			Version: version,
		})
	}
	if err := s.LockWriter.WriteLock(lockPath, lock); err != nil {
		return LockResult{}, err
	}
	return LockResult{
		LockPath: lockPath,
		Entries:  len(lock.Entries),
	}, nil
}
