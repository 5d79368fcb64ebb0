package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venvctl/internal/adapters"
	"venvctl/internal/core"
	"venvctl/internal/types"
	"venvctl/tests/testutil"
)

// TestSpecToPlanFlow exercises the full offline pipeline a user runs
// before touching the machine:
//
//	load spec -> validate -> load manifest -> probe snapshot -> plan
//
// The probe is synthetic so the test never shells out.
func TestSpecToPlanFlow(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "env.yaml")
	testutil.WriteFile(t, specPath, `
api_version: "v1"
kind: "environment"
metadata:
  name: "flow-env"
  owners: ["robotics"]
python:
  version: "3.11.6"
  manager: "pyenv"
venv:
  dir: ".venv"
manifest:
  path: "requirements.txt"
prereqs:
  - name: "libgdal-dev"
    min_version: "3.4.1"
`)
	testutil.WriteFile(t, filepath.Join(dir, "requirements.txt"), `
# pinned geo stack
gdal==3.4.1
shapely~=2.0
rtree
`)

	ctx := context.Background()

	spec, err := adapters.NewSpecFileAdapter().LoadSpec(specPath)
	require.NoError(t, err)
	assert.Equal(t, "flow-env", spec.Metadata.Name)
	assert.Equal(t, filepath.Join(dir, "requirements.txt"), spec.Manifest.Path)
	assert.Equal(t, filepath.Join(dir, ".venv"), spec.Venv.Dir)

	require.NoError(t, core.NewSpecChecker().ValidateSpec(ctx, spec))

	manifest, err := adapters.NewManifestFileAdapter().LoadManifest(spec.Manifest)
	require.NoError(t, err)
	require.Len(t, manifest.Requirements, 3)
	assert.Equal(t, "gdal", manifest.Requirements[0].Name)
	assert.Equal(t, "rtree", manifest.Requirements[2].Name)

	// A machine with the wrong interpreter series and no venv.
	probe := types.MachineProbe{
		InterpreterPath:    "/usr/bin/python3",
		InterpreterVersion: "3.10.12",
		Prereqs: []types.PrereqStatus{
			{Name: "libgdal-dev", InstalledVersion: "3.4.1+dfsg-1", Satisfied: true},
		},
	}
	plan, err := core.NewPlanner().BuildPlan(ctx, spec, probe, core.PlanOptions{})
	require.NoError(t, err)
	assert.Equal(t, "flow-env", plan.EnvName)
	require.Len(t, plan.Steps, 6)

	kinds := make([]types.StepKind, 0, len(plan.Active()))
	for _, step := range plan.Active() {
		kinds = append(kinds, step.Kind)
	}
	assert.Equal(t, []types.StepKind{
		types.StepInstallInterpreter,
		types.StepCheckPrereqs,
		types.StepCreateVenv,
		types.StepInstallRequirements,
	}, kinds)
}

// TestFixtureRenderAndLockRoundTrip renders both platform scripts from
// the committed sample fixture and round-trips a lockfile derived from
// its manifest.
func TestFixtureRenderAndLockRoundTrip(t *testing.T) {
	root := testutil.RepoRoot(t)
	specPath := filepath.Join(root, "fixtures", "env-sample.yaml")

	spec, err := adapters.NewSpecFileAdapter().LoadSpec(specPath)
	require.NoError(t, err)

	scripts := adapters.NewScriptWriterAdapter()
	posix, err := scripts.Render(spec, types.PlatformPosix)
	require.NoError(t, err)
	assert.Contains(t, posix, `PY_PIN="3.11.6"`)
	assert.Contains(t, posix, `PY_SERIES="3.11"`)
	assert.Contains(t, posix, "pyenv install -s")

	windows, err := scripts.Render(spec, types.PlatformWindows)
	require.NoError(t, err)
	assert.Contains(t, windows, `$series = "3.11"`)
	assert.Contains(t, windows, "Activate.ps1")

	manifestAdapter := adapters.NewManifestFileAdapter()
	digest, err := manifestAdapter.Digest(spec.Manifest.Path)
	require.NoError(t, err)

	lockPath := filepath.Join(t.TempDir(), "venvctl.lock")
	lockAdapter := adapters.NewLockFileAdapter()
	original := types.Lockfile{
		Generator:      "venvctl",
		PythonVersion:  spec.Python.Version,
		ManifestDigest: digest,
		Entries: []types.LockEntry{
			{Name: "numpy", Version: "1.26.4"},
			{Name: "shapely", Version: "2.0.4"},
		},
	}
	require.NoError(t, lockAdapter.WriteLock(lockPath, original))
	restored, err := lockAdapter.ReadLock(lockPath)
	require.NoError(t, err)
	assert.Equal(t, original.PythonVersion, restored.PythonVersion)
	assert.Equal(t, original.ManifestDigest, restored.ManifestDigest)
	assert.Equal(t, original.Entries, restored.Entries)
}
