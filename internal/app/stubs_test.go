package app

import (
	"context"

	"venvctl/internal/types"
)

// Hand-rolled stubs for the ports the pipeline operations touch.

type stubSpecLoader struct {
	spec types.EnvSpec
	err  error
}

func (s stubSpecLoader) LoadSpec(_ string) (types.EnvSpec, error) {
	return s.spec, s.err
}

type stubManifest struct {
	manifest types.Manifest
	digest   string
	err      error
}

func (s stubManifest) LoadManifest(_ types.ManifestRef) (types.Manifest, error) {
	return s.manifest, s.err
}

func (s stubManifest) Digest(_ string) (string, error) {
	return s.digest, s.err
}

type stubInterpreter struct {
	probePath    string
	probeVersion string
	installPath  string
	installErr   error

	installedVersions []string
}

func (s *stubInterpreter) Probe(_ context.Context, _ string) (string, string, error) {
	return s.probePath, s.probeVersion, nil
}

func (s *stubInterpreter) Install(_ context.Context, version string) (string, error) {
	s.installedVersions = append(s.installedVersions, version)
	return s.installPath, s.installErr
}

type stubVenv struct {
	active  string
	exists  bool
	version string

	createdWith []string
	removed     []string
	createErr   error
}

func (s *stubVenv) Active() string { return s.active }

func (s *stubVenv) Probe(_ context.Context, _ string) (bool, string, error) {
	return s.exists, s.version, nil
}

func (s *stubVenv) Create(_ context.Context, python string, dir string, _ string) error {
	s.createdWith = append(s.createdWith, python+" "+dir)
	return s.createErr
}

func (s *stubVenv) Remove(dir string) error {
	s.removed = append(s.removed, dir)
	return nil
}

func (s *stubVenv) PythonPath(dir string) string { return dir + "/bin/python" }

type stubPip struct {
	frozen []types.InstalledPackage

	installedManifests []string
	upgraded           bool
	installErr         error
}

func (s *stubPip) Install(_ context.Context, _ string, manifestPath string, _ string) error {
	s.installedManifests = append(s.installedManifests, manifestPath)
	return s.installErr
}

func (s *stubPip) UpgradePip(_ context.Context, _ string, _ string) error {
	s.upgraded = true
	return nil
}

func (s *stubPip) Freeze(_ context.Context, _ string) ([]types.InstalledPackage, error) {
	return s.frozen, nil
}

// stubSystem reports versions for the packages in its map and absence
// for everything else.
type stubSystem struct {
	versions map[string]string
}

func (s stubSystem) Query(_ context.Context, name string) (string, bool, error) {
	version, ok := s.versions[name]
	return version, ok, nil
}

type stubLockWriter struct {
	written *types.Lockfile
	read    types.Lockfile
	readErr error
}

func (s *stubLockWriter) WriteLock(_ string, lock types.Lockfile) error {
	s.written = &lock
	return nil
}

func (s *stubLockWriter) ReadLock(_ string) (types.Lockfile, error) {
	return s.read, s.readErr
}

func testSpec() types.EnvSpec {
	return types.EnvSpec{
		APIVersion: "v1",
		Kind:       types.SpecKindEnvironment,
		Metadata: types.Metadata{
			Name:   "sample-env",
			Owners: []string{"platform-team@example.com"},
		},
		Python: types.PythonSpec{
			Version: "3.11.6",
			Manager: types.ManagerPyenv,
			Command: "python3",
		},
		Venv:     types.VenvSpec{Dir: ".venv"},
		Manifest: types.ManifestRef{Path: "requirements.txt"},
	}
}

func testManifest() types.Manifest {
	return types.Manifest{
		Path:   "requirements.txt",
		Format: types.ManifestFormatRequirements,
		Requirements: []types.Requirement{
			{Name: "pyqt5", RawName: "pyqt5", Specifier: ">=5.15", Line: 1},
			{Name: "shapely", RawName: "shapely", Specifier: "~=2.0", Line: 2},
			{Name: "rtree", RawName: "rtree", Line: 3},
		},
	}
}
