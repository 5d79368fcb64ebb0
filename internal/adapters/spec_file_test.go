package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venvctl/internal/types"
)

func TestLoadSpecSample(t *testing.T) {
	adapter := NewSpecFileAdapter()
	spec, err := adapter.LoadSpec("../../fixtures/env-sample.yaml")
	require.NoError(t, err)

	assert.Equal(t, types.SpecKindEnvironment, spec.Kind)
	assert.Equal(t, "sample-env", spec.Metadata.Name)
	assert.Equal(t, "3.11.6", spec.Python.Version)
	assert.Equal(t, types.ManagerPyenv, spec.Python.Manager)
	assert.True(t, spec.Pip.UpgradePip)
	require.Len(t, spec.Prereqs, 2)
	assert.Equal(t, "libgdal-dev", spec.Prereqs[0].Name)
	assert.Equal(t, "3.4.1", spec.Prereqs[0].MinVersion)

	// Relative paths are anchored at the spec file's directory.
	assert.Equal(t, filepath.Join("..", "..", "fixtures", "requirements-sample.txt"), spec.Manifest.Path)
	assert.Equal(t, filepath.Join("..", "..", "fixtures", ".venv"), spec.Venv.Dir)
}

func TestLoadSpecDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.yaml")
	content := `api_version: v1
kind: environment
metadata:
  name: minimal
  owners: [someone@example.com]
python:
  version: "3.11.6"
venv:
  dir: .venv
manifest:
  path: requirements.txt
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	adapter := NewSpecFileAdapter()
	spec, err := adapter.LoadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, types.ManagerPyenv, spec.Python.Manager)
	assert.Equal(t, "python3", spec.Python.Command)
	assert.Equal(t, types.ManifestFormatRequirements, spec.Manifest.Format)
	assert.Equal(t, filepath.Join(dir, "requirements.txt"), spec.Manifest.Path)
}

func TestLoadSpecWrongKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: deployment\n"), 0644))

	adapter := NewSpecFileAdapter()
	_, err := adapter.LoadSpec(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spec kind is not environment")
}

func TestLoadSpecMissingFile(t *testing.T) {
	adapter := NewSpecFileAdapter()
	_, err := adapter.LoadSpec(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment spec not found")
}
