package adapters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venvctl/internal/types"
)

func scriptSpec() types.EnvSpec {
	return types.EnvSpec{
		APIVersion: "v1",
		Kind:       types.SpecKindEnvironment,
		Metadata: types.Metadata{
			Name:   "sample-env",
			Owners: []string{"platform-team@example.com"},
		},
		Python:   types.PythonSpec{Version: "3.11.6", Manager: types.ManagerPyenv},
		Venv:     types.VenvSpec{Dir: ".venv", Prompt: "sample-env"},
		Manifest: types.ManifestRef{Path: "requirements.txt"},
		Pip:      types.PipSpec{UpgradePip: true},
	}
}

func TestRenderPosixScript(t *testing.T) {
	adapter := NewScriptWriterAdapter()
	script, err := adapter.Render(scriptSpec(), types.PlatformPosix)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(script, "#!/usr/bin/env sh"))
	assert.Contains(t, script, `PY_PIN="3.11.6"`)
	assert.Contains(t, script, `PY_SERIES="3.11"`)
	assert.Contains(t, script, `pyenv install -s "$PY_PIN"`)
	assert.Contains(t, script, `-m venv --prompt "sample-env" "$VENV_DIR"`)
	assert.Contains(t, script, "pip install --upgrade pip")
	assert.Contains(t, script, `pip install -r "$MANIFEST"`)
	// Deactivate guard comes before anything else runs.
	assert.Less(t, strings.Index(script, "VIRTUAL_ENV"), strings.Index(script, "pyenv"))
}

func TestRenderWindowsScript(t *testing.T) {
	adapter := NewScriptWriterAdapter()
	script, err := adapter.Render(scriptSpec(), types.PlatformWindows)
	require.NoError(t, err)

	assert.Contains(t, script, `$series = "3.11"`)
	assert.Contains(t, script, "py \"-$series\" -m venv")
	assert.Contains(t, script, `Scripts\Activate.ps1`)
	assert.Contains(t, script, "$env:VIRTUAL_ENV")
	assert.NotContains(t, script, "pyenv")
}

func TestRenderWithoutOptionalFields(t *testing.T) {
	spec := scriptSpec()
	spec.Venv.Prompt = ""
	spec.Pip.UpgradePip = false

	adapter := NewScriptWriterAdapter()
	script, err := adapter.Render(spec, types.PlatformPosix)
	require.NoError(t, err)
	assert.NotContains(t, script, "--prompt")
	assert.NotContains(t, script, "--upgrade pip")
}

func TestRenderUnknownPlatform(t *testing.T) {
	adapter := NewScriptWriterAdapter()
	_, err := adapter.Render(scriptSpec(), "plan9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported platform")
}
