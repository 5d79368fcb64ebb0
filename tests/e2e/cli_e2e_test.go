package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venvctl/tests/testutil"
)

func TestValidateCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/venvctl", "validate",
		"--spec", "fixtures/env-sample.yaml",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Contains(t, string(out), "sample-env")
}

func TestPlanCommandE2E(t *testing.T) {
	if _, err := exec.LookPath("dpkg-query"); err != nil {
		t.Skip("dpkg-query not available; plan probes system prerequisites")
	}
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/venvctl", "plan",
		"--spec", "fixtures/env-sample.yaml",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Contains(t, string(out), "plan for sample-env")
	assert.Contains(t, string(out), "install-requirements")
}

func TestScriptRenderCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	outPath := filepath.Join(t.TempDir(), "bootstrap.sh")

	cmd := exec.Command("go", "run", "./cmd/venvctl", "script", "render",
		"--spec", "fixtures/env-sample.yaml",
		"--platform", "posix",
		"--output", outPath,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, outPath)
	script, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(script), `PY_PIN="3.11.6"`)
	assert.Contains(t, string(script), "pip install -r")
}
