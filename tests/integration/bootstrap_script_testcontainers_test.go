//go:build integration

package integration

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"venvctl/internal/adapters"
	"venvctl/internal/types"
)

// TestE2ERenderedScriptWithTestcontainers renders the POSIX bootstrap
// script and executes it inside a python:3.11 container. The detected
// interpreter matches the pinned series, so the script provisions the
// venv from the system python without reaching for pyenv, and the
// empty manifest keeps pip offline.
func TestE2ERenderedScriptWithTestcontainers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers e2e in short mode")
	}

	ctx := t.Context()
	container := startPythonContainer(ctx, t)

	spec := types.EnvSpec{
		APIVersion: "v1",
		Kind:       types.SpecKindEnvironment,
		Metadata:   types.Metadata{Name: "e2e-env", Owners: []string{"robotics"}},
		Python:     types.PythonSpec{Version: "3.11.6", Manager: types.ManagerPyenv, Command: "python3"},
		Venv:       types.VenvSpec{Dir: "/work/.venv", Prompt: "e2e"},
		Manifest:   types.ManifestRef{Path: "/work/requirements.txt", Format: types.ManifestFormatRequirements},
	}
	script, err := adapters.NewScriptWriterAdapter().Render(spec, types.PlatformPosix)
	require.NoError(t, err)

	require.NoError(t, container.CopyToContainer(ctx, []byte(script), "/work/bootstrap.sh", 0755))
	require.NoError(t, container.CopyToContainer(ctx, []byte("# no requirements\n"), "/work/requirements.txt", 0644))

	code, output := execInContainer(ctx, t, container, "sh", "/work/bootstrap.sh")
	require.Equal(t, 0, code, "bootstrap script failed: %s", output)

	code, output = execInContainer(ctx, t, container, "/work/.venv/bin/python", "--version")
	require.Equal(t, 0, code, "venv python missing: %s", output)
	assert.Contains(t, output, "Python 3.11")

	code, output = execInContainer(ctx, t, container, "grep", "-c", "prompt", "/work/.venv/pyvenv.cfg")
	require.Equal(t, 0, code, "pyvenv.cfg missing prompt: %s", output)
}

func startPythonContainer(ctx context.Context, t *testing.T) testcontainers.Container {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:      "python:3.11-slim",
		Cmd:        []string{"sleep", "600"},
		WaitingFor: wait.ForExec([]string{"python3", "--version"}).WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})
	return container
}

func execInContainer(ctx context.Context, t *testing.T, container testcontainers.Container, cmd ...string) (int, string) {
	t.Helper()
	code, reader, err := container.Exec(ctx, cmd)
	require.NoError(t, err)
	raw, err := io.ReadAll(reader)
	require.NoError(t, err)
	return code, strings.TrimSpace(string(raw))
}
