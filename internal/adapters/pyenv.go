package adapters

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"venvctl/internal/core"
	"venvctl/internal/ports"
	"venvctl/internal/shared"
)

// PyenvAdapter provisions interpreters through pyenv.
type PyenvAdapter struct{}

func NewPyenvAdapter() PyenvAdapter {
	return PyenvAdapter{}
}

// Probe locates the interpreter command and reads its version report.
// An interpreter missing from PATH is reported as absent, not as an
// error, so the planner can schedule an install.
func (a PyenvAdapter) Probe(ctx context.Context, command string) (string, string, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", nil
		}
		return "", "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to locate %s", command)).
			WithCause(err)
	}
	cmd := exec.CommandContext(ctx, path, "--version")
	cmd.Env = scrubbedEnv()
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to query %s version", command)).
			WithCause(shared.CommandError(output, err))
	}
	version, err := core.ParseInterpreterReport(string(output))
	if err != nil {
		return "", "", err
	}
	return path, version, nil
}

// Install runs `pyenv install -s <version>` (skip if already built)
// and resolves the interpreter inside the resulting prefix.
func (a PyenvAdapter) Install(ctx context.Context, version string) (string, error) {
	if _, err := exec.LookPath("pyenv"); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("pyenv is required to install the pinned interpreter but was not found").
			WithCause(err)
	}
	log.Ctx(ctx).Info().Str("version", version).Msg("installing interpreter via pyenv")

	install := exec.CommandContext(ctx, "pyenv", "install", "-s", version)
	install.Env = scrubbedEnv()
	if output, err := install.CombinedOutput(); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("pyenv install %s failed", version)).
			WithCause(shared.CommandError(output, err))
	}

	prefix := exec.CommandContext(ctx, "pyenv", "prefix", version)
	prefix.Env = scrubbedEnv()
	output, err := prefix.Output()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("pyenv prefix %s failed", version)).
			WithCause(shared.CommandError(output, err))
	}
	return filepath.Join(strings.TrimSpace(string(output)), "bin", "python3"), nil
}

var _ ports.InterpreterPort = PyenvAdapter{}
