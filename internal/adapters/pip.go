package adapters

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"venvctl/internal/ports"
	"venvctl/internal/shared"
	"venvctl/internal/types"
)

// PipAdapter drives the venv's pip through `python -m pip`, which
// sidesteps stale pip shebangs after a venv is moved.
type PipAdapter struct {
	Venv ports.VenvPort
}

func NewPipAdapter(venv ports.VenvPort) PipAdapter {
	return PipAdapter{Venv: venv}
}

func (a PipAdapter) Install(ctx context.Context, venvDir string, manifestPath string, indexURL string) error {
	args := []string{"-m", "pip", "install", "-r", manifestPath}
	if indexURL != "" {
		args = append(args, "--index-url", indexURL)
	}
	log.Ctx(ctx).Info().Str("manifest", manifestPath).Msg("installing requirements")
	cmd := exec.CommandContext(ctx, a.Venv.PythonPath(venvDir), args...)
	cmd.Env = scrubbedEnv()
	if output, err := cmd.CombinedOutput(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("pip install -r %s failed", manifestPath)).
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

func (a PipAdapter) UpgradePip(ctx context.Context, venvDir string, indexURL string) error {
	args := []string{"-m", "pip", "install", "--upgrade", "pip"}
	if indexURL != "" {
		args = append(args, "--index-url", indexURL)
	}
	cmd := exec.CommandContext(ctx, a.Venv.PythonPath(venvDir), args...)
	cmd.Env = scrubbedEnv()
	if output, err := cmd.CombinedOutput(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pip self-upgrade failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

func (a PipAdapter) Freeze(ctx context.Context, venvDir string) ([]types.InstalledPackage, error) {
	cmd := exec.CommandContext(ctx, a.Venv.PythonPath(venvDir), "-m", "pip", "freeze")
	cmd.Env = scrubbedEnv()
	output, err := cmd.Output()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pip freeze failed").
			WithCause(shared.CommandError(output, err))
	}
	return ParseFreezeOutput(string(output)), nil
}

// ParseFreezeOutput extracts name/version pairs from pip freeze output.
// Editable and direct-reference lines carry no pinned version and are
// dropped.
func ParseFreezeOutput(output string) []types.InstalledPackage {
	var packages []types.InstalledPackage
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-e ") {
			continue
		}
		if strings.Contains(line, " @ ") {
			continue
		}
		name, version, found := strings.Cut(line, "==")
		if !found {
			continue
		}
		packages = append(packages, types.InstalledPackage{
			Name:    shared.NormalizePipName(name),
			Version: strings.TrimSpace(version),
		})
	}
	return packages
}

var _ ports.PipPort = PipAdapter{}
