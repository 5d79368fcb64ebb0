package adapters

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"venvctl/internal/core"
	"venvctl/internal/ports"
	"venvctl/internal/shared"
)

type VenvDirAdapter struct{}

func NewVenvDirAdapter() VenvDirAdapter {
	return VenvDirAdapter{}
}

func (a VenvDirAdapter) Active() string {
	return os.Getenv("VIRTUAL_ENV")
}

// Probe checks for the pyvenv.cfg marker and, when present, asks the
// venv's own interpreter for its version.
func (a VenvDirAdapter) Probe(ctx context.Context, dir string) (bool, string, error) {
	if _, err := os.Stat(filepath.Join(dir, "pyvenv.cfg")); err != nil {
		if os.IsNotExist(err) {
			return false, "", nil
		}
		return false, "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to inspect %s", dir)).
			WithCause(err)
	}
	cmd := exec.CommandContext(ctx, a.PythonPath(dir), "--version")
	cmd.Env = scrubbedEnv()
	output, err := cmd.CombinedOutput()
	if err != nil {
		return true, "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("virtual environment at %s is unusable", dir)).
			WithCause(shared.CommandError(output, err))
	}
	version, err := core.ParseInterpreterReport(string(output))
	if err != nil {
		return true, "", err
	}
	return true, version, nil
}

func (a VenvDirAdapter) Create(ctx context.Context, python string, dir string, prompt string) error {
	args := []string{"-m", "venv"}
	if prompt != "" {
		args = append(args, "--prompt", prompt)
	}
	args = append(args, dir)
	cmd := exec.CommandContext(ctx, python, args...)
	cmd.Env = scrubbedEnv()
	if output, err := cmd.CombinedOutput(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to create virtual environment at %s", dir)).
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

// Remove deletes a venv directory.  Directories without the pyvenv.cfg
// marker are refused so a mistyped path cannot delete unrelated data.
func (a VenvDirAdapter) Remove(dir string) error {
	if _, err := os.Stat(filepath.Join(dir, "pyvenv.cfg")); err != nil {
		if os.IsNotExist(err) {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("%s is not a virtual environment, refusing to remove", dir))
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to inspect %s", dir)).
			WithCause(err)
	}
	if err := os.RemoveAll(dir); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to remove %s", dir)).
			WithCause(err)
	}
	return nil
}

func (a VenvDirAdapter) PythonPath(dir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(dir, "Scripts", "python.exe")
	}
	return filepath.Join(dir, "bin", "python")
}

var _ ports.VenvPort = VenvDirAdapter{}
