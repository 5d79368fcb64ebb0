package adapters

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"venvctl/internal/ports"
	"venvctl/internal/shared"
)

// DpkgAdapter queries the Debian package database for system
// prerequisite packages.
type DpkgAdapter struct{}

func NewDpkgAdapter() DpkgAdapter {
	return DpkgAdapter{}
}

func (a DpkgAdapter) Query(ctx context.Context, name string) (string, bool, error) {
	cmd := exec.CommandContext(ctx, "dpkg-query", "-W", "-f", "${Version}", name)
	cmd.Env = scrubbedEnv()
	output, err := cmd.Output()
	if err != nil {
		// dpkg-query exits 1 for unknown packages.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", false, nil
		}
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("dpkg-query failed for %s", name)).
			WithCause(shared.CommandError(output, err))
	}
	version := strings.TrimSpace(string(output))
	if version == "" {
		return "", false, nil
	}
	return version, true, nil
}

var _ ports.SystemPackagePort = DpkgAdapter{}
