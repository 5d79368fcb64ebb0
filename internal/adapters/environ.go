package adapters

import (
	"os"
	"path/filepath"
	"strings"
)

// scrubbedEnv returns the host environment with any active virtual
// environment removed: VIRTUAL_ENV is dropped and its bin directory is
// stripped from PATH.  Every subprocess the adapters spawn runs with
// this environment, so the deactivate guard is idempotent: a shell
// without an active venv passes through unchanged.
func scrubbedEnv() []string {
	return scrubEnviron(os.Environ())
}

func scrubEnviron(environ []string) []string {
	activeVenv := ""
	for _, entry := range environ {
		if value, ok := strings.CutPrefix(entry, "VIRTUAL_ENV="); ok {
			activeVenv = value
		}
	}
	if activeVenv == "" {
		return environ
	}
	venvBin := filepath.Join(activeVenv, "bin")
	var out []string
	for _, entry := range environ {
		switch {
		case strings.HasPrefix(entry, "VIRTUAL_ENV="),
			strings.HasPrefix(entry, "VIRTUAL_ENV_PROMPT="):
			continue
		case strings.HasPrefix(entry, "PATH="):
			out = append(out, "PATH="+stripPathEntry(strings.TrimPrefix(entry, "PATH="), venvBin))
		default:
			out = append(out, entry)
		}
	}
	return out
}

func stripPathEntry(path string, remove string) string {
	var kept []string
	for _, dir := range filepath.SplitList(path) {
		if filepath.Clean(dir) == filepath.Clean(remove) {
			continue
		}
		kept = append(kept, dir)
	}
	return strings.Join(kept, string(os.PathListSeparator))
}
