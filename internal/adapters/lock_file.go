package adapters

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"venvctl/internal/ports"
	"venvctl/internal/types"
)

type LockFileAdapter struct{}

func NewLockFileAdapter() LockFileAdapter {
	return LockFileAdapter{}
}

// WriteLock writes the lock file: comment header, then sorted
// name==version lines.
func (a LockFileAdapter) WriteLock(path string, lock types.Lockfile) error {
	entries := append([]types.LockEntry(nil), lock.Entries...)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	var b strings.Builder
	fmt.Fprintf(&b, "# generator: %s\n", lock.Generator)
	fmt.Fprintf(&b, "# python: %s\n", lock.PythonVersion)
	fmt.Fprintf(&b, "# manifest-digest: %s\n", lock.ManifestDigest)
	for _, entry := range entries {
		fmt.Fprintf(&b, "%s==%s\n", entry.Name, entry.Version)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write lock file %s", path)).
			WithCause(err)
	}
	return nil
}

func (a LockFileAdapter) ReadLock(path string) (types.Lockfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Lockfile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("lock file not found").
			WithCause(err)
	}
	var lock types.Lockfile
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "#"); ok {
			key, value, found := strings.Cut(rest, ":")
			if !found {
				continue
			}
			// The digest value contains its own colon; cutting on the
			// first keeps it intact.
			switch strings.TrimSpace(key) {
			case "generator":
				lock.Generator = strings.TrimSpace(value)
			case "python":
				lock.PythonVersion = strings.TrimSpace(value)
			case "manifest-digest":
				lock.ManifestDigest = strings.TrimSpace(value)
			}
			continue
		}
		name, version, found := strings.Cut(line, "==")
		if !found {
			return types.Lockfile{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("malformed lock line: %s", line))
		}
		lock.Entries = append(lock.Entries, types.LockEntry{
			Name:    strings.TrimSpace(name),
			Version: strings.TrimSpace(version),
		})
	}
	return lock, nil
}

var _ ports.LockWriterPort = LockFileAdapter{}
