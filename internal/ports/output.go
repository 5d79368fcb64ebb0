package ports

import "venvctl/internal/types"

type LockWriterPort interface {
	WriteLock(path string, lock types.Lockfile) error
	ReadLock(path string) (types.Lockfile, error)
}

// ScriptWriterPort renders the standalone platform bootstrap scripts
// from an environment spec.
type ScriptWriterPort interface {
	Render(spec types.EnvSpec, platform types.Platform) (string, error)
}
