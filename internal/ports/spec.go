package ports

import "venvctl/internal/types"

type EnvSpecPort interface {
	LoadSpec(path string) (types.EnvSpec, error)
}
