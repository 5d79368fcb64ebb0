package app

import (
	"venvctl/internal/adapters"
	"venvctl/internal/ports"
)

type Service struct {
	SpecLoader  ports.EnvSpecPort
	Manifest    ports.ManifestPort
	Interpreter ports.InterpreterPort
	Venv        ports.VenvPort
	Pip         ports.PipPort
	System      ports.SystemPackagePort
	LockWriter  ports.LockWriterPort
	Scripts     ports.ScriptWriterPort
}

func NewService() Service {
	venv := adapters.NewVenvDirAdapter()
	return Service{
		SpecLoader:  adapters.NewSpecFileAdapter(),
		Manifest:    adapters.NewManifestFileAdapter(),
		Interpreter: adapters.NewPyenvAdapter(),
		Venv:        venv,
		Pip:         adapters.NewPipAdapter(venv),
		System:      adapters.NewDpkgAdapter(),
		LockWriter:  adapters.NewLockFileAdapter(),
		Scripts:     adapters.NewScriptWriterAdapter(),
	}
}
