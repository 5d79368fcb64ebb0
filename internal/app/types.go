package app

import "venvctl/internal/types"

type ValidateRequest struct {
	SpecPath string
}

type ValidateResult struct {
	EnvName      string
	Requirements int
}

type PlanRequest struct {
	SpecPath   string
	Recreate   bool
	UpgradePip bool
}

type PlanResult struct {
	Plan types.Plan
}

type BootstrapRequest struct {
	SpecPath   string
	Recreate   bool
	UpgradePip bool
}

type BootstrapResult struct {
	EnvName       string
	PythonVersion string
	VenvDir       string
	Requirements  int
	Executed      []types.StepKind
}

type StatusRequest struct {
	SpecPath string
	LockPath string
}

type StatusResult struct {
	Status types.EnvStatus
}

type LockRequest struct {
	SpecPath string
	LockPath string
}

type LockResult struct {
	LockPath string
	Entries  int
}

type RenderRequest struct {
	SpecPath string
	Platform types.Platform
}

type RenderResult struct {
	Script string
}
