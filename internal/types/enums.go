package types

type SpecKind string

const (
	SpecKindEnvironment SpecKind = "environment"
)

type ManifestFormat string

const (
	ManifestFormatRequirements ManifestFormat = "requirements"
	ManifestFormatPyproject    ManifestFormat = "pyproject"
)

type InterpreterManager string

const (
	ManagerPyenv      InterpreterManager = "pyenv"
	ManagerPyLauncher InterpreterManager = "py"
	ManagerSystem     InterpreterManager = "system"
)

type Platform string

const (
	PlatformPosix   Platform = "posix"
	PlatformWindows Platform = "windows"
)

type StepKind string

const (
	StepDeactivate          StepKind = "deactivate"
	StepInstallInterpreter  StepKind = "install-interpreter"
	StepCheckPrereqs        StepKind = "check-prereqs"
	StepCreateVenv          StepKind = "create-venv"
	StepUpgradePip          StepKind = "upgrade-pip"
	StepInstallRequirements StepKind = "install-requirements"
)
