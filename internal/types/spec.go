package types

type Metadata struct {
	Name        string   `yaml:"name"`
	Owners      []string `yaml:"owners"`
	Description string   `yaml:"description,omitempty"`
}

type PythonSpec struct {
	// Version is the full pinned interpreter version, e.g. "3.11.6".
	Version string `yaml:"version"`

	// Manager selects how a missing or mismatched interpreter is
	// provisioned.  "system" disables provisioning and fails instead.
	Manager InterpreterManager `yaml:"manager,omitempty"`

	// Command overrides the interpreter executable probed before
	// provisioning.  Defaults to "python3" on POSIX.
	Command string `yaml:"command,omitempty"`
}

type VenvSpec struct {
	Dir    string `yaml:"dir"`
	Prompt string `yaml:"prompt,omitempty"`
}

type ManifestRef struct {
	Path   string         `yaml:"path"`
	Format ManifestFormat `yaml:"format,omitempty"`
}

// Prereq names a system package that must be present before pip runs.
// Packages such as gdal link against native libraries that pip cannot
// provide, so the bootstrap verifies them up front.
type Prereq struct {
	Name       string `yaml:"name"`
	MinVersion string `yaml:"min_version,omitempty"`
}

type PipSpec struct {
	IndexURL   string `yaml:"index_url,omitempty"`
	UpgradePip bool   `yaml:"upgrade_pip,omitempty"`
}

// EnvSpec is the environment definition loaded from env.yaml.  It is
// the single input to every operation: validation, planning, the
// bootstrap itself, and script rendering.
type EnvSpec struct {
	APIVersion string      `yaml:"api_version"`
	Kind       SpecKind    `yaml:"kind"`
	Metadata   Metadata    `yaml:"metadata"`
	Python     PythonSpec  `yaml:"python"`
	Venv       VenvSpec    `yaml:"venv"`
	Manifest   ManifestRef `yaml:"manifest"`
	Prereqs    []Prereq    `yaml:"prereqs,omitempty"`
	Pip        PipSpec     `yaml:"pip,omitempty"`
}
