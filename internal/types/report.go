package types

type InstalledPackage struct {
	Name    string
	Version string
}

// RequirementStatus pairs a manifest requirement with what the venv
// actually holds.
type RequirementStatus struct {
	Requirement Requirement
	Installed   string
	Satisfied   bool
	Missing     bool
}

type EnvStatus struct {
	EnvName            string
	PinnedVersion      string
	InterpreterVersion string
	InterpreterMatch   bool
	VenvExists         bool
	VenvVersion        string
	ManifestDigest     string
	LockDigest         string
	ManifestDrift      bool
	Requirements       []RequirementStatus
	Prereqs            []PrereqStatus
}

type LockEntry struct {
	Name    string
	Version string
}

type Lockfile struct {
	Generator      string
	PythonVersion  string
	ManifestDigest string
	Entries        []LockEntry
}
