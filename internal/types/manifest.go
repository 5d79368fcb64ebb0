package types

// Requirement is one parsed manifest entry.  Name is the PEP 503
// normalized form; RawName preserves the manifest spelling for
// rendered output.
type Requirement struct {
	Name      string
	RawName   string
	Extras    []string
	Specifier string
	Marker    string
	Line      int
}

// Manifest preserves requirement order as read; order matters only
// for readability of rendered output, never for install semantics.
type Manifest struct {
	Path         string
	Format       ManifestFormat
	Requirements []Requirement
}
