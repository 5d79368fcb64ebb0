package core

import (
	"fmt"

	debversion "github.com/knqyf263/go-deb-version"

	"venvctl/internal/types"
)

// CheckPrereq evaluates one system prerequisite against what the
// package database reported.  Version comparison uses Debian
// semantics, matching how the packages themselves are versioned.
func CheckPrereq(prereq types.Prereq, installed string, present bool) types.PrereqStatus {
	status := types.PrereqStatus{
		Name:             prereq.Name,
		InstalledVersion: installed,
	}
	if !present {
		status.Detail = "not installed"
		return status
	}
	if prereq.MinVersion == "" {
		status.Satisfied = true
		return status
	}
	have, err := debversion.NewVersion(installed)
	if err != nil {
		status.Detail = fmt.Sprintf("unparseable installed version %q", installed)
		return status
	}
	want, err := debversion.NewVersion(prereq.MinVersion)
	if err != nil {
		status.Detail = fmt.Sprintf("unparseable min_version %q", prereq.MinVersion)
		return status
	}
	if have.LessThan(want) {
		status.Detail = fmt.Sprintf("installed %s is older than required %s", installed, prereq.MinVersion)
		return status
	}
	status.Satisfied = true
	return status
}
