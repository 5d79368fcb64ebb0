package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
)

// ParseInterpreterReport extracts the version from an interpreter's
// `--version` output, e.g. "Python 3.11.6\n" -> "3.11.6".  Some
// builds append a build suffix after the version; only the second
// whitespace-delimited field is read.
func ParseInterpreterReport(output string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) < 2 || fields[0] != "Python" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("unrecognized interpreter version report: %q", strings.TrimSpace(output)))
	}
	version := fields[1]
	if _, err := pep440.Parse(version); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("unparseable interpreter version: %q", version)).
			WithCause(err)
	}
	return version, nil
}

// MinorSeries reduces a full version to its major.minor series, the
// granularity at which a reinstall is triggered ("3.11.6" -> "3.11").
func MinorSeries(version string) (string, error) {
	if _, err := pep440.Parse(version); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid python version: %q", version)).
			WithCause(err)
	}
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return parts[0], nil
	}
	return parts[0] + "." + parts[1], nil
}

// MatchesPin reports whether a detected interpreter version satisfies
// the pin at minor-series precision.  The full pin is still what gets
// installed when this returns false.
func MatchesPin(detected string, pin string) (bool, error) {
	if detected == "" {
		return false, nil
	}
	detectedSeries, err := MinorSeries(detected)
	if err != nil {
		return false, err
	}
	pinSeries, err := MinorSeries(pin)
	if err != nil {
		return false, err
	}
	return detectedSeries == pinSeries, nil
}
