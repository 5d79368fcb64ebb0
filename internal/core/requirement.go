package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"venvctl/internal/shared"
	"venvctl/internal/types"
)

// namePattern is the PEP 508 package name grammar.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// specifierStart marks where a version specifier can begin within a
// requirement line once the name and extras have been consumed.
const specifierStart = "=<>!~"

// ParseManifest parses a requirements manifest: one specifier per line,
// lines beginning with '#' are comments, blank lines are ignored.
// Requirement order is preserved.  Duplicate names (after PEP 503
// normalization) are rejected.
func ParseManifest(path string, content []byte) (types.Manifest, error) {
	manifest := types.Manifest{
		Path:   path,
		Format: types.ManifestFormatRequirements,
	}
	seen := map[string]int{}
	for i, raw := range strings.Split(string(content), "\n") {
		lineNo := i + 1
		req, ok, err := ParseRequirementLine(raw, lineNo)
		if err != nil {
			return types.Manifest{}, err
		}
		if !ok {
			continue
		}
		if prev, dup := seen[req.Name]; dup {
			return types.Manifest{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate requirement %s (lines %d and %d)", req.Name, prev, lineNo))
		}
		seen[req.Name] = lineNo
		manifest.Requirements = append(manifest.Requirements, req)
	}
	return manifest, nil
}

// ParseRequirementLine parses a single manifest line.  The second
// return value is false for blank lines and comments.
func ParseRequirementLine(raw string, lineNo int) (types.Requirement, bool, error) {
	line := stripInlineComment(raw)
	if line == "" {
		return types.Requirement{}, false, nil
	}
	if strings.HasPrefix(line, "-") {
		return types.Requirement{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("line %d: pip options are not supported in the manifest: %s", lineNo, line))
	}
	if strings.Contains(line, "@") {
		return types.Requirement{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("line %d: URL requirements are not supported: %s", lineNo, line))
	}

	spec := line
	marker := ""
	if idx := strings.Index(line, ";"); idx >= 0 {
		spec = strings.TrimSpace(line[:idx])
		marker = strings.TrimSpace(line[idx+1:])
	}

	name := spec
	specifier := ""
	if idx := strings.IndexAny(spec, specifierStart); idx >= 0 {
		name = strings.TrimSpace(spec[:idx])
		specifier = strings.TrimSpace(spec[idx:])
	}

	var extras []string
	if idx := strings.Index(name, "["); idx >= 0 {
		if !strings.HasSuffix(name, "]") {
			return types.Requirement{}, false, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("line %d: unterminated extras: %s", lineNo, line))
		}
		for _, extra := range strings.Split(name[idx+1:len(name)-1], ",") {
			extra = strings.TrimSpace(extra)
			if extra != "" {
				extras = append(extras, extra)
			}
		}
		name = strings.TrimSpace(name[:idx])
	}

	if !namePattern.MatchString(name) {
		return types.Requirement{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("line %d: invalid package name: %s", lineNo, name))
	}
	if specifier != "" {
		if _, err := pep440.NewSpecifiers(specifier); err != nil {
			return types.Requirement{}, false, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("line %d: invalid version specifier %q", lineNo, specifier)).
				WithCause(err)
		}
	}

	return types.Requirement{
		Name:      shared.NormalizePipName(name),
		RawName:   name,
		Extras:    extras,
		Specifier: specifier,
		Marker:    marker,
		Line:      lineNo,
	}, true, nil
}

// CheckInstalled reports whether an installed version satisfies the
// requirement's specifier set.  A requirement without a specifier is
// satisfied by any installed version.
func CheckInstalled(req types.Requirement, installed string) (bool, error) {
	if req.Specifier == "" {
		return true, nil
	}
	spec, err := pep440.NewSpecifiers(req.Specifier)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid specifier for %s", req.Name)).
			WithCause(err)
	}
	version, err := pep440.Parse(installed)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid installed version %q for %s", installed, req.Name)).
			WithCause(err)
	}
	return spec.Check(version), nil
}

// stripInlineComment trims a line and removes a trailing comment.  An
// inline '#' only starts a comment when preceded by whitespace, so
// names containing '#' are never truncated by accident.
func stripInlineComment(raw string) string {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return ""
	}
	for i := 1; i < len(line); i++ {
		if line[i] == '#' && (line[i-1] == ' ' || line[i-1] == '\t') {
			return strings.TrimSpace(line[:i])
		}
	}
	return line
}
