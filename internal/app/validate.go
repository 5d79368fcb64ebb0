package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"venvctl/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	specPath := strings.TrimSpace(req.SpecPath)
	if specPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("environment spec path is required")
	}
	spec, err := s.SpecLoader.LoadSpec(specPath)
	if err != nil {
		return ValidateResult{}, err
	}
	checker := core.NewSpecChecker()
	if err := checker.ValidateSpec(ctx, spec); err != nil {
		return ValidateResult{}, err
	}
	manifest, err := s.Manifest.LoadManifest(spec.Manifest)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		EnvName:      spec.Metadata.Name,
		Requirements: len(manifest.Requirements),
	}, nil
}
