package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"venvctl/internal/core"
)

func (s Service) Render(ctx context.Context, req RenderRequest) (RenderResult, error) {
	specPath := strings.TrimSpace(req.SpecPath)
	if specPath == "" {
		return RenderResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("environment spec path is required")
	}
	spec, err := s.SpecLoader.LoadSpec(specPath)
	if err != nil {
		return RenderResult{}, err
	}
	checker := core.NewSpecChecker()
	if err := checker.ValidateSpec(ctx, spec); err != nil {
		return RenderResult{}, err
	}
	script, err := s.Scripts.Render(spec, req.Platform)
	if err != nil {
		return RenderResult{}, err
	}
	return RenderResult{Script: script}, nil
}
