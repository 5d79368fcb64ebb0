package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"venvctl/internal/core"
)

func (s Service) Plan(ctx context.Context, req PlanRequest) (PlanResult, error) {
	specPath := strings.TrimSpace(req.SpecPath)
	if specPath == "" {
		return PlanResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("environment spec path is required")
	}
	spec, err := s.SpecLoader.LoadSpec(specPath)
	if err != nil {
		return PlanResult{}, err
	}
	checker := core.NewSpecChecker()
	if err := checker.ValidateSpec(ctx, spec); err != nil {
		return PlanResult{}, err
	}
	probe, err := s.buildProbe(ctx, spec)
	if err != nil {
		return PlanResult{}, err
	}
	planner := core.NewPlanner()
	plan, err := planner.BuildPlan(ctx, spec, probe, core.PlanOptions{
		Recreate:   req.Recreate,
		UpgradePip: req.UpgradePip,
	})
	if err != nil {
		return PlanResult{}, err
	}
	return PlanResult{Plan: plan}, nil
}
