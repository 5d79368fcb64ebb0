package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"venvctl/internal/core"
	"venvctl/internal/types"
)

// Bootstrap runs the full provisioning pipeline.  Steps execute
// strictly in plan order; the first failure aborts with the failing
// step's wrapped subprocess output.
func (s Service) Bootstrap(ctx context.Context, req BootstrapRequest) (BootstrapResult, error) {
	specPath := strings.TrimSpace(req.SpecPath)
	if specPath == "" {
		return BootstrapResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("environment spec path is required")
	}
	spec, err := s.SpecLoader.LoadSpec(specPath)
	if err != nil {
		return BootstrapResult{}, err
	}
	checker := core.NewSpecChecker()
	if err := checker.ValidateSpec(ctx, spec); err != nil {
		return BootstrapResult{}, err
	}
	manifest, err := s.Manifest.LoadManifest(spec.Manifest)
	if err != nil {
		return BootstrapResult{}, err
	}
	probe, err := s.buildProbe(ctx, spec)
	if err != nil {
		return BootstrapResult{}, err
	}
	planner := core.NewPlanner()
	plan, err := planner.BuildPlan(ctx, spec, probe, core.PlanOptions{
		Recreate:   req.Recreate,
		UpgradePip: req.UpgradePip,
	})
	if err != nil {
		return BootstrapResult{}, err
	}

	result := BootstrapResult{
		EnvName:       spec.Metadata.Name,
		PythonVersion: spec.Python.Version,
		VenvDir:       spec.Venv.Dir,
		Requirements:  len(manifest.Requirements),
	}
	pythonPath := probe.InterpreterPath
	for _, step := range plan.Steps {
		if step.Skipped {
			log.Ctx(ctx).Debug().
				Str("step", string(step.Kind)).
				Str("reason", step.Reason).
				Msg("step skipped")
			continue
		}
		log.Ctx(ctx).Info().
			Str("step", string(step.Kind)).
			Str("reason", step.Reason).
			Msg("step running")
		switch step.Kind {
		case types.StepDeactivate:
			// Subprocess environments are scrubbed of the active venv
			// by the adapters; nothing to execute here.
		case types.StepInstallInterpreter:
			if spec.Python.Manager == types.ManagerSystem {
				return result, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("interpreter %s required but provisioning is disabled (python.manager: system)", spec.Python.Version))
			}
			pythonPath, err = s.Interpreter.Install(ctx, spec.Python.Version)
			if err != nil {
				return result, err
			}
		case types.StepCheckPrereqs:
			if err := failUnsatisfiedPrereqs(probe.Prereqs); err != nil {
				return result, err
			}
		case types.StepCreateVenv:
			if probe.VenvExists {
				if err := s.Venv.Remove(spec.Venv.Dir); err != nil {
					return result, err
				}
			}
			if err := s.Venv.Create(ctx, pythonPath, spec.Venv.Dir, spec.Venv.Prompt); err != nil {
				return result, err
			}
		case types.StepUpgradePip:
			if err := s.Pip.UpgradePip(ctx, spec.Venv.Dir, spec.Pip.IndexURL); err != nil {
				return result, err
			}
		case types.StepInstallRequirements:
			if err := s.Pip.Install(ctx, spec.Venv.Dir, spec.Manifest.Path, spec.Pip.IndexURL); err != nil {
				return result, err
			}
		}
		result.Executed = append(result.Executed, step.Kind)
	}
	log.Ctx(ctx).Info().
		Str("env", spec.Metadata.Name).
		Int("requirements", len(manifest.Requirements)).
		Msg("bootstrap complete")
	return result, nil
}

func failUnsatisfiedPrereqs(statuses []types.PrereqStatus) error {
	var failures []string
	for _, status := range statuses {
		if !status.Satisfied {
			failures = append(failures, fmt.Sprintf("%s (%s)", status.Name, status.Detail))
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("unsatisfied system prerequisites: " + strings.Join(failures, ", "))
}
