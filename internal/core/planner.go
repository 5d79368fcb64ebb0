package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"venvctl/internal/types"
)

// PlanOptions carry the per-invocation knobs that influence planning
// beyond what the spec and probe already determine.
type PlanOptions struct {
	Recreate   bool
	UpgradePip bool
}

type Planner struct{}

func NewPlanner() Planner {
	return Planner{}
}

// BuildPlan compiles the environment spec and a host probe into the
// ordered bootstrap step list.  Every step kind always appears in the
// plan; steps that do not apply are marked skipped with a reason, so
// `plan` output explains the full pipeline rather than a fragment.
func (p Planner) BuildPlan(ctx context.Context, spec types.EnvSpec, probe types.MachineProbe, opts PlanOptions) (types.Plan, error) {
	plan := types.Plan{EnvName: spec.Metadata.Name}

	if probe.ActiveVenv != "" {
		plan.Steps = append(plan.Steps, types.Step{
			Kind:   types.StepDeactivate,
			Reason: fmt.Sprintf("active virtual environment at %s", probe.ActiveVenv),
		})
	} else {
		plan.Steps = append(plan.Steps, types.Step{
			Kind:    types.StepDeactivate,
			Reason:  "no active virtual environment",
			Skipped: true,
		})
	}

	interpreterStep, err := p.interpreterStep(spec, probe)
	if err != nil {
		return types.Plan{}, err
	}
	plan.Steps = append(plan.Steps, interpreterStep)

	if len(spec.Prereqs) > 0 {
		plan.Steps = append(plan.Steps, types.Step{
			Kind:   types.StepCheckPrereqs,
			Reason: fmt.Sprintf("%d system prerequisites declared", len(spec.Prereqs)),
		})
	} else {
		plan.Steps = append(plan.Steps, types.Step{
			Kind:    types.StepCheckPrereqs,
			Reason:  "no system prerequisites declared",
			Skipped: true,
		})
	}

	venvStep, err := p.venvStep(spec, probe, opts)
	if err != nil {
		return types.Plan{}, err
	}
	plan.Steps = append(plan.Steps, venvStep)

	if spec.Pip.UpgradePip || opts.UpgradePip {
		plan.Steps = append(plan.Steps, types.Step{
			Kind:   types.StepUpgradePip,
			Reason: "pip upgrade requested",
		})
	} else {
		plan.Steps = append(plan.Steps, types.Step{
			Kind:    types.StepUpgradePip,
			Reason:  "pip upgrade not requested",
			Skipped: true,
		})
	}

	plan.Steps = append(plan.Steps, types.Step{
		Kind:   types.StepInstallRequirements,
		Reason: fmt.Sprintf("install manifest %s", spec.Manifest.Path),
	})

	log.Ctx(ctx).Debug().
		Str("env", spec.Metadata.Name).
		Int("steps", len(plan.Active())).
		Msg("bootstrap plan built")
	return plan, nil
}

func (p Planner) interpreterStep(spec types.EnvSpec, probe types.MachineProbe) (types.Step, error) {
	if probe.InterpreterVersion == "" {
		return types.Step{
			Kind:   types.StepInstallInterpreter,
			Reason: fmt.Sprintf("no usable interpreter found, installing %s", spec.Python.Version),
		}, nil
	}
	matches, err := MatchesPin(probe.InterpreterVersion, spec.Python.Version)
	if err != nil {
		return types.Step{}, err
	}
	if matches {
		return types.Step{
			Kind:    types.StepInstallInterpreter,
			Reason:  fmt.Sprintf("detected %s matches pinned series", probe.InterpreterVersion),
			Skipped: true,
		}, nil
	}
	return types.Step{
		Kind:   types.StepInstallInterpreter,
		Reason: fmt.Sprintf("detected %s, pinned %s", probe.InterpreterVersion, spec.Python.Version),
	}, nil
}

func (p Planner) venvStep(spec types.EnvSpec, probe types.MachineProbe, opts PlanOptions) (types.Step, error) {
	if opts.Recreate {
		return types.Step{
			Kind:   types.StepCreateVenv,
			Reason: "recreate requested",
		}, nil
	}
	if !probe.VenvExists {
		return types.Step{
			Kind:   types.StepCreateVenv,
			Reason: fmt.Sprintf("no virtual environment at %s", spec.Venv.Dir),
		}, nil
	}
	matches, err := MatchesPin(probe.VenvVersion, spec.Python.Version)
	if err != nil {
		return types.Step{}, err
	}
	if matches {
		return types.Step{
			Kind:    types.StepCreateVenv,
			Reason:  "existing virtual environment matches pinned series",
			Skipped: true,
		}, nil
	}
	return types.Step{
		Kind:   types.StepCreateVenv,
		Reason: fmt.Sprintf("existing virtual environment runs %s, pinned %s", probe.VenvVersion, spec.Python.Version),
	}, nil
}
