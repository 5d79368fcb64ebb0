package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"venvctl/internal/core"
	"venvctl/internal/types"
)

// buildProbe snapshots the host state the planner needs.  Prereq
// queries run concurrently; everything else is a handful of cheap
// sequential calls.
func (s Service) buildProbe(ctx context.Context, spec types.EnvSpec) (types.MachineProbe, error) {
	probe := types.MachineProbe{ActiveVenv: s.Venv.Active()}

	path, version, err := s.Interpreter.Probe(ctx, spec.Python.Command)
	if err != nil {
		return types.MachineProbe{}, err
	}
	probe.InterpreterPath = path
	probe.InterpreterVersion = version

	exists, venvVersion, err := s.Venv.Probe(ctx, spec.Venv.Dir)
	if err != nil {
		return types.MachineProbe{}, err
	}
	probe.VenvExists = exists
	probe.VenvVersion = venvVersion

	statuses, err := s.probePrereqs(ctx, spec.Prereqs)
	if err != nil {
		return types.MachineProbe{}, err
	}
	probe.Prereqs = statuses
	return probe, nil
}

func (s Service) probePrereqs(ctx context.Context, prereqs []types.Prereq) ([]types.PrereqStatus, error) {
	if len(prereqs) == 0 {
		return nil, nil
	}
	statuses := make([]types.PrereqStatus, len(prereqs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(4)
	for i, prereq := range prereqs {
		group.Go(func() error {
			installed, present, err := s.System.Query(groupCtx, prereq.Name)
			if err != nil {
				return err
			}
			statuses[i] = core.CheckPrereq(prereq, installed, present)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return statuses, nil
}
