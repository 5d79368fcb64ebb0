package types

// MachineProbe is a snapshot of the host state relevant to planning.
// Adapters fill it; the planner never touches the host itself.
type MachineProbe struct {
	ActiveVenv         string
	InterpreterPath    string
	InterpreterVersion string
	VenvExists         bool
	VenvVersion        string
	Prereqs            []PrereqStatus
}

type PrereqStatus struct {
	Name             string
	InstalledVersion string
	Satisfied        bool
	Detail           string
}

type Step struct {
	Kind    StepKind
	Reason  string
	Skipped bool
}

type Plan struct {
	EnvName string
	Steps   []Step
}

// Active returns the steps that will actually execute, in order.
func (p Plan) Active() []Step {
	var steps []Step
	for _, step := range p.Steps {
		if !step.Skipped {
			steps = append(steps, step)
		}
	}
	return steps
}
