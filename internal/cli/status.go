package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"venvctl/internal/app"
)

type statusOptions struct {
	Spec string
	Lock string
}

func newStatusCommand() *cobra.Command {
	opts := statusOptions{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report interpreter, venv, and requirement drift",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "env.yaml", "Environment spec path")
	cmd.Flags().StringVar(&opts.Lock, "lock", "env.lock", "Lock file path")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("lock", cmd.Flags().Lookup("lock"))
	return cmd
}

func runStatus(ctx context.Context, cmd *cobra.Command, opts statusOptions) error {
	service := newAppService()
	result, err := service.Status(ctx, app.StatusRequest{
		SpecPath: resolveString(cmd, opts.Spec, "spec", "spec"),
		LockPath: resolveString(cmd, opts.Lock, "lock", "lock"),
	})
	if err != nil {
		return err
	}
	status := result.Status
	fmt.Printf("environment: %s\n", status.EnvName)
	fmt.Printf("  interpreter: pinned %s, detected %s (match: %t)\n",
		status.PinnedVersion, orNone(status.InterpreterVersion), status.InterpreterMatch)
	if status.VenvExists {
		fmt.Printf("  venv: present, python %s\n", orNone(status.VenvVersion))
	} else {
		fmt.Printf("  venv: absent\n")
	}
	if status.LockDigest != "" {
		fmt.Printf("  manifest drift since lock: %t\n", status.ManifestDrift)
	}
	for _, prereq := range status.Prereqs {
		if prereq.Satisfied {
			fmt.Printf("  prereq %s: ok (%s)\n", prereq.Name, prereq.InstalledVersion)
		} else {
			fmt.Printf("  prereq %s: %s\n", prereq.Name, prereq.Detail)
		}
	}
	for _, req := range status.Requirements {
		switch {
		case req.Missing:
			fmt.Printf("  %s: missing\n", req.Requirement.Name)
		case !req.Satisfied:
			fmt.Printf("  %s: installed %s, wants %s\n",
				req.Requirement.Name, req.Installed, req.Requirement.Specifier)
		}
	}
	return nil
}

func orNone(value string) string {
	if value == "" {
		return "none"
	}
	return value
}
