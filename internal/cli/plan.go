package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"venvctl/internal/app"
)

type planOptions struct {
	Spec       string
	Recreate   bool
	UpgradePip bool
}

func newPlanCommand() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the bootstrap steps without executing them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "env.yaml", "Environment spec path")
	cmd.Flags().BoolVar(&opts.Recreate, "recreate", false, "Plan as if recreating the virtual environment")
	cmd.Flags().BoolVar(&opts.UpgradePip, "upgrade-pip", false, "Plan a pip self-upgrade before installing")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("recreate", cmd.Flags().Lookup("recreate"))
	_ = viper.BindPFlag("upgrade_pip", cmd.Flags().Lookup("upgrade-pip"))
	return cmd
}

func runPlan(ctx context.Context, cmd *cobra.Command, opts planOptions) error {
	service := newAppService()
	result, err := service.Plan(ctx, app.PlanRequest{
		SpecPath:   resolveString(cmd, opts.Spec, "spec", "spec"),
		Recreate:   resolveBool(cmd, opts.Recreate, "recreate", "recreate"),
		UpgradePip: resolveBool(cmd, opts.UpgradePip, "upgrade_pip", "upgrade-pip"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("plan for %s:\n", result.Plan.EnvName)
	for _, step := range result.Plan.Steps {
		marker := "run "
		if step.Skipped {
			marker = "skip"
		}
		fmt.Printf("  %s  %-22s %s\n", marker, step.Kind, step.Reason)
	}
	return nil
}
