package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"venvctl/internal/app"
)

type bootstrapOptions struct {
	Spec       string
	Recreate   bool
	UpgradePip bool
}

func newBootstrapCommand() *cobra.Command {
	opts := bootstrapOptions{}
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Provision the pinned interpreter, virtual environment, and requirements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBootstrap(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "env.yaml", "Environment spec path")
	cmd.Flags().BoolVar(&opts.Recreate, "recreate", false, "Remove and recreate an existing virtual environment")
	cmd.Flags().BoolVar(&opts.UpgradePip, "upgrade-pip", false, "Upgrade pip before installing requirements")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("recreate", cmd.Flags().Lookup("recreate"))
	_ = viper.BindPFlag("upgrade_pip", cmd.Flags().Lookup("upgrade-pip"))
	return cmd
}

func runBootstrap(ctx context.Context, cmd *cobra.Command, opts bootstrapOptions) error {
	service := newAppService()
	result, err := service.Bootstrap(ctx, app.BootstrapRequest{
		SpecPath:   resolveString(cmd, opts.Spec, "spec", "spec"),
		Recreate:   resolveBool(cmd, opts.Recreate, "recreate", "recreate"),
		UpgradePip: resolveBool(cmd, opts.UpgradePip, "upgrade_pip", "upgrade-pip"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("bootstrapped: %s (python %s, %d requirements) at %s\n",
		result.EnvName, result.PythonVersion, result.Requirements, result.VenvDir)
	return nil
}
