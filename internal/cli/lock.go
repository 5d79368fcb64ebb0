package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"venvctl/internal/app"
)

type lockOptions struct {
	Spec string
	Lock string
}

func newLockCommand() *cobra.Command {
	opts := lockOptions{}
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Freeze installed requirement versions into a lock file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLock(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "env.yaml", "Environment spec path")
	cmd.Flags().StringVar(&opts.Lock, "lock", "env.lock", "Lock file path")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("lock", cmd.Flags().Lookup("lock"))
	return cmd
}

func runLock(ctx context.Context, cmd *cobra.Command, opts lockOptions) error {
	service := newAppService()
	result, err := service.Lock(ctx, app.LockRequest{
		SpecPath: resolveString(cmd, opts.Spec, "spec", "spec"),
		LockPath: resolveString(cmd, opts.Lock, "lock", "lock"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("locked: %d requirements to %s\n", result.Entries, result.LockPath)
	return nil
}
