package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"venvctl/internal/app"
	"venvctl/internal/types"
)

type scriptOptions struct {
	Spec     string
	Platform string
	Output   string
}

func newScriptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script",
		Short: "Work with standalone bootstrap scripts",
	}
	cmd.AddCommand(newScriptRenderCommand())
	return cmd
}

func newScriptRenderCommand() *cobra.Command {
	opts := scriptOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a platform bootstrap script from the environment spec",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScriptRender(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "env.yaml", "Environment spec path")
	cmd.Flags().StringVar(&opts.Platform, "platform", "posix", "Target platform (posix or windows)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the script to a file instead of stdout")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("platform", cmd.Flags().Lookup("platform"))
	_ = viper.BindPFlag("script_output", cmd.Flags().Lookup("output"))
	return cmd
}

func runScriptRender(ctx context.Context, cmd *cobra.Command, opts scriptOptions) error {
	service := newAppService()
	result, err := service.Render(ctx, app.RenderRequest{
		SpecPath: resolveString(cmd, opts.Spec, "spec", "spec"),
		Platform: types.Platform(resolveString(cmd, opts.Platform, "platform", "platform")),
	})
	if err != nil {
		return err
	}
	output := resolveString(cmd, opts.Output, "script_output", "output")
	if output == "" {
		fmt.Print(result.Script)
		return nil
	}
	mode := os.FileMode(0755)
	if types.Platform(resolveString(cmd, opts.Platform, "platform", "platform")) == types.PlatformWindows {
		mode = 0644
	}
	if err := os.WriteFile(output, []byte(result.Script), mode); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write script to %s", output)).
			WithCause(err)
	}
	fmt.Printf("rendered: %s\n", output)
	return nil
}
