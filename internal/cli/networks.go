package cli

import (
	"github.com/spf13/cobra"
	"github.com/witnet/witnet-evm/internal/cli/render"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var params usecase.ListNetworksParams

	cmd := &cobra.Command{
		Use:   "networks [filter]",
		Short: "List supported EVM networks",
		Long: `List the EVM networks supported by the Wit/Oracle framework, grouped by
ecosystem. An optional filter keeps networks whose name contains it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				params.Filter = args[0]
			}

			result, err := app.ListNetworks.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), colorEnabled(cmd))
			return renderer.Render(result)
		},
	}

	cmd.Flags().BoolVar(&params.Mainnets, "mainnets", false, "Only list mainnets")
	cmd.Flags().BoolVar(&params.Testnets, "testnets", false, "Only list testnets")
	cmd.MarkFlagsMutuallyExclusive("mainnets", "testnets")

	return cmd
}
