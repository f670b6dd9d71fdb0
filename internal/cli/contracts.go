package cli

import (
	"github.com/spf13/cobra"
	"github.com/witnet/witnet-evm/internal/cli/render"
	"github.com/witnet/witnet-evm/internal/config"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// NewContractsCmd creates the contracts command
func NewContractsCmd() *cobra.Command {
	var (
		templates bool
		modals    bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:     "contracts [filters...]",
		Aliases: []string{"ls"},
		Short:   "List Wit/Oracle framework contracts deployed on the connected chain",
		Long: `Connect to the ETH/RPC gateway, resolve the EVM network from its chain id and
list the Wit/Oracle framework contracts deployed on it.

Filters highlight the artifacts whose name ends with any of them, ignoring case.
WitOracle is highlighted when no filter is given.`,
		Example: `  # List framework contracts on a local gateway
  witnet-evm contracts

  # Highlight price feeds and show class and version tags
  witnet-evm contracts PriceFeeds --verbose

  # Connect to a remote gateway and list request templates
  witnet-evm contracts --rpc-url https://rpc.example.org --templates`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.DiscoverArtifactsParams{
				Filters:   args,
				Templates: templates,
				Modals:    modals,
			}

			result, err := app.DiscoverArtifacts.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			if !result.Supported {
				return domain.UnsupportedChainErr{ChainID: result.ChainID}
			}

			renderer := render.NewContractsRenderer(cmd.OutOrStdout(), colorEnabled(cmd), verbose)
			return renderer.Render(result)
		},
	}

	addGatewayFlags(cmd)
	cmd.Flags().BoolVar(&templates, "templates", false, "Also list deployed Radon request templates")
	cmd.Flags().BoolVar(&modals, "modals", false, "Also list deployed Radon request modals")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show contract class and version tag")
	cmd.Flags().String("addresses", "", "Local addresses file merged over the bundled ones (JSON or YAML)")
	cmd.Flags().String("assets", "", "Local Radon assets file (JSON or YAML)")

	return cmd
}

// addGatewayFlags adds the ETH/RPC gateway flags shared by chain commands
func addGatewayFlags(cmd *cobra.Command) {
	cmd.Flags().String("host", config.DefaultRPCHost, "ETH/RPC gateway host")
	cmd.Flags().Int("port", config.DefaultRPCPort, "ETH/RPC gateway port")
	cmd.Flags().String("rpc-url", "", "ETH/RPC gateway URL, overrides --host and --port")
}
