package cli

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"github.com/witnet/witnet-evm/internal/cli/render"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// NewQueryCmd creates the query command
func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <id>",
		Short: "Show the status of a WitOracle query",
		Long: `Read the status of a query from the WitOracle contract deployed on the
connected chain. The id can be given in decimal or 0x-prefixed hex.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			queryID, ok := new(big.Int).SetString(args[0], 0)
			if !ok {
				return fmt.Errorf("invalid query id: %s", args[0])
			}

			result, err := app.InspectQuery.Run(cmd.Context(), usecase.InspectQueryParams{QueryID: queryID})
			if err != nil {
				return err
			}

			renderer := render.NewQueryRenderer(cmd.OutOrStdout(), colorEnabled(cmd))
			return renderer.Render(result)
		},
	}

	addGatewayFlags(cmd)
	cmd.Flags().String("addresses", "", "Local addresses file merged over the bundled ones (JSON or YAML)")

	return cmd
}
