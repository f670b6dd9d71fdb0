package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/witnet/witnet-evm/internal/cli/render"
	"github.com/witnet/witnet-evm/internal/domain/radon"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// NewRadonCmd creates the radon command
func NewRadonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "radon <file>",
		Short: "Encode a Radon asset into its ABI tuple",
		Long: `Read a Radon retrieval, script, reducer or filter from a JSON or YAML file
("-" reads JSON from stdin) and print the ABI tuple expected by the Wit/Oracle
Radon registry, as JSON.`,
		Example: `  # Encode a reducer
  echo '{"kind":"reducer","opcode":2}' | witnet-evm radon -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var document any
			if err := readDocument(cmd, args[0], &document); err != nil {
				return err
			}
			data, err := json.Marshal(document)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			asset, err := radon.ParseAsset(data)
			if err != nil {
				return err
			}

			result, err := app.EncodeRadonAsset.Run(cmd.Context(), usecase.EncodeRadonAssetParams{Asset: asset})
			if err != nil {
				return err
			}

			return render.NewRadonRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	return cmd
}
