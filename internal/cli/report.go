package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/witnet/witnet-evm/internal/cli/render"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// NewReportCmd creates the report command
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Encode a data push report for on-chain submission",
		Long: `Read a data push report, as served by Witnet RPC nodes, from a JSON or YAML
file ("-" reads JSON from stdin) and print its ABI tuple, the encoded message
and the message digest to be signed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var report domain.DataPushReport
			if err := readDocument(cmd, args[0], &report); err != nil {
				return err
			}

			result, encodeErr := app.EncodeReport.Run(cmd.Context(), usecase.EncodeReportParams{Report: &report})
			if result == nil {
				return encodeErr
			}

			renderer := render.NewReportRenderer(cmd.OutOrStdout(), colorEnabled(cmd))
			if err := renderer.Render(result); err != nil {
				return errors.Join(encodeErr, err)
			}
			return encodeErr
		},
	}

	return cmd
}
