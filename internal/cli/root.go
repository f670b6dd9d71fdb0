package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/witnet/witnet-evm/internal/adapters/progress"
	"github.com/witnet/witnet-evm/internal/app"
	"github.com/witnet/witnet-evm/internal/config"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "witnet-evm",
		Short: "Inspect Wit/Oracle framework deployments on EVM chains",
		Long: `witnet-evm connects to an ETH/RPC gateway, finds which Wit/Oracle framework
contracts are deployed on the connected chain and encodes data push reports and
Radon assets for on-chain submission.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			// Set up viper
			v := config.SetupViper(projectRoot)

			// Bind flags that have been set
			config.BindFlags(v, cmd)

			appInstance, err := app.InitApp(v, newProgressSink(v.GetBool("debug")))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().String("config", "", "Path to witnet.toml (defaults to the project root)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for the whole command (default 1m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "chain",
		Title: "Chain Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "codec",
		Title: "Codec Commands",
	})

	contractsCmd := NewContractsCmd()
	contractsCmd.GroupID = "chain"
	rootCmd.AddCommand(contractsCmd)

	queryCmd := NewQueryCmd()
	queryCmd.GroupID = "chain"
	rootCmd.AddCommand(queryCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "chain"
	rootCmd.AddCommand(networksCmd)

	reportCmd := NewReportCmd()
	reportCmd.GroupID = "codec"
	rootCmd.AddCommand(reportCmd)

	radonCmd := NewRadonCmd()
	radonCmd.GroupID = "codec"
	rootCmd.AddCommand(radonCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// newProgressSink shows a spinner on interactive terminals, unless debug
// logs would interleave with it
func newProgressSink(debug bool) usecase.ProgressSink {
	if debug || !isatty.IsTerminal(os.Stderr.Fd()) {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerSink()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// colorEnabled reports whether renderers may emit ANSI colors
func colorEnabled(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
