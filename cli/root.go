// Package cli provides the command-line interface for hirescope.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"hirescope/client"
	"hirescope/config"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	apiURL  string
	orgID   string
	verbose bool

	// Global config and client
	cfg      config.Config
	api      *client.Client
	logger   *slog.Logger
	logClose func() error
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hirescope",
	Short: "Recruiting analytics in your terminal",
	Long: `Hirescope renders recruiting analytics from your hiring backend:
candidate-to-vacancy comparisons, taxonomy usage, funnel conversion,
time-to-hire, and skill synonym management.

Run a one-shot report command, or 'hirescope dashboard' for the
interactive view.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()

		// Flags win over environment, environment over defaults
		clientCfg := client.FromAppConfig(cfg)
		if apiURL != "" {
			clientCfg = client.Config{
				ComparisonURL: apiURL + config.ComparisonPath,
				TaxonomyURL:   apiURL + config.TaxonomyPath,
				FunnelURL:     apiURL + config.FunnelPath,
				MetricsURL:    apiURL + config.MetricsPath,
				SynonymURL:    apiURL + config.SynonymPath,
			}
		}
		api = client.New(clientCfg)

		if orgID == "" {
			orgID = cfg.OrganizationID
		}

		logger, logClose = config.SetupLogger(cfg.LogFile, cfg.LogLevel, verbose)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logClose != nil {
			_ = logClose()
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend root URL (overrides HIRESCOPE_API_URL)")
	rootCmd.PersistentFlags().StringVar(&orgID, "org", "", "organization id for synonym management")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr as well as the log file")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(taxonomiesCmd)
	rootCmd.AddCommand(funnelCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(synonymsCmd)
	rootCmd.AddCommand(dashboardCmd)
}
