package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stratalabs/teamscdr-cli/internal/creds"
	"github.com/stratalabs/teamscdr-cli/internal/graph"
	"github.com/stratalabs/teamscdr-cli/internal/logger"
)

var (
	// Version is set by goreleaser ldflags.
	version = "dev"

	// Verbose enables debug logging.
	verbose bool

	// Services injected for CLI commands.
	graphClient      GraphClient
	credentialSource creds.Source
)

// GraphClient is the Graph operations surface the commands use.
type GraphClient interface {
	ExchangeToken(ctx context.Context, clientID, clientSecret, tenantID string) (string, error)
	FetchReport(ctx context.Context, accessToken string, q graph.ReportQuery) ([]graph.CallRecord, error)
}

// Services holds injected implementations for CLI commands.
type Services struct {
	Graph GraphClient
	// Credentials overrides the default flag/env/prompt chain.
	// Leave nil to use the built-in chain.
	Credentials creds.Source
}

// SetServices injects service implementations for CLI commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	graphClient = s.Graph
	credentialSource = s.Credentials
}

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "teamscdr",
	Short: "Fetch Microsoft Teams PSTN and direct-routing call usage records",
	Long: `Teamscdr retrieves Microsoft Teams call usage records through the
Microsoft Graph call-records reports.

It covers calling-plan (PSTN) usage as well as direct-routing usage, for an
explicit date range or a trailing number of days, and writes the records as a
table, CSV or JSON.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose debug output")

	// Use PersistentPreRunE to set verbose mode before any command executes
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return nil
	}
}
