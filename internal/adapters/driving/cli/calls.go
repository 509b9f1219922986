package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stratalabs/teamscdr-cli/internal/config"
	"github.com/stratalabs/teamscdr-cli/internal/export"
	"github.com/stratalabs/teamscdr-cli/internal/graph"
	"github.com/stratalabs/teamscdr-cli/internal/logger"
)

// Flags for the report commands.
var (
	flagStartDate string
	flagEndDate   string
	flagDays      int
	flagFormat    string
	flagOutPath   string
)

var pstnCallsCmd = &cobra.Command{
	Use:   "pstn-calls",
	Short: "Fetch calling-plan (PSTN) call usage records",
	Long: `Fetch Microsoft Teams calling-plan (PSTN) usage records.

Select the reporting window with either an explicit --from/--to date pair or
a trailing --days count. The service serves at most 90 trailing days; with
--days the window ends at tomorrow's midnight so today's calls are included.

Examples:
  # Last seven days, as a table
  teamscdr pstn-calls --days 7

  # Explicit range, written to a CSV file
  teamscdr pstn-calls --from 2020-04-01 --to 2020-04-09 --format csv --out calls.csv

  # Reuse a token from 'teamscdr token'
  teamscdr pstn-calls --days 30 --token "$TOKEN" --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCallsReport(cmd, graph.ReportPstnCalls)
	},
}

var directRoutingCallsCmd = &cobra.Command{
	Use:   "direct-routing-calls",
	Short: "Fetch direct-routing call usage records",
	Long: `Fetch Microsoft Teams direct-routing usage records.

Takes the same window and output flags as pstn-calls; only the report served
differs. Direct-routing covers calls carried over a customer-provided
telephony trunk rather than a calling plan.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCallsReport(cmd, graph.ReportDirectRoutingCalls)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{pstnCallsCmd, directRoutingCallsCmd} {
		registerAuthFlags(cmd)
		cmd.Flags().StringVar(&flagAccessToken, "token", "",
			"bearer access token (skips the credential exchange)")
		cmd.Flags().StringVar(&flagStartDate, "from", "",
			"start date, YYYY-MM-DD (requires --to)")
		cmd.Flags().StringVar(&flagEndDate, "to", "",
			"end date, YYYY-MM-DD, exclusive (requires --from)")
		cmd.Flags().IntVar(&flagDays, "days", 0,
			"trailing day count, 1 to 90 (alternative to --from/--to)")
		cmd.Flags().StringVar(&flagFormat, "format", "",
			"output format: table, csv or json")
		cmd.Flags().StringVarP(&flagOutPath, "out", "o", "",
			"write records to a file instead of stdout")
		rootCmd.AddCommand(cmd)
	}
}

func runCallsReport(cmd *cobra.Command, report graph.ReportType) error {
	if graphClient == nil {
		return errors.New("graph client not configured")
	}
	ctx := cmd.Context()

	query := graph.ReportQuery{
		Report:    report,
		StartDate: flagStartDate,
		EndDate:   flagEndDate,
		Days:      flagDays,
	}
	// Reject contradictory flags before any credential or network work.
	if err := query.Validate(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}

	token, err := resolveAccessToken(ctx, cfg)
	if err != nil {
		return err
	}

	records, err := graphClient.FetchReport(ctx, token, query)
	if err != nil {
		return err
	}
	logger.Debugf("fetched %d %s records", len(records), report)

	out, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	switch format {
	case "csv":
		return export.WriteCSV(out, records)
	case "json":
		return export.WriteJSON(out, records)
	default:
		return export.WriteTable(out, records)
	}
}

// resolveFormat picks the output format from the flag or config file.
func resolveFormat(cfg *config.Config) (string, error) {
	format := flagFormat
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case "table", "csv", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected table, csv or json)", format)
	}
}

// openOutput opens the --out file, or hands back the command's stdout.
func openOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	if flagOutPath == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	file, err := os.Create(flagOutPath)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return file, func() {
		if err := file.Close(); err != nil {
			logger.Warnf("close output file: %v", err)
		}
	}, nil
}
