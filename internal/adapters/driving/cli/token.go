package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Exchange application credentials for a bearer access token",
	Long: `Exchange an application (client) ID and secret for a Microsoft Graph
bearer access token using the OAuth2 client-credentials grant.

The token is printed to stdout and is valid for about an hour. Pass it to the
report commands with --token to skip repeating the exchange.

Examples:
  # Credentials from flags
  teamscdr token --tenant 72f988bf-86f1-41af-91ab-2d7cd011db47 \
    --client-id <app-id> --client-secret <secret>

  # Credentials from the environment or ~/.teamscdr/config.toml
  teamscdr token`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	registerAuthFlags(tokenCmd)
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	if graphClient == nil {
		return errors.New("graph client not configured")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	token, err := exchangeToken(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	cmd.Println(token)
	return nil
}
