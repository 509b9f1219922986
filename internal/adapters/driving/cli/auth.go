package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stratalabs/teamscdr-cli/internal/config"
	"github.com/stratalabs/teamscdr-cli/internal/creds"
	"github.com/stratalabs/teamscdr-cli/internal/graph"
	"github.com/stratalabs/teamscdr-cli/internal/logger"
)

// Flags shared by commands that authenticate against the identity platform.
var (
	flagConfigPath   string
	flagTenantID     string
	flagClientID     string
	flagClientSecret string
	flagAccessToken  string
)

// registerAuthFlags attaches the credential/tenant flags to a command.
func registerAuthFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfigPath, "config", "",
		"path to config file (default ~/.teamscdr/config.toml)")
	cmd.Flags().StringVar(&flagTenantID, "tenant", "",
		"directory (tenant) ID, a GUID")
	cmd.Flags().StringVar(&flagClientID, "client-id", "",
		"application (client) ID")
	cmd.Flags().StringVar(&flagClientSecret, "client-secret", "",
		"application client secret")
}

// loadConfig reads the config file named by --config, or the default one.
func loadConfig() (*config.Config, error) {
	path := flagConfigPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			logger.Debugf("no default config path: %v", err)
			return config.Default(), nil
		}
		path = defaultPath
	}
	return config.Load(path)
}

// resolveTenantID picks the tenant from flag, environment or config file.
func resolveTenantID(cfg *config.Config) (string, error) {
	if flagTenantID != "" {
		return flagTenantID, nil
	}
	if v := os.Getenv(creds.EnvTenantID); v != "" {
		return v, nil
	}
	if cfg.Auth.TenantID != "" {
		return cfg.Auth.TenantID, nil
	}
	return "", fmt.Errorf("tenant ID is required (--tenant, %s or the config file)", creds.EnvTenantID)
}

// credentialChain builds the credential lookup order: flags, config file,
// environment, then an interactive prompt as the last resort.
func credentialChain(cfg *config.Config) creds.Source {
	if credentialSource != nil {
		return credentialSource
	}
	return creds.Chain{
		creds.Static{ClientID: flagClientID, ClientSecret: flagClientSecret},
		creds.Static{ClientID: cfg.Auth.ClientID, ClientSecret: cfg.Auth.ClientSecret},
		&creds.Env{},
		&creds.Interactive{},
	}
}

// exchangeToken obtains a credential and runs the client-credentials exchange.
func exchangeToken(ctx context.Context, cfg *config.Config) (string, error) {
	tenantID, err := resolveTenantID(cfg)
	if err != nil {
		return "", err
	}

	cred, err := credentialChain(cfg).Credentials(ctx)
	if err != nil {
		if errors.Is(err, graph.ErrNoCredential) {
			return "", fmt.Errorf(
				"no client credential supplied; pass --client-id/--client-secret, set %s and %s, or add them to the config file: %w",
				creds.EnvClientID, creds.EnvClientSecret, err)
		}
		return "", err
	}

	logger.Debugf("exchanging credentials for tenant %s", tenantID)
	return graphClient.ExchangeToken(ctx, cred.ClientID, cred.ClientSecret, tenantID)
}

// resolveAccessToken returns the token from --token or the environment, or
// falls back to a fresh credential exchange.
func resolveAccessToken(ctx context.Context, cfg *config.Config) (string, error) {
	if flagAccessToken != "" {
		return flagAccessToken, nil
	}
	if v := os.Getenv(creds.EnvAccessToken); v != "" {
		return v, nil
	}
	return exchangeToken(ctx, cfg)
}
