package creds

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/stratalabs/teamscdr-cli/internal/graph"
)

// Environment variables read by Env.
const (
	EnvClientID     = "TEAMSCDR_CLIENT_ID"
	EnvClientSecret = "TEAMSCDR_CLIENT_SECRET"
	EnvTenantID     = "TEAMSCDR_TENANT_ID"
	EnvAccessToken  = "TEAMSCDR_ACCESS_TOKEN"
)

// Env reads the credential from the process environment, loading a .env file
// from the working directory first when one exists.
type Env struct {
	// DotenvPath optionally names the env file to load. Empty means ".env".
	DotenvPath string

	loaded bool
}

// Credentials reads TEAMSCDR_CLIENT_ID and TEAMSCDR_CLIENT_SECRET.
func (e *Env) Credentials(_ context.Context) (Credential, error) {
	e.loadDotenv()

	cred := Credential{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
	}
	if cred.IsZero() {
		return Credential{}, graph.ErrNoCredential
	}
	return cred, nil
}

// loadDotenv merges the env file into the environment once. Variables already
// set in the environment win; a missing file is fine.
func (e *Env) loadDotenv() {
	if e.loaded {
		return
	}
	e.loaded = true

	path := e.DotenvPath
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}
