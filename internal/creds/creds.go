// Package creds supplies application credentials to the Graph client.
//
// The client itself never prompts or reads the environment; it receives a
// Credential from an injectable Source. Sources can be chained so that
// explicit flags win over the environment, and an interactive prompt is only
// reached as a last resort.
package creds

import (
	"context"
	"errors"

	"github.com/stratalabs/teamscdr-cli/internal/graph"
)

// Credential is an application identifier/secret pair. It is held only long
// enough to perform a token exchange and never persisted.
type Credential struct {
	ClientID     string
	ClientSecret string
}

// IsZero reports whether the credential is missing either half.
func (c Credential) IsZero() bool {
	return c.ClientID == "" || c.ClientSecret == ""
}

// Source yields a credential pair, synchronously.
type Source interface {
	// Credentials returns a credential, or graph.ErrNoCredential when the
	// source has nothing to offer.
	Credentials(ctx context.Context) (Credential, error)
}

// Static is a fixed credential, typically from command-line flags or the
// config file.
type Static Credential

// Credentials returns the fixed credential.
func (s Static) Credentials(_ context.Context) (Credential, error) {
	cred := Credential(s)
	if cred.IsZero() {
		return Credential{}, graph.ErrNoCredential
	}
	return cred, nil
}

// Chain tries each source in order and returns the first credential found.
type Chain []Source

// Credentials walks the chain. Sources reporting graph.ErrNoCredential are
// skipped; any other error stops the walk.
func (c Chain) Credentials(ctx context.Context) (Credential, error) {
	for _, source := range c {
		cred, err := source.Credentials(ctx)
		if err == nil {
			return cred, nil
		}
		if !errors.Is(err, graph.ErrNoCredential) {
			return Credential{}, err
		}
	}
	return Credential{}, graph.ErrNoCredential
}
