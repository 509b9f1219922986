package creds

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/stratalabs/teamscdr-cli/internal/graph"
)

// Interactive prompts the user on the terminal for a credential pair.
// The secret is read without echo.
type Interactive struct {
	// In and Out default to stdin/stderr. Prompts go to Out so that piped
	// record output stays clean.
	In  *os.File
	Out *os.File
}

// Credentials prompts for the client ID and secret. On a non-terminal stdin,
// or when the user submits an empty value, it reports graph.ErrNoCredential
// without further I/O.
func (i *Interactive) Credentials(ctx context.Context) (Credential, error) {
	if err := ctx.Err(); err != nil {
		return Credential{}, err
	}

	in, out := i.In, i.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}

	if !term.IsTerminal(int(in.Fd())) {
		return Credential{}, fmt.Errorf("%w: no terminal to prompt on", graph.ErrNoCredential)
	}

	fmt.Fprint(out, "Application (client) ID: ")
	reader := bufio.NewReader(in)
	clientID, err := reader.ReadString('\n')
	if err != nil {
		return Credential{}, fmt.Errorf("%w: read client id: %v", graph.ErrNoCredential, err)
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return Credential{}, fmt.Errorf("%w: prompt declined", graph.ErrNoCredential)
	}

	fmt.Fprint(out, "Client secret: ")
	secret, err := term.ReadPassword(int(in.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return Credential{}, fmt.Errorf("%w: read client secret: %v", graph.ErrNoCredential, err)
	}
	if len(secret) == 0 {
		return Credential{}, fmt.Errorf("%w: prompt declined", graph.ErrNoCredential)
	}

	return Credential{ClientID: clientID, ClientSecret: string(secret)}, nil
}
