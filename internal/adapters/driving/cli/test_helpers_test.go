package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stratalabs/teamscdr-cli/internal/creds"
	"github.com/stratalabs/teamscdr-cli/internal/graph"
)

// mockGraphClient is a test double for the GraphClient interface.
type mockGraphClient struct {
	token       string
	exchangeErr error
	records     []graph.CallRecord
	fetchErr    error

	exchangeCalls int
	fetchCalls    int

	lastClientID string
	lastTenantID string
	lastToken    string
	lastQuery    graph.ReportQuery
}

func (m *mockGraphClient) ExchangeToken(_ context.Context, clientID, _, tenantID string) (string, error) {
	m.exchangeCalls++
	m.lastClientID = clientID
	m.lastTenantID = tenantID
	if m.exchangeErr != nil {
		return "", m.exchangeErr
	}
	return m.token, nil
}

func (m *mockGraphClient) FetchReport(_ context.Context, accessToken string, q graph.ReportQuery) ([]graph.CallRecord, error) {
	m.fetchCalls++
	m.lastToken = accessToken
	m.lastQuery = q
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.records, nil
}

// setupTest installs the mock services and resets flag and environment state
// so commands run hermetically.
func setupTest(t *testing.T, mock *mockGraphClient, source creds.Source) {
	t.Helper()

	oldClient, oldSource := graphClient, credentialSource
	t.Cleanup(func() {
		graphClient = oldClient
		credentialSource = oldSource
	})
	graphClient = mock
	credentialSource = source

	// Point the config at a missing file so user config never leaks in.
	flagConfigPath = filepath.Join(t.TempDir(), "absent.toml")
	flagTenantID = ""
	flagClientID = ""
	flagClientSecret = ""
	flagAccessToken = ""
	flagStartDate = ""
	flagEndDate = ""
	flagDays = 0
	flagFormat = ""
	flagOutPath = ""

	t.Setenv(creds.EnvClientID, "")
	t.Setenv(creds.EnvClientSecret, "")
	t.Setenv(creds.EnvTenantID, "")
	t.Setenv(creds.EnvAccessToken, "")
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeAuthConfig writes a config file with a complete [auth] section and
// returns its path.
func writeAuthConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[auth]
tenant_id = "72f988bf-86f1-41af-91ab-2d7cd011db47"
client_id = "cfg-app"
client_secret = "cfg-secret"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
