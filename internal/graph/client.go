package graph

import (
	"net/http"
	"time"
)

// Default service endpoints. The report endpoints live under the beta
// surface; the v1.0 surface does not expose the PSTN reports.
const (
	defaultGraphBaseURL = "https://graph.microsoft.com/beta"
	defaultLoginBaseURL = "https://login.microsoftonline.com"
)

// CallRecord is a single PSTN or direct-routing usage record.
// The service owns the schema; fields such as duration, charge, callType and
// licenseCapability pass through untouched and untyped.
type CallRecord map[string]any

// Client calls the Microsoft identity platform and Graph report endpoints.
// A zero-configured client from NewClient talks to the live service; tests
// point the base URLs at a local server.
//
// Client holds no per-call state and is safe for concurrent use.
type Client struct {
	httpClient   *http.Client
	graphBaseURL string
	loginBaseURL string
	now          func() time.Time
}

// NewClient creates a client for the live Microsoft endpoints.
func NewClient() *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		graphBaseURL: defaultGraphBaseURL,
		loginBaseURL: defaultLoginBaseURL,
		now:          time.Now,
	}
}
