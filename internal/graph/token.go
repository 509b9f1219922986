package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// tokenScope requests the application permissions consented for the app.
const tokenScope = "https://graph.microsoft.com/.default"

// tokenResponse is the identity platform's token endpoint response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// ExchangeToken exchanges an application credential for a bearer access token
// using the OAuth2 client-credentials grant.
//
// The tenant ID must be a GUID. Tokens expire after roughly an hour; the
// client does not track expiry.
func (c *Client) ExchangeToken(ctx context.Context, clientID, clientSecret, tenantID string) (string, error) {
	if clientID == "" || clientSecret == "" {
		return "", fmt.Errorf("%w: client id and secret are required", ErrNoCredential)
	}
	if _, err := uuid.Parse(tenantID); err != nil {
		return "", fmt.Errorf("%w: tenant id must be a GUID, got %q", ErrInvalidQuery, tenantID)
	}

	tokenURL := fmt.Sprintf("%s/%s/oauth2/v2.0/token", c.loginBaseURL, tenantID)

	data := url.Values{}
	data.Set("client_id", clientID)
	data.Set("client_secret", clientSecret)
	data.Set("scope", tokenScope)
	data.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", ErrAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token request: %v", ErrAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token endpoint returned status %d", ErrAuth, resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("%w: decode token response: %v", ErrAuth, err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: token response missing access_token", ErrAuth)
	}

	return tok.AccessToken, nil
}
