// Package graph is a thin client for the Microsoft Graph call-records
// report endpoints.
//
// This package provides:
//   - Client-credentials token exchange against the Microsoft identity platform
//   - Paged fetching of PSTN calling-plan and direct-routing usage reports
//   - Error handling for Microsoft Graph API responses
//
// # Token exchange
//
// Tokens are obtained with the OAuth2 client-credentials grant:
//   - Token URL: https://login.microsoftonline.com/{tenant}/oauth2/v2.0/token
//   - Scope: https://graph.microsoft.com/.default
//
// Tokens are valid for about an hour. The client does not cache or refresh
// them; callers hold the token and pass it to each fetch.
//
// # Pagination
//
// The report endpoints return results in pages:
//
//	{"value": [...], "@odata.NextLink": "..."}
//
// The client follows the NextLink chain until no link is returned. Pages are
// causally dependent, so they are fetched strictly in sequence.
//
// # Limits
//
// The service only serves reports covering at most 90 days. Day-count queries
// are validated against that window before any request is made.
package graph
