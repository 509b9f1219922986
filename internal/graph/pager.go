package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// reportPage is a single page of report results.
type reportPage struct {
	Value    []CallRecord `json:"value"`
	NextLink string       `json:"@odata.NextLink"`
}

// StreamRecords fetches every record reachable from initialURL, following the
// NextLink continuation chain until it ends.
//
// Records are delivered over the returned channel in the order the service
// sent them; the next page is not requested until the current page has been
// consumed. The error channel carries exactly one value once the record
// channel closes: nil on a fully drained chain, or the first failure. A failed
// page aborts the stream — records from earlier pages are never re-emitted and
// the failing page contributes nothing.
func (c *Client) StreamRecords(ctx context.Context, initialURL, accessToken string) (<-chan CallRecord, <-chan error) {
	records := make(chan CallRecord)
	errs := make(chan error, 1)

	go func() {
		defer close(records)
		defer close(errs)
		errs <- c.streamPages(ctx, initialURL, accessToken, records)
	}()

	return records, errs
}

// CollectRecords drains StreamRecords into a slice. On failure it returns the
// records emitted before the failing page alongside the error.
func (c *Client) CollectRecords(ctx context.Context, initialURL, accessToken string) ([]CallRecord, error) {
	recordsChan, errsChan := c.StreamRecords(ctx, initialURL, accessToken)

	var records []CallRecord
	for rec := range recordsChan {
		records = append(records, rec)
	}
	return records, <-errsChan
}

// streamPages walks the continuation chain and emits records page by page.
func (c *Client) streamPages(ctx context.Context, initialURL, accessToken string, out chan<- CallRecord) error {
	if accessToken == "" {
		return fmt.Errorf("%w: empty access token", ErrAuth)
	}

	currentURL := initialURL
	for currentURL != "" {
		if err := ctx.Err(); err != nil {
			return err
		}

		page, err := c.fetchPage(ctx, currentURL, accessToken)
		if err != nil {
			return err
		}

		for i := range page.Value {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case out <- page.Value[i]:
			}
		}

		currentURL = page.NextLink
	}

	return nil
}

// fetchPage fetches and decodes a single page of results.
func (c *Client) fetchPage(ctx context.Context, pageURL, accessToken string) (*reportPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrFetch, err)
	}

	// The report endpoints take the raw token value, unprefixed.
	req.Header.Set("Authorization", accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: page request: %v", ErrFetch, err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrFetch, err)
	}

	if resp.StatusCode != http.StatusOK {
		if statusErr := WrapError(resp.StatusCode); statusErr != nil {
			return nil, fmt.Errorf("%w: page request failed with status %d: %w",
				ErrFetch, resp.StatusCode, statusErr)
		}
		return nil, fmt.Errorf("%w: page request failed with status %d", ErrFetch, resp.StatusCode)
	}

	var page reportPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: decode page: %v", ErrFetch, err)
	}

	return &page, nil
}
