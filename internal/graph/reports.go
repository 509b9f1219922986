package graph

import (
	"context"
	"fmt"
)

// ReportType selects which call usage report endpoint to query.
type ReportType string

const (
	// ReportPstnCalls is the calling-plan (PSTN) usage report.
	ReportPstnCalls ReportType = "getPstnCalls"
	// ReportDirectRoutingCalls is the direct-routing usage report.
	ReportDirectRoutingCalls ReportType = "getDirectRoutingCalls"
)

// The service serves reports covering at most 90 trailing days.
const (
	minTrailingDays = 1
	maxTrailingDays = 90
)

const dateFormat = "2006-01-02"

// ReportQuery describes one report request. Exactly one input mode must be
// set: an explicit StartDate/EndDate pair, or a trailing Days count.
type ReportQuery struct {
	Report ReportType

	// StartDate and EndDate bound the report as YYYY-MM-DD, from midnight at
	// the start of StartDate up to midnight at the start of EndDate, UTC.
	// They are passed to the service verbatim.
	StartDate string
	EndDate   string

	// Days selects the trailing-day window ending tomorrow at midnight, so
	// that today's calls are included. Must be within [1, 90].
	Days int
}

// Validate checks the query's input mode without touching the network.
func (q ReportQuery) Validate() error {
	switch q.Report {
	case ReportPstnCalls, ReportDirectRoutingCalls:
	default:
		return fmt.Errorf("%w: unknown report type %q", ErrInvalidQuery, q.Report)
	}

	hasRange := q.StartDate != "" || q.EndDate != ""
	hasDays := q.Days != 0

	switch {
	case hasRange && hasDays:
		return fmt.Errorf("%w: supply either a date range or a day count, not both", ErrInvalidQuery)
	case !hasRange && !hasDays:
		return fmt.Errorf("%w: a date range or a day count is required", ErrInvalidQuery)
	}

	if hasRange && (q.StartDate == "" || q.EndDate == "") {
		return fmt.Errorf("%w: start and end dates are required together", ErrInvalidQuery)
	}
	if hasDays && (q.Days < minTrailingDays || q.Days > maxTrailingDays) {
		return fmt.Errorf("%w: days must be between %d and %d, got %d",
			ErrInvalidQuery, minTrailingDays, maxTrailingDays, q.Days)
	}

	return nil
}

// buildReportURL validates the query and renders the report URL. Both report
// types share this path; only the function segment differs.
func (c *Client) buildReportURL(q ReportQuery) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	from, to := q.StartDate, q.EndDate
	if q.Days != 0 {
		end := c.now().UTC().AddDate(0, 0, 1)
		start := end.AddDate(0, 0, -q.Days)
		from = start.Format(dateFormat)
		to = end.Format(dateFormat)
	}

	return fmt.Sprintf("%s/communications/callRecords/%s(fromDateTime=%s,toDateTime=%s)",
		c.graphBaseURL, q.Report, from, to), nil
}

// StreamReport runs a report query and streams its records lazily.
// The returned error covers query validation only; network and auth failures
// arrive on the error channel, as in StreamRecords.
func (c *Client) StreamReport(ctx context.Context, accessToken string, q ReportQuery) (<-chan CallRecord, <-chan error, error) {
	reportURL, err := c.buildReportURL(q)
	if err != nil {
		return nil, nil, err
	}

	records, errs := c.StreamRecords(ctx, reportURL, accessToken)
	return records, errs, nil
}

// FetchReport runs a report query and collects every record.
func (c *Client) FetchReport(ctx context.Context, accessToken string, q ReportQuery) ([]CallRecord, error) {
	reportURL, err := c.buildReportURL(q)
	if err != nil {
		return nil, err
	}

	return c.CollectRecords(ctx, reportURL, accessToken)
}
