package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// withQuery appends a query string to a base URL when any values are set.
func withQuery(base string, q url.Values) string {
	if enc := q.Encode(); enc != "" {
		return base + "?" + enc
	}
	return base
}

// dateRangeQuery builds the shared start/end filter; absent bounds are
// omitted entirely rather than sent empty.
func dateRangeQuery(r DateRange) url.Values {
	q := url.Values{}
	if r.Start != "" {
		q.Set("start_date", r.Start)
	}
	if r.End != "" {
		q.Set("end_date", r.End)
	}
	return q
}

// TaxonomyAnalytics fetches most-used and most-effective taxonomy stats,
// optionally filtered by industry and limited in size.
func (c *Client) TaxonomyAnalytics(ctx context.Context, opts TaxonomyOptions) (*TaxonomyAnalyticsResponse, error) {
	q := url.Values{}
	if opts.Industry != "" {
		q.Set("industry", opts.Industry)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	var result TaxonomyAnalyticsResponse
	if err := c.doJSONRequest(ctx, http.MethodGet, withQuery(c.cfg.TaxonomyURL, q), nil, &result); err != nil {
		return nil, err
	}

	if len(result.MostUsed) == 0 && len(result.MostEffective) == 0 {
		return nil, emptyError("no taxonomy usage recorded yet")
	}

	return &result, nil
}

// HiringFunnel fetches pipeline stage counts for an optional date range.
func (c *Client) HiringFunnel(ctx context.Context, r DateRange) (*FunnelResponse, error) {
	var result FunnelResponse
	if err := c.doJSONRequest(ctx, http.MethodGet, withQuery(c.cfg.FunnelURL, dateRangeQuery(r)), nil, &result); err != nil {
		return nil, err
	}

	if len(result.Stages) == 0 {
		return nil, emptyError("no funnel activity in the selected period")
	}

	return &result, nil
}

// KeyMetrics fetches the time-to-hire, resume volume, and match-rate
// snapshot for an optional date range.
func (c *Client) KeyMetrics(ctx context.Context, r DateRange) (*KeyMetricsResponse, error) {
	var result KeyMetricsResponse
	if err := c.doJSONRequest(ctx, http.MethodGet, withQuery(c.cfg.MetricsURL, dateRangeQuery(r)), nil, &result); err != nil {
		return nil, err
	}

	if result.Resumes.Total == 0 {
		return nil, emptyError("no resumes processed in the selected period")
	}

	return &result, nil
}
