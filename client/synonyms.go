package client

import (
	"context"
	"net/http"
	"net/url"
)

type synonymListResponse struct {
	Synonyms []SynonymEntry `json:"synonyms"`
}

// ListSynonyms fetches all synonym entries of an organization.
func (c *Client) ListSynonyms(ctx context.Context, orgID string) ([]SynonymEntry, error) {
	if orgID == "" {
		return nil, validationError("organization id is required")
	}

	q := url.Values{}
	q.Set("organization_id", orgID)

	var result synonymListResponse
	if err := c.doJSONRequest(ctx, http.MethodGet, withQuery(c.cfg.SynonymURL+"/", q), nil, &result); err != nil {
		return nil, err
	}

	if len(result.Synonyms) == 0 {
		return nil, emptyError("no synonyms defined for organization %s", orgID)
	}

	return result.Synonyms, nil
}

// CreateSynonym adds a new synonym entry.
func (c *Client) CreateSynonym(ctx context.Context, p SynonymPayload) (*SynonymEntry, error) {
	p, err := ValidateSynonymPayload(p)
	if err != nil {
		return nil, err
	}

	var entry SynonymEntry
	if err := c.doJSONRequest(ctx, http.MethodPost, c.cfg.SynonymURL, p, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateSynonym replaces the synonym list and context of an existing entry.
func (c *Client) UpdateSynonym(ctx context.Context, id string, p SynonymPayload) (*SynonymEntry, error) {
	if id == "" {
		return nil, validationError("synonym entry id is required")
	}
	p, err := ValidateSynonymPayload(p)
	if err != nil {
		return nil, err
	}

	var entry SynonymEntry
	if err := c.doJSONRequest(ctx, http.MethodPut, c.cfg.SynonymURL+"/"+id, p, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteSynonym removes a synonym entry.
func (c *Client) DeleteSynonym(ctx context.Context, id string) error {
	if id == "" {
		return validationError("synonym entry id is required")
	}
	return c.doJSONRequest(ctx, http.MethodDelete, c.cfg.SynonymURL+"/"+id, nil, nil)
}
