package client

import (
	"context"
	"net/http"
)

// CompareResumes compares the selected resumes against a vacancy via the
// backend. The resume selection is validated locally first; an out-of-bounds
// selection never reaches the network.
func (c *Client) CompareResumes(ctx context.Context, req ComparisonRequest) (*ComparisonResponse, error) {
	if err := ValidateResumeIDs(req.ResumeIDs); err != nil {
		return nil, err
	}
	if req.VacancyID == "" {
		return nil, validationError("vacancy id is required")
	}

	var result ComparisonResponse
	if err := c.doJSONRequest(ctx, http.MethodPost, c.cfg.ComparisonURL+"/compare-multiple", req, &result); err != nil {
		return nil, err
	}

	if len(result.Comparisons) == 0 {
		return nil, emptyError("no comparison results for vacancy %s", req.VacancyID)
	}

	return &result, nil
}
