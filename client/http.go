package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody caps how much of a failure body ends up in an error message.
const maxErrorBody = 2048

// doJSONRequest performs a JSON request with the given method, URL, payload,
// and result. It handles marshaling the payload, creating the request,
// executing it, and decoding the response. If result is nil, the response
// body is not decoded. Every failure comes back as a classified *Error.
func (c *Client) doJSONRequest(ctx context.Context, method, url string, payload, result interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return transportError(fmt.Errorf("failed to marshal request: %w", err))
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return transportError(fmt.Errorf("failed to create request: %w", err))
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return protocolError(resp.StatusCode, bodyBytes)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return &Error{
				Kind:    KindProtocol,
				Message: fmt.Sprintf("failed to decode response: %v", err),
				Status:  resp.StatusCode,
			}
		}
	}

	return nil
}
