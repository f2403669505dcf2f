package maplib

import (
	"io"
	"net/http"
)

type httpClient struct {
	userAgent string
	client    *http.Client
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", h.userAgent)

	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		if resp != nil {
			flushResponse(resp.Body)
		}

		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		flushResponse(resp.Body)

		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	return resp, nil
}

// NewHTTPClient wraps a given client: sets a user agent and converts
// failed requests and responses with non-2xx statuses into
// TransportError. A timeout is taken from a wrapped client as is.
//
// There are no retries and no rate limiting here: each request is
// done exactly once.
func NewHTTPClient(client *http.Client, userAgent string) HTTPClient {
	return httpClient{
		userAgent: userAgent,
		client:    client,
	}
}

func flushResponse(body io.ReadCloser) {
	io.Copy(io.Discard, body) // nolint: errcheck
	body.Close()
}
