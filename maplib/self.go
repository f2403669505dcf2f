package maplib

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
)

const DefaultSelfIPURL = "https://api.ipify.org/?format=json"

type selfIPResponse struct {
	IP string `json:"ip"`
}

// SelfLocator detects a public IP address of the host it runs on and
// geolocates it. It always uses the same provider, no matter what
// a user has chosen for a log.
type SelfLocator struct {
	client   HTTPClient
	url      string
	provider Provider
}

// Locate returns a record with Origin flag set.
func (s *SelfLocator) Locate(ctx context.Context) (Record, error) {
	ip, err := s.publicIP(ctx)
	if err != nil {
		return Record{}, fmt.Errorf("cannot detect public IP: %w", err)
	}

	record, err := s.provider.Lookup(ctx, ip, "")
	if err != nil {
		return Record{}, fmt.Errorf("cannot geolocate public IP %s: %w", ip, err)
	}

	record.Origin = true

	return record, nil
}

func (s *SelfLocator) publicIP(ctx context.Context) (net.IP, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot build a request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot send a request: %w", err)
	}

	defer flushResponse(resp.Body)

	jsonResponse := selfIPResponse{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&jsonResponse); err != nil {
		return nil, fmt.Errorf("cannot parse a response: %w", err)
	}

	ip := net.ParseIP(strings.TrimSpace(jsonResponse.IP))
	if ip == nil {
		return nil, fmt.Errorf("incorrect ip %q: %w", jsonResponse.IP, ErrNoLocation)
	}

	return ip, nil
}

// NewSelfLocator builds a locator which asks url for a public IP and
// then geolocates it with provider. Empty url means DefaultSelfIPURL.
func NewSelfLocator(client HTTPClient, url string, provider Provider) *SelfLocator {
	if url == "" {
		url = DefaultSelfIPURL
	}

	return &SelfLocator{
		client:   client,
		url:      url,
		provider: provider,
	}
}
