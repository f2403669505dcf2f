package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/9seconds/ipmapper/maplib"
	"github.com/spf13/cast"
)

type ipgeolocationResponse struct {
	Latitude     interface{} `json:"latitude"`
	Longitude    interface{} `json:"longitude"`
	City         string      `json:"city"`
	StateProv    string      `json:"state_prov"`
	CountryName  string      `json:"country_name"`
	Organization string      `json:"organization"`
}

type ipgeolocationProvider struct {
	baseURL string
	client  maplib.HTTPClient
}

func (i ipgeolocationProvider) Name() maplib.ProviderName {
	return NameIPGeolocation
}

func (i ipgeolocationProvider) Lookup(ctx context.Context, ip net.IP, credential string) (maplib.Record, error) {
	result := maplib.Record{}

	if credential == "" {
		return result, maplib.ErrCredentialRequired
	}

	ipStr, err := ipv4String(ip)
	if err != nil {
		return result, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.buildURL(ipStr, credential), nil)
	if err != nil {
		return result, fmt.Errorf("cannot build a request: %w", err)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return result, fmt.Errorf("cannot send a request: %w", err)
	}

	defer flushResponse(resp.Body)

	jsonResponse := ipgeolocationResponse{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&jsonResponse); err != nil {
		return result, fmt.Errorf("cannot parse a response: %w", err)
	}

	latitude, err := parseCoordinate(jsonResponse.Latitude)
	if err != nil {
		return result, fmt.Errorf("%w: incorrect latitude: %v", maplib.ErrNoLocation, err)
	}

	longitude, err := parseCoordinate(jsonResponse.Longitude)
	if err != nil {
		return result, fmt.Errorf("%w: incorrect longitude: %v", maplib.ErrNoLocation, err)
	}

	result.IP = ipStr
	result.Latitude = latitude
	result.Longitude = longitude
	result.City = jsonResponse.City
	result.Region = jsonResponse.StateProv
	result.Country = jsonResponse.CountryName
	result.Org = jsonResponse.Organization
	result.Service = NameIPGeolocation.Service()

	return result, nil
}

func (i ipgeolocationProvider) buildURL(ip, credential string) string {
	getQuery := url.Values{}

	getQuery.Set("apiKey", credential)
	getQuery.Set("ip", ip)

	return i.baseURL + "/ipgeo?" + getQuery.Encode()
}

// parseCoordinate accepts both numbers and numeric strings. Absent
// coordinate is 0.
func parseCoordinate(value interface{}) (float64, error) {
	if value == nil {
		return 0, nil
	}

	return cast.ToFloat64E(value)
}

// NewIPGeolocation creates a provider for https://ipgeolocation.io. An
// API key is passed for each lookup. Supported parameters: base_url.
func NewIPGeolocation(client maplib.HTTPClient, parameters map[string]string) maplib.Provider {
	return ipgeolocationProvider{
		baseURL: baseURL(parameters, DefaultIPGeolocationBaseURL),
		client:  client,
	}
}
