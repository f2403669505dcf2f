package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/9seconds/ipmapper/maplib"
)

type ipapiResponse struct {
	Status     string   `json:"status"`
	Message    string   `json:"message"`
	Latitude   *float64 `json:"lat"`
	Longitude  *float64 `json:"lon"`
	City       string   `json:"city"`
	RegionName string   `json:"regionName"`
	Country    string   `json:"country"`
	Org        string   `json:"org"`
}

type ipapiProvider struct {
	baseURL string
	client  maplib.HTTPClient
}

func (i ipapiProvider) Name() maplib.ProviderName {
	return NameIPAPI
}

// Lookup ignores a credential: free tier has no tokens.
func (i ipapiProvider) Lookup(ctx context.Context, ip net.IP, _ string) (maplib.Record, error) {
	result := maplib.Record{}

	ipStr, err := ipv4String(ip)
	if err != nil {
		return result, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.baseURL+"/json/"+ipStr, nil)
	if err != nil {
		return result, fmt.Errorf("cannot build a request: %w", err)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return result, fmt.Errorf("cannot send a request: %w", err)
	}

	defer flushResponse(resp.Body)

	jsonResponse := ipapiResponse{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&jsonResponse); err != nil {
		return result, fmt.Errorf("cannot parse a response: %w", err)
	}

	switch {
	case jsonResponse.Status != "success":
		return result, fmt.Errorf("%w: status=%q, message=%q",
			maplib.ErrNoLocation, jsonResponse.Status, jsonResponse.Message)
	case jsonResponse.Latitude == nil || jsonResponse.Longitude == nil:
		return result, fmt.Errorf("%w: no coordinates", maplib.ErrNoLocation)
	}

	result.IP = ipStr
	result.Latitude = *jsonResponse.Latitude
	result.Longitude = *jsonResponse.Longitude
	result.City = jsonResponse.City
	result.Region = jsonResponse.RegionName
	result.Country = jsonResponse.Country
	result.Org = jsonResponse.Org
	result.Service = NameIPAPI.Service()

	return result, nil
}

// NewIPAPI creates a provider for http://ip-api.com. Free tier works
// over plain HTTP only. Supported parameters: base_url.
func NewIPAPI(client maplib.HTTPClient, parameters map[string]string) maplib.Provider {
	return ipapiProvider{
		baseURL: baseURL(parameters, DefaultIPAPIBaseURL),
		client:  client,
	}
}
