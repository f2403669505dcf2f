package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/9seconds/ipmapper/maplib"
	"github.com/ipinfo/go/v2/ipinfo"
)

type ipinfoProvider struct {
	baseURL string
	client  maplib.HTTPClient
}

func (i ipinfoProvider) Name() maplib.ProviderName {
	return NameIPInfo
}

func (i ipinfoProvider) Lookup(ctx context.Context, ip net.IP, credential string) (maplib.Record, error) {
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

	jsonResponse := ipinfo.Core{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&jsonResponse); err != nil {
		return result, fmt.Errorf("cannot parse a response: %w", err)
	}

	latitude, longitude, err := parseLocation(jsonResponse.Location)
	if err != nil {
		return result, fmt.Errorf("%w: %v", maplib.ErrNoLocation, err)
	}

	result.IP = ipStr
	result.Latitude = latitude
	result.Longitude = longitude
	result.City = jsonResponse.City
	result.Region = jsonResponse.Region
	result.Country = jsonResponse.Country
	result.Org = jsonResponse.Org
	result.Service = NameIPInfo.Service()

	return result, nil
}

func (i ipinfoProvider) buildURL(ip, credential string) string {
	getQuery := url.Values{}

	getQuery.Set("token", credential)

	return i.baseURL + "/" + ip + "?" + getQuery.Encode()
}

// parseLocation splits "lat,lon" string.
func parseLocation(loc string) (float64, float64, error) {
	chunks := strings.Split(loc, ",")
	if len(chunks) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrIncorrectLocation, loc)
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(chunks[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("incorrect latitude: %w", err)
	}

	longitude, err := strconv.ParseFloat(strings.TrimSpace(chunks[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("incorrect longitude: %w", err)
	}

	return latitude, longitude, nil
}

// NewIPInfo creates a provider for https://ipinfo.io. A token is
// passed for each lookup. Supported parameters: base_url.
func NewIPInfo(client maplib.HTTPClient, parameters map[string]string) maplib.Provider {
	return ipinfoProvider{
		baseURL: baseURL(parameters, DefaultIPInfoBaseURL),
		client:  client,
	}
}
