package maplib

import (
	"fmt"
	"strings"
)

// ProviderName identifies one of supported geolocation services. This
// set is closed: user input has to be parsed with ParseProviderName
// before it reaches Mapper.
type ProviderName string

const (
	// Identifier for ipinfo.io. Requires a token.
	ProviderIPInfo ProviderName = "ipinfo"

	// Identifier for ip-api.com. Free tier, plain HTTP only.
	ProviderIPAPI ProviderName = "ipapi"

	// Identifier for ipgeolocation.io. Requires an API key.
	ProviderIPGeolocation ProviderName = "ipgeolocation"
)

var providerNames = []ProviderName{
	ProviderIPAPI,
	ProviderIPInfo,
	ProviderIPGeolocation,
}

// ProviderNames returns all known providers in the order they are
// offered to a user.
func ProviderNames() []ProviderName {
	rv := make([]ProviderName, len(providerNames))
	copy(rv, providerNames)

	return rv
}

// Service returns a human readable name of the service. It is also
// used as a Record.Service value.
func (p ProviderName) Service() string {
	switch p {
	case ProviderIPInfo:
		return "ipinfo.io"
	case ProviderIPAPI:
		return "ip-api.com"
	case ProviderIPGeolocation:
		return "ipgeolocation.io"
	}

	return string(p)
}

// NeedsCredential tells if a service refuses to work without a token.
func (p ProviderName) NeedsCredential() bool {
	return p == ProviderIPInfo || p == ProviderIPGeolocation
}

func (p ProviderName) String() string {
	return string(p)
}

// ParseProviderName accepts both identifiers (ipinfo) and service
// names (ipinfo.io).
func ParseProviderName(value string) (ProviderName, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	for _, v := range providerNames {
		if value == string(v) || value == v.Service() {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownProvider, value)
}
