package providers

import "github.com/9seconds/ipmapper/maplib"

const (
	// Identifier for ipinfo.io.
	NameIPInfo = maplib.ProviderIPInfo

	// Identifier for ip-api.com.
	NameIPAPI = maplib.ProviderIPAPI

	// Identifier for ipgeolocation.io.
	NameIPGeolocation = maplib.ProviderIPGeolocation
)

const (
	DefaultIPInfoBaseURL        = "https://ipinfo.io"
	DefaultIPAPIBaseURL         = "http://ip-api.com"
	DefaultIPGeolocationBaseURL = "https://api.ipgeolocation.io"
)
