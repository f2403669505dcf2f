package maplib

import (
	"strings"

	"github.com/pariz/gountries"
)

var countryCodeQuery = gountries.New()

// NormalizeAlpha2Code returns a normalized 2-letter ISO3166 code.
// Normalized code is uppercased with some additional mapping. For
// example, some services return ZZ as 'unknown' country. This function
// returns "" instead. Anything which is not 2 letters long is not
// a code at all and "" is returned as well.
func NormalizeAlpha2Code(alpha2 string) string {
	alpha2 = strings.ToUpper(strings.TrimSpace(alpha2))

	if len(alpha2) != 2 {
		return ""
	}

	switch alpha2 {
	case "ZZ", "AP", "EU":
		return ""
	case "YU":
		return "CS"
	case "FX":
		return "FR"
	case "UK":
		return "GB"
	default:
		return alpha2
	}
}

// CountryName returns a common name of the country if a given value is
// a known 2-letter ISO3166 code. ipinfo.io responds with codes, other
// services respond with names, so names are returned as is.
func CountryName(country string) string {
	code := NormalizeAlpha2Code(country)
	if code == "" {
		return country
	}

	details, err := countryCodeQuery.FindCountryByAlpha(code)
	if err != nil || details.Name.Common == "" {
		return country
	}

	return details.Name.Common
}
