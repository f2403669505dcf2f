package providers

import (
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
)

type UtilsTestSuite struct {
	suite.Suite
}

func (suite *UtilsTestSuite) TestBaseURL() {
	suite.Equal("https://default", baseURL(nil, "https://default"))
	suite.Equal("https://default", baseURL(map[string]string{"base_url": "  "}, "https://default"))
	suite.Equal("http://localhost:8080", baseURL(map[string]string{"base_url": "http://localhost:8080//"}, "x"))
}

func (suite *UtilsTestSuite) TestIPv4String() {
	value, err := ipv4String(net.ParseIP("1.2.3.4"))

	suite.NoError(err)
	suite.Equal("1.2.3.4", value)

	_, err = ipv4String(net.ParseIP("::1"))

	suite.ErrorIs(err, ErrIncorrectIP)
}

func (suite *UtilsTestSuite) TestParseLocation() {
	lat, lon, err := parseLocation("36.7957, -76.0126")

	suite.NoError(err)
	suite.Equal(36.7957, lat)
	suite.Equal(-76.0126, lon)

	_, _, err = parseLocation("")

	suite.ErrorIs(err, ErrIncorrectLocation)

	_, _, err = parseLocation("a,1")

	suite.Error(err)
}

func (suite *UtilsTestSuite) TestParseCoordinate() {
	value, err := parseCoordinate(nil)

	suite.NoError(err)
	suite.Zero(value)

	value, err = parseCoordinate("12.5")

	suite.NoError(err)
	suite.Equal(12.5, value)

	value, err = parseCoordinate(float64(-3))

	suite.NoError(err)
	suite.Equal(-3.0, value)

	_, err = parseCoordinate("north")

	suite.Error(err)
}

func TestUtils(t *testing.T) {
	suite.Run(t, &UtilsTestSuite{})
}
