package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/9seconds/ipmapper/maplib"
	"github.com/jarcoal/httpmock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

type RenderTestSuite struct {
	suite.Suite

	fs  afero.Fs
	out *bytes.Buffer
	log *logger
}

func (suite *RenderTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *RenderTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *RenderTestSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()
	suite.out = &bytes.Buffer{}
	suite.log = newLogger(io.Discard, false)

	httpmock.RegisterResponder("GET", maplib.DefaultSelfIPURL,
		httpmock.NewStringResponder(http.StatusOK, `{"ip": "203.0.113.5"}`))
	httpmock.RegisterResponder("GET", "http://ip-api.com/json/203.0.113.5",
		httpmock.NewStringResponder(http.StatusOK,
			`{"status": "success", "lat": 52.52, "lon": 13.405, "city": "Berlin", "country": "Germany"}`))
	httpmock.RegisterResponder("GET", "http://ip-api.com/json/8.8.8.8",
		httpmock.NewStringResponder(http.StatusOK,
			`{"status": "success", "lat": 39.03, "lon": -77.5, "city": "Ashburn", "country": "United States"}`))

	suite.NoError(afero.WriteFile(suite.fs, "/var/log/auth.log",
		[]byte("Failed password for root from 8.8.8.8 port 22\nAccepted key from 10.0.0.4\n"),
		0o644))
}

func (suite *RenderTestSuite) TearDownTest() {
	httpmock.Reset()
}

func (suite *RenderTestSuite) render(opts renderOpts) error {
	return runRender(context.Background(), suite.fs, suite.out, defaultConfig(), suite.log, opts)
}

func (suite *RenderTestSuite) TestStdout() {
	err := suite.render(renderOpts{
		provider: "ipapi",
		logPath:  "/var/log/auth.log",
	})

	suite.NoError(err)
	suite.Contains(suite.out.String(), `id="map"`)
	suite.Contains(suite.out.String(), "8.8.8.8")
	suite.Contains(suite.out.String(), "203.0.113.5")
	suite.Contains(suite.out.String(), "auth.log")
	suite.NotContains(suite.out.String(), "<form")
}

func (suite *RenderTestSuite) TestOutputFile() {
	err := suite.render(renderOpts{
		provider: "ipapi",
		logPath:  "/var/log/auth.log",
		output:   "/tmp/map.html",
	})

	suite.NoError(err)
	suite.Empty(suite.out.String())

	content, err := afero.ReadFile(suite.fs, "/tmp/map.html")

	suite.NoError(err)
	suite.Contains(string(content), "8.8.8.8")
}

func (suite *RenderTestSuite) TestNoIPs() {
	suite.NoError(afero.WriteFile(suite.fs, "/var/log/empty.log", []byte("127.0.0.1\n"), 0o644))

	err := suite.render(renderOpts{
		provider: "ipapi",
		logPath:  "/var/log/empty.log",
	})

	suite.ErrorIs(err, maplib.ErrNoIPs)
	suite.Empty(suite.out.String())
}

func (suite *RenderTestSuite) TestNoToken() {
	err := suite.render(renderOpts{
		provider: "ipinfo",
		logPath:  "/var/log/auth.log",
	})

	suite.ErrorIs(err, maplib.ErrNoData)
	suite.Equal(0, httpmock.GetCallCountInfo()["GET https://ipinfo.io/8.8.8.8"])
}

func (suite *RenderTestSuite) TestAbsentLog() {
	err := suite.render(renderOpts{
		provider: "ipapi",
		logPath:  "/var/log/absent.log",
	})

	suite.Error(err)
}

func TestRender(t *testing.T) {
	suite.Run(t, &RenderTestSuite{})
}
