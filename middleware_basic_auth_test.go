package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type BasicAuthTestSuite struct {
	suite.Suite

	h    http.Handler
	resp *httptest.ResponseRecorder
}

func (suite *BasicAuthTestSuite) SetupTest() {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	suite.h = withBasicAuth(handler, configBasicAuth{User: "user", Password: "password"})
	suite.resp = httptest.NewRecorder()
}

func (suite *BasicAuthTestSuite) TestDisabled() {
	withBasicAuth(http.NotFoundHandler(), configBasicAuth{}).
		ServeHTTP(suite.resp, httptest.NewRequest("GET", "/", nil))

	suite.Equal(http.StatusNotFound, suite.resp.Code)
}

func (suite *BasicAuthTestSuite) TestNoCredentials() {
	suite.h.ServeHTTP(suite.resp, httptest.NewRequest("GET", "/", nil))

	suite.Equal(http.StatusUnauthorized, suite.resp.Code)
	suite.Equal(`Basic realm="ipmapper"`, suite.resp.Header().Get("WWW-Authenticate"))
}

func (suite *BasicAuthTestSuite) TestIncorrectPassword() {
	req := httptest.NewRequest("GET", "/", nil)

	req.SetBasicAuth("user", "pass")
	suite.h.ServeHTTP(suite.resp, req)

	suite.Equal(http.StatusUnauthorized, suite.resp.Code)
}

func (suite *BasicAuthTestSuite) TestOk() {
	req := httptest.NewRequest("GET", "/", nil)

	req.SetBasicAuth("user", "password")
	suite.h.ServeHTTP(suite.resp, req)

	suite.Equal(http.StatusTeapot, suite.resp.Code)
}

func TestBasicAuth(t *testing.T) {
	suite.Run(t, &BasicAuthTestSuite{})
}
