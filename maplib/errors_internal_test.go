package maplib

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type HTTPErrorTestSuite struct {
	suite.Suite

	e *httpError
}

func (suite *HTTPErrorTestSuite) SetupTest() {
	suite.e = &httpError{}
}

func (suite *HTTPErrorTestSuite) TestNil() {
	var err *httpError

	suite.Equal("", err.Message())
	suite.Equal(http.StatusInternalServerError, err.StatusCode())
	suite.Nil(err.Unwrap())
	suite.Equal("", err.Error())
}

func (suite *HTTPErrorTestSuite) TestStatusCode() {
	suite.Equal(http.StatusInternalServerError, suite.e.StatusCode())

	suite.e.statusCode = http.StatusBadRequest

	suite.Equal(http.StatusBadRequest, suite.e.StatusCode())
}

func (suite *HTTPErrorTestSuite) TestError() {
	suite.EqualError(suite.e, "")

	suite.e.message = "message"

	suite.EqualError(suite.e, "message")

	suite.e.message = ""
	suite.e.err = io.EOF

	suite.EqualError(suite.e, "EOF")
	suite.ErrorIs(suite.e, io.EOF)

	suite.e.message = "msg"

	suite.EqualError(suite.e, "msg: EOF")
}

func (suite *HTTPErrorTestSuite) TestJSON() {
	data, err := json.Marshal(suite.e)

	suite.NoError(err)
	suite.JSONEq(`{"error": {"message": "", "context": ""}}`, string(data))

	suite.e.message = "Msg"
	suite.e.err = io.EOF
	data, err = json.Marshal(suite.e)

	suite.NoError(err)
	suite.JSONEq(`{"error": {"message": "Msg", "context": "EOF"}}`, string(data))
}

func TestHTTPError(t *testing.T) {
	suite.Run(t, &HTTPErrorTestSuite{})
}

type ClassifyTestSuite struct {
	suite.Suite
}

func (suite *ClassifyTestSuite) TestLocated() {
	suite.Equal(OutcomeLocated, Classify(nil))
}

func (suite *ClassifyTestSuite) TestConfigError() {
	suite.Equal(OutcomeConfigError, Classify(ErrCredentialRequired))
	suite.Equal(OutcomeConfigError, Classify(fmt.Errorf("wrapped: %w", ErrUnknownProvider)))
}

func (suite *ClassifyTestSuite) TestNoData() {
	suite.Equal(OutcomeNoData, Classify(fmt.Errorf("%w: empty loc", ErrNoLocation)))
}

func (suite *ClassifyTestSuite) TestTransportError() {
	suite.Equal(OutcomeTransportError, Classify(&TransportError{StatusCode: http.StatusForbidden}))
	suite.Equal(OutcomeTransportError, Classify(io.ErrUnexpectedEOF))
}

func (suite *ClassifyTestSuite) TestOutcomeNames() {
	suite.Equal("located", OutcomeLocated.String())
	suite.Equal("no_data", OutcomeNoData.String())
	suite.Equal("config_error", OutcomeConfigError.String())
	suite.Equal("transport_error", OutcomeTransportError.String())
}

func TestClassify(t *testing.T) {
	suite.Run(t, &ClassifyTestSuite{})
}

type TransportErrorTestSuite struct {
	suite.Suite
}

func (suite *TransportErrorTestSuite) TestStatus() {
	err := &TransportError{StatusCode: http.StatusForbidden, Status: "403 Forbidden"}

	suite.EqualError(err, "netloc has responded with 403 Forbidden")
	suite.Nil(errors.Unwrap(err))
}

func (suite *TransportErrorTestSuite) TestWrapped() {
	err := &TransportError{Err: io.EOF}

	suite.EqualError(err, "EOF")
	suite.ErrorIs(err, io.EOF)
}

func (suite *TransportErrorTestSuite) TestEmpty() {
	suite.EqualError(&TransportError{}, "transport error")
}

func TestTransportError(t *testing.T) {
	suite.Run(t, &TransportErrorTestSuite{})
}
