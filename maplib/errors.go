package maplib

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	// ErrCredentialRequired is returned by providers which cannot work
	// without a token if the token is empty. No request is made.
	ErrCredentialRequired = errors.New("valid API token is required")

	// ErrUnknownProvider is returned if nobody serves a given name.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrNoLocation is returned if a provider has responded but
	// response has no usable coordinates.
	ErrNoLocation = errors.New("provider has returned no location")

	// ErrInvalidEncoding is returned if uploaded content is not UTF-8.
	ErrInvalidEncoding = errors.New("content is not valid utf-8")

	// ErrNoIPs is a condition when a text has no public IP addresses.
	ErrNoIPs = errors.New("no valid IP addresses found in the file")

	// ErrNoData is a condition when no lookup has succeeded.
	ErrNoData = errors.New("no geolocation data found")
)

// TransportError is returned by HTTPClient if a request has failed on
// network level or a remote side has responded with a bad status.
type TransportError struct {
	StatusCode int
	Status     string
	Err        error
}

func (t *TransportError) Error() string {
	switch {
	case t.Err != nil:
		return t.Err.Error()
	case t.Status != "":
		return "netloc has responded with " + t.Status
	}

	return "transport error"
}

func (t *TransportError) Unwrap() error {
	return t.Err
}

// Outcome is a discriminated result of a single lookup.
type Outcome uint8

const (
	OutcomeLocated Outcome = iota
	OutcomeNoData
	OutcomeConfigError
	OutcomeTransportError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLocated:
		return "located"
	case OutcomeNoData:
		return "no_data"
	case OutcomeConfigError:
		return "config_error"
	}

	return "transport_error"
}

// Classify maps an error returned by Provider.Lookup to Outcome.
// Everything which is not explicitly known is a transport error.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeLocated
	case errors.Is(err, ErrCredentialRequired), errors.Is(err, ErrUnknownProvider):
		return OutcomeConfigError
	case errors.Is(err, ErrNoLocation):
		return OutcomeNoData
	}

	return OutcomeTransportError
}

type jsonHTTPError struct {
	Error struct {
		Message string `json:"message"`
		Context string `json:"context"`
	} `json:"error"`
}

type httpError struct {
	message    string
	err        error
	statusCode int
}

func (h *httpError) Message() string {
	if h == nil {
		return ""
	}

	return h.message
}

func (h *httpError) Err() string {
	if err := errors.Unwrap(h); err != nil {
		return err.Error()
	}

	return ""
}

func (h *httpError) StatusCode() int {
	if h != nil && h.statusCode != 0 {
		return h.statusCode
	}

	return http.StatusInternalServerError
}

func (h *httpError) Unwrap() error {
	if h == nil {
		return nil
	}

	return h.err
}

func (h *httpError) Error() string {
	switch {
	case h == nil:
		return ""
	case h.err != nil && h.message != "":
		return h.message + ": " + h.err.Error()
	case h.err != nil:
		return h.err.Error()
	}

	return h.message
}

func (h *httpError) MarshalJSON() ([]byte, error) {
	value := jsonHTTPError{}
	value.Error.Message = h.Message()
	value.Error.Context = h.Err()

	return json.Marshal(&value)
}
