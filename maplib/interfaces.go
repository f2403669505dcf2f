package maplib

import (
	"context"
	"net"
	"net/http"
	"time"
)

// Provider is a geolocation service. Lookup performs at most one
// outbound request and returns ErrCredentialRequired without any
// request if the service needs a credential but got an empty one.
type Provider interface {
	Name() ProviderName
	Lookup(ctx context.Context, ip net.IP, credential string) (Record, error)
}

// HTTPClient is what providers use to talk to the outer world.
// Anything compatible with *http.Client works.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

type Logger interface {
	LookupError(ip net.IP, name ProviderName, err error)
	LookupSkipped(ip net.IP, name ProviderName, err error)
	SelfLocateError(err error)
	ExtractError(err error)
	RenderError(err error)
	RequestServed(req *http.Request, status, size int, elapsed time.Duration)
}
