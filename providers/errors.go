package providers

import "errors"

var (
	// ErrIncorrectIP is returned if a given IP is not IPv4.
	ErrIncorrectIP = errors.New("incorrect ipv4 address")

	// ErrIncorrectLocation is returned if a location string cannot be
	// split into latitude and longitude.
	ErrIncorrectLocation = errors.New("incorrect location")
)
