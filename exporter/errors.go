package exporter

import (
	"errors"

	"github.com/Aleph-Alpha/langfuse-otel/auth"
	"github.com/Aleph-Alpha/langfuse-otel/endpoint"
)

// Resolution errors. All of them are returned from Build; none occurs
// later during export.
var (
	// ErrInvalidEndpoint is returned when the composed endpoint is not a
	// valid absolute URL.
	ErrInvalidEndpoint = endpoint.ErrInvalidEndpoint

	// ErrMissingCredentials is returned when no credential source yields
	// a usable Authorization value.
	ErrMissingCredentials = auth.ErrMissingCredentials

	// ErrInvalidTimeout is returned for non-numeric or non-positive
	// timeout values.
	ErrInvalidTimeout = errors.New("exporter: invalid timeout")

	// ErrUnsupportedCompression is returned when a compression kind
	// other than "none" or "gzip" is requested.
	ErrUnsupportedCompression = errors.New("exporter: unsupported compression")

	// ErrNoHTTPClient is returned if transport construction is ever
	// reached without an HTTP client. Build provisions a default client,
	// so this should be unreachable.
	ErrNoHTTPClient = errors.New("exporter: no HTTP client configured")
)

// IsInvalidEndpointError checks if the error is an invalid-endpoint error.
func IsInvalidEndpointError(err error) bool {
	return errors.Is(err, ErrInvalidEndpoint)
}

// IsMissingCredentialsError checks if the error is a missing-credentials
// error.
func IsMissingCredentialsError(err error) bool {
	return errors.Is(err, ErrMissingCredentials)
}

// IsInvalidTimeoutError checks if the error is an invalid-timeout error.
func IsInvalidTimeoutError(err error) bool {
	return errors.Is(err, ErrInvalidTimeout)
}
