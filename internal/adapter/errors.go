package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRequestFailed means no response was received (DNS, connect,
	// reset, timeout, cancelled context).
	ErrRequestFailed = errors.New("request failed")

	// ErrUnexpectedStatus means the endpoint answered with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrMalformedResponse means the body could not be decoded into the
	// expected shape.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrRemoteFailure means the endpoint answered with success=false.
	ErrRemoteFailure = errors.New("endpoint reported failure")

	// ErrOrderNotFound is returned by LookupOrder for unknown orders.
	ErrOrderNotFound = errors.New("order not found")
)

// StatusError is returned for non-2xx answers. Message and Code are taken
// from a JSON error body when the endpoint sent one; otherwise Message holds
// the trimmed raw body.
type StatusError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %d %s", ErrUnexpectedStatus, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// RemoteFailure is returned when a 2xx answer carries success=false.
type RemoteFailure struct {
	Message string
	Code    string
}

func (e *RemoteFailure) Error() string {
	return ErrRemoteFailure.Error()
}

func (e *RemoteFailure) Unwrap() error {
	return ErrRemoteFailure
}
