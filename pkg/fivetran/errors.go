package fivetran

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ErrorKind classifies every failure the client can produce. The set is
// closed: callers switch on the kind to decide how to present the failure.
type ErrorKind string

const (
	// KindUnauthenticated covers missing credentials and 401/403 responses.
	KindUnauthenticated ErrorKind = "unauthenticated"
	// KindRemoteRejected covers any other non-2xx response from the API.
	KindRemoteRejected ErrorKind = "remote_rejected"
	// KindNetworkFailure covers dial errors, resets, and request timeouts.
	KindNetworkFailure ErrorKind = "network_failure"
	// KindMalformedResponse covers 2xx responses whose body does not match
	// the documented shape. Indicates an API contract mismatch.
	KindMalformedResponse ErrorKind = "malformed_response"
)

// APIError is the single error type returned by every client operation.
// StatusCode, Code, and Message carry the remote response verbatim when one
// was received.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Code       string // remote error code, e.g. "NotFound_Connector"
	Message    string
	Err        error // underlying transport or decode error, if any
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Code != "":
		return fmt.Sprintf("fivetran api error (%s, status %d): %s - %s", e.Kind, e.StatusCode, e.Code, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("fivetran api error (%s, status %d): %s", e.Kind, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("fivetran api error (%s): %s", e.Kind, e.Err.Error())
	default:
		return fmt.Sprintf("fivetran api error (%s): %s", e.Kind, e.Message)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AsAPIError checks if an error is an APIError and returns it
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthenticated reports whether err is an authentication failure.
func IsUnauthenticated(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == KindUnauthenticated
}

// IsNetworkFailure reports whether err is a connectivity problem rather than
// a rejection by the remote API.
func IsNetworkFailure(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == KindNetworkFailure
}

// errMissingCredentials is the fast-fail error for an unauthenticated session.
func errMissingCredentials() *APIError {
	return &APIError{
		Kind:    KindUnauthenticated,
		Message: "api key and api secret are required",
	}
}

// wrapTransportError classifies errors raised before any HTTP response was
// received. Everything at this layer is a connectivity problem; timeouts are
// called out in the message so the caller can suggest checking connectivity.
func wrapTransportError(err error) *APIError {
	msg := "request failed"

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		msg = "request timed out"
	case errors.As(err, &netErr) && netErr.Timeout():
		msg = "request timed out"
	}

	return &APIError{
		Kind:    KindNetworkFailure,
		Message: msg,
		Err:     err,
	}
}

// wrapDecodeError marks a 2xx response whose body could not be decoded.
func wrapDecodeError(err error) *APIError {
	return &APIError{
		Kind:    KindMalformedResponse,
		Message: "response body does not match expected shape",
		Err:     err,
	}
}

// wrapRemoteError builds the error for a non-2xx response, preserving the
// remote status code and, when the body carries the standard envelope, the
// remote error code and message verbatim.
func wrapRemoteError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Kind:       KindRemoteRejected,
		StatusCode: statusCode,
	}

	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		apiErr.Kind = KindUnauthenticated
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && (env.Code != "" || env.Message != "") {
		apiErr.Code = env.Code
		apiErr.Message = env.Message
		return apiErr
	}

	// Non-JSON error body (proxies, load balancers). Keep what we got.
	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}
