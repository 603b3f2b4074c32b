package camalapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is returned for any non-2xx response. Message is the envelope
// message as sent by the backend.
type HTTPError struct {
	Status  int
	Code    int
	Message string
	Body    []byte
}

func newHTTPError(status int, body []byte) *HTTPError {
	e := &HTTPError{Status: status, Code: status, Body: body}

	var env struct {
		Code    *int    `json:"code"`
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Message != nil {
		e.Message = *env.Message
		if env.Code != nil {
			e.Code = *env.Code
		}
		return e
	}
	e.Message = http.StatusText(status)
	return e
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("camal API status %d: %s", e.Status, e.Message)
}

// IsUnauthenticated reports a rejected or expired access token.
func (e *HTTPError) IsUnauthenticated() bool {
	return e.Status == http.StatusUnauthorized
}

// ConnectivityError is returned when the request never produced a response.
type ConnectivityError struct {
	Method string
	Path   string
	Err    error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("camal API %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// Message returns the text a user should see for err: the envelope message
// for HTTP errors, the raw error otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	var connErr *ConnectivityError
	if errors.As(err, &connErr) {
		return "the camal API is unreachable"
	}
	return err.Error()
}

// IsUnauthenticated reports whether err is a 401 from the API.
func IsUnauthenticated(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.IsUnauthenticated()
}
