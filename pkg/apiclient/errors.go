package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ErrorData is the structured error payload the PressGraph API returns on
// non-2xx responses.
type ErrorData struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

// APIError is the typed failure for HTTP-layer outcomes: non-2xx responses
// and client-side request timeouts. Transport failures (DNS, connection
// refused) are never wrapped in an APIError and propagate as plain errors.
type APIError struct {
	// Status is the HTTP status code, or 408 for a client-side timeout.
	Status int
	// Response is the raw response; nil when the request timed out.
	Response *resty.Response
	// Data is the parsed error payload; nil when the body was not JSON.
	Data *ErrorData

	message string
	timeout bool
}

func (e *APIError) Error() string { return e.message }

// IsTimeout reports whether this failure came from the client-side request
// timeout rather than a server response. A genuine server-returned 408
// carries a Response and reports false.
func (e *APIError) IsTimeout() bool { return e.timeout }

// newStatusError builds the typed failure for a non-2xx response, preferring
// the response's structured payload and falling back to the status text, or
// a generic string for status codes with no registered text.
func newStatusError(resp *resty.Response) *APIError {
	code := resp.StatusCode()

	msg := http.StatusText(code)
	if msg == "" {
		msg = fmt.Sprintf("HTTP error! status: %d", code)
	}

	data := parseErrorBody(resp.Body())
	if data != nil && data.Message != "" {
		msg = data.Message
	}

	return &APIError{
		Status:   code,
		Response: resp,
		Data:     data,
		message:  msg,
	}
}

// parseErrorBody attempts to read a structured {message, details} payload
// out of an error response body. Returns nil when the body is not JSON.
func parseErrorBody(body []byte) *ErrorData {
	var data ErrorData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil
	}
	return &data
}

// newTimeoutError classifies a client-side abort as a 408 so callers get a
// status either way; the fixed message is the only marker distinguishing it
// from a server-returned 408.
func newTimeoutError() *APIError {
	return &APIError{
		Status:  http.StatusRequestTimeout,
		message: "Request timeout",
		timeout: true,
	}
}
