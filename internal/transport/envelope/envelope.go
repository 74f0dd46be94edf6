// Package envelope writes the JSON response wrapper shared by every endpoint.
package envelope

import (
	"encoding/json"
	"net/http"
	"time"
)

// Response is the wrapper around every JSON body the API returns.
type Response struct {
	Success   bool         `json:"success"`
	Data      any          `json:"data,omitempty"`
	Message   string       `json:"message,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// FieldError is one field-level problem in an error response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Standard messages for responses that must not leak detail.
const (
	MsgInternal     = "An error occurred while processing your request."
	MsgUnauthorized = "You are not authorized to perform this action."
	MsgValidation   = "Validation failed. See Errors for details."
)

// now is replaced in tests.
var now = time.Now

// Write encodes resp with status. The timestamp is always set here.
func Write(w http.ResponseWriter, status int, resp Response) {
	resp.Timestamp = now().UTC()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp) //nolint:errcheck
}

// OK writes a success response carrying data and an optional message.
func OK(w http.ResponseWriter, status int, data any, message string) {
	Write(w, status, Response{Success: true, Data: data, Message: message})
}

// Fail writes an error response.
func Fail(w http.ResponseWriter, status int, message string, errs ...FieldError) {
	Write(w, status, Response{Success: false, Message: message, Errors: errs})
}
