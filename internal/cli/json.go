package cli

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/edvin/minio-lite-admin/internal/adminclient"
)

// JSONEnvelope wraps command output in a consistent structure for machine
// parsing. All --json output uses this envelope.
type JSONEnvelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *JSONError `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigInvalid = "CONFIG_INVALID"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAPI           = "API_ERROR"
	ErrCodeUnreachable   = "API_UNREACHABLE"
	ErrCodeUnknown       = "UNKNOWN"
)

// usageError marks errors caused by bad flags or arguments.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// configError marks errors loading or validating configuration.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data any) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: true, Data: data})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{Success: false, Error: ErrorToJSON(err)})
}

func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with a machine-readable
// code.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	var statusErr *adminclient.StatusError
	var usageErr *usageError
	var cfgErr *configError
	switch {
	case errors.As(err, &statusErr):
		code := ErrCodeAPI
		switch statusErr.Code {
		case http.StatusBadRequest:
			code = ErrCodeInvalidInput
		case http.StatusNotFound:
			code = ErrCodeNotFound
		}
		return &JSONError{Code: code, Message: err.Error(), Status: statusErr.Code}
	case errors.As(err, &usageErr):
		return &JSONError{Code: ErrCodeInvalidInput, Message: err.Error()}
	case errors.As(err, &cfgErr):
		return &JSONError{Code: ErrCodeConfigInvalid, Message: err.Error()}
	case isTransportError(err):
		return &JSONError{Code: ErrCodeUnreachable, Message: err.Error()}
	}
	return &JSONError{Code: ErrCodeUnknown, Message: err.Error()}
}

func isTransportError(err error) bool {
	var urlErr interface{ Timeout() bool }
	return errors.As(err, &urlErr)
}
