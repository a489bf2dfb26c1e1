package marvel

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/chronoarc/marvel-go/internal/models"
	"github.com/chronoarc/marvel-go/internal/parser"
)

// APIError is the body of a non-success response. It is wrapped in an
// *Error of type api; use errors.As to reach it.
type APIError struct {
	StatusCode int
	// Code is the API's own error code, e.g. "InvalidCredentials" or "409".
	Code    string
	Status  string
	Message string

	RawBody []byte
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Status
	}
	if e.Code != "" {
		return fmt.Sprintf("http %d: %s (code %s)", e.StatusCode, msg, e.Code)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, msg)
}

// newAPIError reads code, status and message from a JSON error body. Bodies
// that are not JSON objects only keep the status code and raw bytes.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, RawBody: body}

	ir, err := parser.ParseBytes(body)
	if err != nil {
		return apiErr
	}
	fields, ok := models.AsObject(ir.Root)
	if !ok {
		return apiErr
	}
	apiErr.Code = cast.ToString(fields["code"])
	apiErr.Status = cast.ToString(fields["status"])
	apiErr.Message = cast.ToString(fields["message"])
	return apiErr
}
