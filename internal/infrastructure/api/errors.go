package api

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// RequestError describes a non-2xx remote API response with the most
// useful message the server supplied: a top-level message, an error
// string, or a field-validation summary.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

type errorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

func newRequestError(status int, raw []byte) *RequestError {
	var body errorBody
	_ = json.Unmarshal(raw, &body)

	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	if msg == "" && len(body.Errors) > 0 {
		fields := make([]string, 0, len(body.Errors))
		for field := range body.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			parts = append(parts, field+": "+body.Errors[field])
		}
		msg = strings.Join(parts, "; ")
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}

	return &RequestError{Status: status, Message: msg}
}
