package mercury

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from Mercury.
type APIError struct {
	StatusCode  int
	Message     string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("mercury: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("mercury: %d: %s: %s", e.StatusCode, e.Message, e.Description)
}

// AsAPIError unwraps err into an *APIError if it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

type errorBody struct {
	Message     string `json:"message"`
	Error       string `json:"error"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	Errors      *struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		apiErr.Message = firstNonEmpty(eb.Message, eb.Error)
		if eb.Errors != nil {
			apiErr.Message = firstNonEmpty(apiErr.Message, eb.Errors.Message)
		}
		apiErr.Description = firstNonEmpty(eb.Description, eb.Detail)
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	if apiErr.Message == "" {
		apiErr.Message = "Mercury API request failed"
	}
	if apiErr.Description == "" {
		apiErr.Description = strings.TrimSpace(string(body))
	}
	return apiErr
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
