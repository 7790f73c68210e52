package cms

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"staydrive/internal/domain"
)

// APIError is a non-2xx answer from the CMS.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Name    string
	Message string
}

func (e *APIError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("cms: %s %s: %d %s: %s", e.Method, e.Path, e.Status, e.Name, e.Message)
	}
	return fmt.Sprintf("cms: %s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

// Is lets callers match a missing record with errors.Is(err, domain.ErrRecordNotFound).
func (e *APIError) Is(target error) bool {
	return target == domain.ErrRecordNotFound && e.Status == http.StatusNotFound
}

type errorBody struct {
	Error struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}

func newAPIError(method, path string, status int, raw []byte) *APIError {
	e := &APIError{Method: method, Path: path, Status: status, Message: http.StatusText(status)}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		e.Name = body.Error.Name
		e.Message = body.Error.Message
	}
	return e
}

// IsNotFound reports whether err is a CMS 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
