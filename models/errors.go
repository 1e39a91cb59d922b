package models

import "fmt"

// Error codes for upstream fetch failures.
const (
	ErrCodeTimeout        = "FETCH_TIMEOUT"
	ErrCodeFetch          = "FETCH_FAILED"
	ErrCodeUpstreamStatus = "UPSTREAM_STATUS"
	ErrCodeNotHTML        = "NOT_HTML"
	ErrCodeParse          = "PARSE_FAILED"
)

// ErrorBody is the single-key sentinel returned in place of section fields.
// Clients tell it apart from a success body by the presence of "error".
type ErrorBody struct {
	Error string `json:"error"`
}

// FetchError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type FetchError struct {
	Code string
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.URL, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.URL)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError.
func NewFetchError(code, url string, err error) *FetchError {
	return &FetchError{Code: code, URL: url, Err: err}
}
