package deepseek

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey indicates the required credential is not configured.
// It is detected before any network call is attempted.
var ErrMissingAPIKey = errors.New("DeepSeek API key is not configured (set DEEPSEEK_API_KEY or add it to config.toml)")

// RemoteError reports a non-success HTTP status from the generation
// endpoint, with the best-effort error body.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("DeepSeek API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("DeepSeek API error: status %d: %s", e.StatusCode, e.Body)
}

// ParseError reports a response body that did not contain the expected JSON
// shape.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("parse model response: %s", e.Reason)
	}
	return fmt.Sprintf("parse model response: %s: %v", e.Reason, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
