package coach

import (
	"encoding/json"
	"fmt"
)

// ErrUpstreamUnavailable indicates the completion service was unreachable or
// returned an error. Never retried here.
type ErrUpstreamUnavailable struct {
	Err error
}

func (e *ErrUpstreamUnavailable) Error() string {
	return fmt.Sprintf("completion service unavailable: %v", e.Err)
}

func (e *ErrUpstreamUnavailable) Unwrap() error { return e.Err }

// ErrMalformedJSON indicates the extracted completion text does not parse as
// JSON at all.
type ErrMalformedJSON struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrMalformedJSON) Error() string {
	return fmt.Sprintf("model response is not valid JSON: %v", e.Err)
}

func (e *ErrMalformedJSON) Unwrap() error { return e.Err }

// ErrSchemaMismatch indicates parsed JSON that does not satisfy the target
// contract. Field names the first offending instance location.
type ErrSchemaMismatch struct {
	Contract string
	Field    string
	Err      error
}

func (e *ErrSchemaMismatch) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("model response does not match %s contract at %s: %v", e.Contract, e.Field, e.Err)
	}
	return fmt.Sprintf("model response does not match %s contract: %v", e.Contract, e.Err)
}

func (e *ErrSchemaMismatch) Unwrap() error { return e.Err }
