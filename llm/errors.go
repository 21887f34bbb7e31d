package llm

import (
	"encoding/json"
	"fmt"
)

// ErrRateLimited indicates the provider returned 429.
type ErrRateLimited struct {
	Err error
}

func (e *ErrRateLimited) Error() string { return fmt.Sprintf("rate limited: %v", e.Err) }
func (e *ErrRateLimited) Unwrap() error { return e.Err }

// ErrUnavailable indicates the provider is down, unreachable or failed in a
// way the caller cannot distinguish further.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider unavailable: %v", e.Err)
	}
	return "provider unavailable"
}
func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrBadResponse indicates the model returned content that is not valid
// JSON or does not conform to the requested schema.
type ErrBadResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrBadResponse) Error() string { return fmt.Sprintf("bad model response: %v", e.Err) }
func (e *ErrBadResponse) Unwrap() error { return e.Err }
