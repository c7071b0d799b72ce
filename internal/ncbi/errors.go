package ncbi

import (
	"errors"
	"fmt"
)

// FetchError reports a transport-level failure talking to an E-utilities
// endpoint: a connection problem, a non-2xx status or a response body that
// could not be decoded. It is always fatal to the current invocation.
type FetchError struct {
	Endpoint   string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err == nil:
		return fmt.Sprintf("NCBI returned HTTP %d for %s", e.StatusCode, e.Endpoint)
	case e.Err == nil:
		return fmt.Sprintf("request to %s failed", e.Endpoint)
	default:
		return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsFetchError reports whether err is or wraps a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
