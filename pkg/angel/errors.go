package angel

import (
	"errors"
	"fmt"
)

// ErrEndOfInput is returned by Read when the input is exhausted before any
// token character was seen. No default token is substituted.
var ErrEndOfInput = errors.New("angel: end of input")

// IOError reports a failure of the underlying input or output stream.
// The runtime never retries; recovery policy belongs to the caller.
type IOError struct {
	// Op is the operation that failed: "print", "prompt", "read" or "split".
	Op string
	// Err is the underlying error.
	Err error
}

// Error returns the operation and the underlying error.
func (e *IOError) Error() string {
	return fmt.Sprintf("angel: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}
