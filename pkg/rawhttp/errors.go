package rawhttp

import (
	"errors"
	"fmt"
)

// ErrMissingContentLength is returned when the response header block ends
// without a Content-Length header. The fixture server always sends one, so
// hitting this means the benchmark is pointed at the wrong endpoint.
var ErrMissingContentLength = errors.New("no Content-Length header in response")

// InvariantError reports a body read that delivered a different byte count
// than the declared Content-Length. It signals a strategy bug, not a
// recoverable transport condition.
type InvariantError struct {
	Want int
	Got  int
	Err  error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("body read returned %d bytes, Content-Length declared %d", e.Got, e.Want)
}

func (e *InvariantError) Unwrap() error { return e.Err }
