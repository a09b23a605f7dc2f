package rawhttp

import (
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"
)

// ReadExact issues a single blocking read for exactly ContentLength bytes
// into a freshly allocated buffer.
func (resp *Response) ReadExact() ([]byte, error) {
	buf := make([]byte, resp.ContentLength)
	if _, err := io.ReadFull(resp.r, buf); err != nil {
		return nil, fmt.Errorf("read %d body bytes: %w", resp.ContentLength, err)
	}
	return buf, nil
}

// ReadInto pre-allocates a ContentLength-sized buffer, then fills it in place
// from the socket. The fixture server never short-reads before closing, so
// any byte count other than ContentLength is an InvariantError.
func (resp *Response) ReadInto() ([]byte, error) {
	buf := make([]byte, resp.ContentLength)
	n, err := io.ReadFull(resp.r, buf)
	if n != resp.ContentLength {
		return nil, &InvariantError{Want: resp.ContentLength, Got: n, Err: err}
	}
	return buf, nil
}

// ReadUntilClose ignores the declared Content-Length and accumulates chunks
// into a pooled growing buffer until the peer closes the connection. It is
// the naive baseline quantifying the cost of size-blind accumulation.
func (resp *Response) ReadUntilClose() ([]byte, error) {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	if _, err := bb.ReadFrom(resp.r); err != nil {
		return nil, fmt.Errorf("read body until close: %w", err)
	}
	// The pooled buffer goes back on return, so the payload is copied out.
	data := make([]byte, len(bb.B))
	copy(data, bb.B)
	return data, nil
}
