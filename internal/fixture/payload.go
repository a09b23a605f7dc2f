// Package fixture generates the deterministic payloads served by the fixture
// server and reused by tests. The byte at absolute offset i is always
// byte(i % cycle), so payloads of the same size are identical across
// processes and runs.
package fixture

import "io"

// cycle is prime so the pattern never aligns with power-of-two buffer sizes.
const cycle = 251

// Bytes returns the deterministic payload of exactly n bytes.
func Bytes(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i % cycle)
	}
	return data
}

// Reader streams the same payload without materializing it, so arbitrarily
// large fixtures cost no allocation beyond the caller's read buffer.
type Reader struct {
	off       int
	remaining int
}

// NewReader returns a Reader that yields exactly n pattern bytes then io.EOF.
func NewReader(n int) *Reader {
	return &Reader{remaining: n}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.remaining <= 0 {
		return 0, io.EOF
	}
	n := len(p)
	if n > r.remaining {
		n = r.remaining
	}
	for i := 0; i < n; i++ {
		p[i] = byte((r.off + i) % cycle)
	}
	r.off += n
	r.remaining -= n
	return n, nil
}
