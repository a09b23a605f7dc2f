// Package checksum guards against a strategy silently returning truncated or
// corrupted data. Expected digests are keyed by exact payload size; both an
// unknown size and a mismatch are diagnostics, never failures, because the
// benchmark's product is timing data.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Table maps exact payload byte counts to hex-encoded SHA-256 digests.
type Table map[int]string

// defaultTable covers the standard fixture sizes. Compiled in, never mutated.
var defaultTable = Table{
	1_000_128:     "fa82243e0db587af04504f5d3229ff7227f574f8f938edaad8be8e168bc2bc87",
	10_000_128:    "128ceaac08362426bb7271ed6202d11c6830587a415bd7868359725c22d2fe88",
	1_000_000_128: "d699e2c306b897609be6222315366b25137778e18f8634c75b006cef50647978",
}

// DefaultTable returns the compiled-in fixture digests.
func DefaultTable() Table {
	return defaultTable
}

// Diagnostic classifies the outcome of a verification.
type Diagnostic int

const (
	// DigestMatch means the payload hashed to the expected digest.
	DigestMatch Diagnostic = iota
	// UnknownSize means no digest is on record for the payload's size.
	UnknownSize
	// DigestMismatch means the payload hashed to something else.
	DigestMismatch
)

// Verify hashes data and compares it against the table entry for its exact
// size. The detail string is human-readable and empty on a match.
func (t Table) Verify(data []byte) (Diagnostic, string) {
	want, ok := t[len(data)]
	if !ok {
		return UnknownSize, fmt.Sprintf("no checksum found for size %d", len(data))
	}

	sum := sha256.Sum256(data)
	got := hex.EncodeToString(sum[:])
	if !strings.EqualFold(got, want) {
		return DigestMismatch, fmt.Sprintf("checksum mismatch (%s != %s)", got, want)
	}
	return DigestMatch, ""
}
