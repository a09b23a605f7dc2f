package app

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/loadlab-io/httpbench/internal/config"
	"github.com/loadlab-io/httpbench/internal/fixture"
	"github.com/loadlab-io/httpbench/internal/logger"
	"github.com/loadlab-io/httpbench/pkg/methods"
)

func testConfig() *config.Config {
	return &config.Config{
		AppName:   "httpbench",
		LogLevel:  "warn",
		UserAgent: "httpbench-test",
	}
}

// startFixtureServer serves the deterministic payload with an explicit
// Content-Length, the contract every strategy depends on.
func startFixtureServer(t *testing.T, size int) *httptest.Server {
	t.Helper()
	body := fixture.Bytes(size)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunUnknownMethod(t *testing.T) {
	var out bytes.Buffer
	b, err := New(testConfig(), logger.NopLogger{}, Options{Passes: 5, Out: &out})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = b.Run("bogus", "http://127.0.0.1:1/data")
	var nf *methods.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Run error = %v, want *methods.NotFoundError", err)
	}
	if len(nf.Known) == 0 {
		t.Fatalf("NotFoundError carries no known names")
	}
	if out.Len() != 0 {
		t.Fatalf("output written despite configuration error: %q", out.String())
	}
}

func TestRunTooFewPasses(t *testing.T) {
	srv := startFixtureServer(t, 1024)
	var out bytes.Buffer
	b, err := New(testConfig(), logger.NopLogger{}, Options{Passes: 1, Out: &out})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Run("socket-read", srv.URL+"/data"); err == nil {
		t.Fatalf("Run with passes=1 succeeded, want configuration error")
	}
}

func TestRunSocketReadEndToEnd(t *testing.T) {
	const size = 1_000_128
	srv := startFixtureServer(t, size)

	var out bytes.Buffer
	b, err := New(testConfig(), logger.NopLogger{}, Options{Passes: 5, CSV: true, Out: &out})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Run("socket-read", srv.URL+"/data"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out.Bytes())).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d csv records, want header + 1 row", len(records))
	}
	if got := records[0]; got[0] != "Python" || got[1] != "Method" {
		t.Fatalf("unexpected header: %v", got)
	}
	row := records[1]
	if row[1] != "socket-read" {
		t.Fatalf("method column = %q", row[1])
	}
	if row[2] != strconv.Itoa(size) {
		t.Fatalf("size column = %q, want %d", row[2], size)
	}
	mean, err := strconv.ParseFloat(row[3], 64)
	if err != nil || mean <= 0 {
		t.Fatalf("mean column = %q (parsed %v, %v)", row[3], mean, err)
	}
}

func TestRunAllCoversEveryMethod(t *testing.T) {
	srv := startFixtureServer(t, 64_000)

	var out bytes.Buffer
	b, err := New(testConfig(), logger.NopLogger{}, Options{Passes: 2, CSV: true, Out: &out})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Run("all", srv.URL+"/data"); err != nil {
		t.Fatalf("Run all: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out.Bytes())).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	names := b.MethodNames()
	if len(records) != len(names)+1 {
		t.Fatalf("got %d rows, want %d methods + header", len(records)-1, len(names))
	}
	for i, name := range names {
		row := records[i+1]
		if row[1] != name {
			t.Fatalf("row %d method = %q, want %q", i, row[1], name)
		}
		if row[2] != "64000" {
			t.Fatalf("method %s size = %q, want 64000", name, row[2])
		}
	}
}

func TestDisabledCapabilityShrinksRoster(t *testing.T) {
	cfg := testConfig()
	cfg.DisabledCapabilities = []string{methods.CapResty, methods.CapFasthttp}

	var out bytes.Buffer
	b, err := New(cfg, logger.NopLogger{}, Options{Passes: 2, Out: &out})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, name := range b.MethodNames() {
		if name == "resty" || name == "fasthttp" {
			t.Fatalf("disabled method %q still registered", name)
		}
	}
}
