package methods

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/valyala/fasthttp"

	"github.com/loadlab-io/httpbench/pkg/rawhttp"
)

// Options carries the knobs the built-in strategies need.
type Options struct {
	// UserAgent is sent by the raw-socket strategies.
	UserAgent string
}

// DefaultRegistry builds and freezes the standard strategy roster. Every
// strategy constructs its client from scratch per invocation: the benchmark
// measures cold-path cost, so no connection or client state may be reused
// across passes.
func DefaultRegistry(caps CapabilitySet, opts Options) *Registry {
	r := NewRegistry(caps)

	r.Register("socket-read", nil, socketRead(opts.UserAgent))
	r.Register("socket-readinto", nil, socketReadInto(opts.UserAgent))
	r.Register("socket-readall", nil, socketReadAll(opts.UserAgent))
	r.Register("nethttp", nil, netHTTP)
	r.Register("nethttp-na", nil, netHTTPNaive)
	r.Register("resty", []string{CapResty}, restyGet)
	r.Register("fasthttp", []string{CapFasthttp}, fasthttpGet)

	r.Freeze()
	return r
}

func socketRead(userAgent string) Func {
	return func(url string) ([]byte, error) {
		resp, err := rawhttp.Get(url, userAgent)
		if err != nil {
			return nil, err
		}
		defer resp.Close()
		return resp.ReadExact()
	}
}

func socketReadInto(userAgent string) Func {
	return func(url string) ([]byte, error) {
		resp, err := rawhttp.Get(url, userAgent)
		if err != nil {
			return nil, err
		}
		defer resp.Close()
		return resp.ReadInto()
	}
}

func socketReadAll(userAgent string) Func {
	return func(url string) ([]byte, error) {
		resp, err := rawhttp.Get(url, userAgent)
		if err != nil {
			return nil, err
		}
		defer resp.Close()
		return resp.ReadUntilClose()
	}
}

// coldClient returns a stock client with a fresh transport so every
// invocation dials a new connection.
func coldClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{DisableKeepAlives: true},
	}
}

// netHTTP reads exactly ContentLength bytes from the stock client's body.
func netHTTP(url string) ([]byte, error) {
	resp, err := coldClient().Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.ContentLength < 0 {
		return io.ReadAll(resp.Body)
	}
	buf := make([]byte, resp.ContentLength)
	if _, err := io.ReadFull(resp.Body, buf); err != nil {
		return nil, fmt.Errorf("read %d body bytes: %w", resp.ContentLength, err)
	}
	return buf, nil
}

// netHTTPNaive ignores ContentLength and reads the body to EOF.
func netHTTPNaive(url string) ([]byte, error) {
	resp, err := coldClient().Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func restyGet(url string) ([]byte, error) {
	return runIsolated(func() ([]byte, error) {
		resp, err := resty.New().R().Get(url)
		if err != nil {
			return nil, err
		}
		return resp.Body(), nil
	})
}

func fasthttpGet(url string) ([]byte, error) {
	return runIsolated(func() ([]byte, error) {
		client := &fasthttp.Client{Name: "httpbench"}

		req := fasthttp.AcquireRequest()
		defer fasthttp.ReleaseRequest(req)
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseResponse(resp)

		req.Header.SetMethod(fasthttp.MethodGet)
		req.SetRequestURI(url)
		if err := client.Do(req, resp); err != nil {
			return nil, err
		}
		// The response buffer is pooled, so the body is copied out.
		body := append([]byte(nil), resp.Body()...)
		return body, nil
	})
}
