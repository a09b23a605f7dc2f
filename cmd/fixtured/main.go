// Command fixtured is the local test server the benchmark points at. It
// serves deterministic payloads of any requested size at /data/<bytes> with
// an exact Content-Length, so every body-retrieval strategy sees identical
// input. Bodies are streamed, so gigabyte fixtures cost no allocation.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/valyala/fasthttp"
	"github.com/valyala/tcplisten"

	"github.com/loadlab-io/httpbench/internal/fixture"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fixtured: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	listen := pflag.String("listen", "127.0.0.1:8123", "address to listen on")
	pflag.Parse()

	cfg := tcplisten.Config{}
	ln, err := cfg.NewListener("tcp4", *listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", *listen, err)
	}

	fmt.Fprintf(os.Stderr, "fixtured serving /data/<bytes> on %s\n", *listen)
	return fasthttp.Serve(ln, handle)
}

func handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	rest, ok := strings.CutPrefix(path, "/data/")
	if !ok {
		ctx.Error("not found; use /data/<bytes>", fasthttp.StatusNotFound)
		return
	}

	size, err := strconv.Atoi(rest)
	if err != nil || size < 0 {
		ctx.Error("size must be a non-negative integer", fasthttp.StatusBadRequest)
		return
	}

	ctx.SetContentType("application/octet-stream")
	ctx.SetBodyStream(fixture.NewReader(size), size)
}
