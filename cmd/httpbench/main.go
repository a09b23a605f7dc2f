package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/loadlab-io/httpbench/internal/app"
	"github.com/loadlab-io/httpbench/internal/config"
	"github.com/loadlab-io/httpbench/internal/logger"
	"github.com/loadlab-io/httpbench/pkg/methods"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "httpbench: %v\n", err)
		var nf *methods.NotFoundError
		if errors.As(err, &nf) || errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: httpbench [--passes N] [--csv] <method> <url>")

func run() error {
	passes := pflag.Int("passes", 5, "number of timed passes per method")
	csvOut := pflag.Bool("csv", false, "emit CSV instead of human-readable output")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	b, err := app.New(cfg, log, app.Options{
		Passes: *passes,
		CSV:    *csvOut,
		Out:    os.Stdout,
	})
	if err != nil {
		return err
	}

	args := pflag.Args()
	if len(args) != 2 {
		return fmt.Errorf("%w\n  method: %q or one of: %s",
			errUsage, "all", strings.Join(b.MethodNames(), ", "))
	}

	return b.Run(args[0], args[1])
}
