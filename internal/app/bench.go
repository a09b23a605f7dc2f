// Package app wires the registry, harness, validator and report writers into
// a single benchmark run.
package app

import (
	"fmt"
	"io"
	"runtime"

	"github.com/loadlab-io/httpbench/internal/bench"
	"github.com/loadlab-io/httpbench/internal/checksum"
	"github.com/loadlab-io/httpbench/internal/config"
	"github.com/loadlab-io/httpbench/internal/logger"
	"github.com/loadlab-io/httpbench/internal/report"
	"github.com/loadlab-io/httpbench/pkg/methods"
)

// Options selects the run parameters taken from the CLI.
type Options struct {
	// Passes is the number of timed iterations per method. Must be >= 2.
	Passes int
	// CSV switches output from human-readable lines to CSV rows.
	CSV bool
	// Out receives the formatted results; defaults to stdout in the CLI.
	Out io.Writer
}

// Bench is the benchmark runtime: a frozen strategy registry, the compiled-in
// checksum table, and the output sink.
type Bench struct {
	cfg      *config.Config
	log      logger.Logger
	registry *methods.Registry
	table    checksum.Table
	opts     Options
}

// New builds the benchmark runtime. The registry's write phase completes
// here, before any measurement can observe it.
func New(cfg *config.Config, log logger.Logger, opts Options) (*Bench, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if opts.Out == nil {
		return nil, fmt.Errorf("output writer must not be nil")
	}

	caps := methods.DefaultCapabilities(cfg.DisabledCapabilities)
	registry := methods.DefaultRegistry(caps, methods.Options{UserAgent: cfg.UserAgent})
	log.Debugf("registry built: %v", registry.Names())

	return &Bench{
		cfg:      cfg,
		log:      log,
		registry: registry,
		table:    checksum.DefaultTable(),
		opts:     opts,
	}, nil
}

// MethodNames returns the registered strategy names in registration order.
func (b *Bench) MethodNames() []string {
	return b.registry.Names()
}

// Run measures the named method (or every registered method for "all")
// against url and writes one result row per method. The first failing method
// aborts the whole run.
func (b *Bench) Run(method, url string) error {
	names := []string{method}
	if method == "all" {
		names = b.registry.Names()
	} else if _, err := b.registry.Resolve(method); err != nil {
		return err
	}

	out, err := b.newWriter()
	if err != nil {
		return err
	}

	for _, name := range names {
		fn, err := b.registry.Resolve(name)
		if err != nil {
			return err
		}

		h := &bench.Harness{
			Passes:   b.opts.Passes,
			Validate: b.validate,
		}
		res, err := h.Measure(fn, url)
		if err != nil {
			return fmt.Errorf("measure %s: %w", name, err)
		}

		row := report.Row{
			Runtime: runtime.Version(),
			Method:  name,
			Size:    res.Size,
			Mean:    res.Mean,
			Std:     res.Std,
		}
		if err := out.Write(row); err != nil {
			return fmt.Errorf("write result for %s: %w", name, err)
		}
	}

	return out.Flush()
}

func (b *Bench) newWriter() (report.Writer, error) {
	if b.opts.CSV {
		return report.NewCSV(b.opts.Out)
	}
	return report.NewText(b.opts.Out), nil
}

// validate routes the first timed pass's payload through the checksum table.
// Diagnostics are logged and deliberately non-fatal: a truncated payload is
// more useful discovered after the sweep than by crashing in the middle.
func (b *Bench) validate(data []byte) {
	diag, detail := b.table.Verify(data)
	switch diag {
	case checksum.UnknownSize:
		b.log.Warnf("%s", detail)
	case checksum.DigestMismatch:
		b.log.Errorf("%s", detail)
	}
}
