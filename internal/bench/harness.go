// Package bench runs the timed measurement loop for a single strategy:
// one untimed warmup, then N timed passes with a quiesced allocator, and
// aggregation into mean throughput plus its standard error.
package bench

import (
	"errors"
	"runtime"
	"time"

	"github.com/loadlab-io/httpbench/pkg/methods"
)

// ErrTooFewPasses rejects configurations for which the standard error of the
// mean is undefined.
var ErrTooFewPasses = errors.New("passes must be at least 2")

// Result is the aggregate outcome of measuring one method.
type Result struct {
	// Size is the payload byte count observed on the validated first pass.
	Size int
	// Mean is the arithmetic mean throughput in bytes/second.
	Mean float64
	// Std is the standard error of the mean, bytes/second.
	Std float64
}

// Harness drives the warmup-then-measure cycle.
type Harness struct {
	// Passes is the number of timed iterations. Must be >= 2.
	Passes int
	// Validate, when set, receives the first timed pass's payload.
	Validate func(data []byte)
}

// Measure runs fn against url for one warmup plus Passes timed iterations.
// Any error from fn aborts the measurement: a failed pass signals a setup
// defect or a strategy bug, and retrying would distort the numbers.
func (h *Harness) Measure(fn methods.Func, url string) (Result, error) {
	if h.Passes < 2 {
		return Result{}, ErrTooFewPasses
	}

	// Warmup: result discarded, absorbs connection and lazy-init costs.
	if _, err := fn(url); err != nil {
		return Result{}, err
	}

	var res Result
	rates := make([]float64, 0, h.Passes)
	for i := 0; i < h.Passes; i++ {
		// Collect now so a GC triggered mid-transfer does not land inside
		// the timed window.
		runtime.GC()

		start := time.Now()
		data, err := fn(url)
		elapsed := time.Since(start)
		if err != nil {
			return Result{}, err
		}

		rates = append(rates, float64(len(data))/elapsed.Seconds())
		if i == 0 {
			if h.Validate != nil {
				h.Validate(data)
			}
			res.Size = len(data)
		}
	}

	res.Mean = mean(rates)
	res.Std = stderrOfMean(rates, h.Passes)
	return res, nil
}
