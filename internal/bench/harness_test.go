package bench

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"
)

// fakeMethod counts invocations and returns a fixed payload. The short sleep
// keeps per-pass elapsed time comfortably above clock resolution.
func fakeMethod(calls *int, payload []byte) func(string) ([]byte, error) {
	return func(string) ([]byte, error) {
		*calls++
		time.Sleep(time.Millisecond)
		return payload, nil
	}
}

func TestMeasureCallCount(t *testing.T) {
	calls := 0
	h := &Harness{Passes: 5}
	if _, err := h.Measure(fakeMethod(&calls, []byte("x")), "http://unused"); err != nil {
		t.Fatalf("Measure: %v", err)
	}
	// 1 warmup + 5 timed passes.
	if calls != 6 {
		t.Fatalf("method invoked %d times, want 6", calls)
	}
}

func TestMeasureTooFewPasses(t *testing.T) {
	for _, passes := range []int{1, 0, -3} {
		calls := 0
		h := &Harness{Passes: passes}
		_, err := h.Measure(fakeMethod(&calls, []byte("x")), "http://unused")
		if !errors.Is(err, ErrTooFewPasses) {
			t.Fatalf("passes=%d: err = %v, want ErrTooFewPasses", passes, err)
		}
		if calls != 0 {
			t.Fatalf("passes=%d: method invoked %d times before config check", passes, calls)
		}
	}
}

func TestMeasureValidatesFirstTimedPassOnly(t *testing.T) {
	payload := []byte("fixture payload")
	validated := 0
	var seen []byte

	calls := 0
	h := &Harness{
		Passes: 5,
		Validate: func(data []byte) {
			validated++
			seen = data
		},
	}
	res, err := h.Measure(fakeMethod(&calls, payload), "http://unused")
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if validated != 1 {
		t.Fatalf("validator invoked %d times, want 1", validated)
	}
	if !bytes.Equal(seen, payload) {
		t.Fatalf("validator saw %q, want %q", seen, payload)
	}
	if res.Size != len(payload) {
		t.Fatalf("Size = %d, want %d", res.Size, len(payload))
	}
	if res.Mean <= 0 {
		t.Fatalf("Mean = %v, want > 0", res.Mean)
	}
}

func TestMeasurePropagatesMethodError(t *testing.T) {
	boom := errors.New("short read")
	h := &Harness{Passes: 3}
	_, err := h.Measure(func(string) ([]byte, error) { return nil, boom }, "http://unused")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped method error", err)
	}
}

func TestStderrDivisor(t *testing.T) {
	// Sample stdev of {1,2,3,4,5} is sqrt(2.5); passes=5 divides by sqrt(4).
	rates := []float64{1, 2, 3, 4, 5}
	got := stderrOfMean(rates, 5)
	want := math.Sqrt(2.5) / 2
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("stderrOfMean(passes=5) = %v, want %v", got, want)
	}

	// passes=2 divides by sqrt(1): stderr equals the sample stdev.
	rates = []float64{1, 3}
	got = stderrOfMean(rates, 2)
	want = sampleStdev(rates)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("stderrOfMean(passes=2) = %v, want %v", got, want)
	}
}

func TestMeanAndStdev(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := mean(xs); math.Abs(got-5) > 1e-12 {
		t.Fatalf("mean = %v, want 5", got)
	}
	// Population stdev of this set is 2; the sample flavor uses n-1.
	want := math.Sqrt(32.0 / 7.0)
	if got := sampleStdev(xs); math.Abs(got-want) > 1e-12 {
		t.Fatalf("sampleStdev = %v, want %v", got, want)
	}
}
