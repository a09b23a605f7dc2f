package bench

import "math"

// mean returns the arithmetic mean of xs. xs must be non-empty.
func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStdev returns the sample standard deviation (n-1 divisor) of xs.
// xs must hold at least two values.
func sampleStdev(xs []float64) float64 {
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

// stderrOfMean returns the standard error of the mean over per-pass rates:
// sample stdev divided by sqrt(passes-1).
func stderrOfMean(rates []float64, passes int) float64 {
	return sampleStdev(rates) / math.Sqrt(float64(passes-1))
}
