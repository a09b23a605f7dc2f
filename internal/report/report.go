// Package report formats measurement results for humans (one line per
// method) or for downstream plotting (CSV, all values in bytes/second).
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Row is one method's aggregate outcome.
type Row struct {
	// Runtime tags the Go runtime that produced the row, kept in the CSV's
	// leading column for cross-run comparison.
	Runtime string
	Method  string
	Size    int
	Mean    float64
	Std     float64
}

// Writer receives one Row per measured method.
type Writer interface {
	Write(row Row) error
	Flush() error
}

// NewText returns a Writer printing "<name>: <mean> ± <stderr> MB/s" lines.
func NewText(w io.Writer) Writer {
	return &textWriter{w: w}
}

type textWriter struct {
	w io.Writer
}

func (t *textWriter) Write(row Row) error {
	_, err := fmt.Fprintf(t.w, "%s: %.1f ± %.1f MB/s\n", row.Method, row.Mean/1e6, row.Std/1e6)
	return err
}

func (t *textWriter) Flush() error { return nil }

// csvHeader keeps the historical column names so sweeps from different
// runtimes land in the same spreadsheet.
var csvHeader = []string{"Python", "Method", "Size", "mean", "std"}

// NewCSV returns a Writer emitting the header immediately and one data row
// per method, throughput values in bytes/second.
func NewCSV(w io.Writer) (Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	return &csvWriter{w: cw}, nil
}

type csvWriter struct {
	w *csv.Writer
}

func (c *csvWriter) Write(row Row) error {
	return c.w.Write([]string{
		row.Runtime,
		row.Method,
		strconv.Itoa(row.Size),
		strconv.FormatFloat(row.Mean, 'g', -1, 64),
		strconv.FormatFloat(row.Std, 'g', -1, 64),
	})
}

func (c *csvWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}
