/*
PURPOSE:
  Writes extracted loss tables to CSV files for downstream charting.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - One CSV per dataset with the exact columns Epoch, Loss_G, Loss_D the
    charting notebooks already consume.
  - Keep file handle open for flushing.

  Implementation-discovered:
  - Loss values must round-trip: the shortest representation that parses
    back to the same float64 is written, not a fixed precision.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/losslog.Record

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).
  - Use Mutex if concurrent writes are expected.

USAGE:
  w, err := output.NewCSVWriter("losses_D1.csv")
  w.Write(record)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If CSV format changes, update header and record conversion.

RELATED FILES:
  - internal/losslog/losslog.go

MAINTENANCE:
  - Update Write() mapping when Record gains columns.
*/

package output

import (
	"encoding/csv"
	"os"
	"strconv"
	"sync"

	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/losslog"
)

// lossHeader matches the loss-table column naming the rest of the study
// relies on.
var lossHeader = []string{"Epoch", "Loss_G", "Loss_D"}

// CSVWriter handles writing one loss table to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter and writes the table header.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(lossHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single loss record to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(r losslog.Record) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := []string{
		strconv.Itoa(r.Epoch),
		strconv.FormatFloat(r.LossG, 'g', -1, 64),
		strconv.FormatFloat(r.LossD, 'g', -1, 64),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}

// WriteLossTable writes a whole table to path in one call.
func WriteLossTable(path string, t losslog.Table) error {
	w, err := NewCSVWriter(path)
	if err != nil {
		return err
	}

	for _, r := range t {
		if err := w.Write(r); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
