/*
PURPOSE:
  Writes per-dataset loss-curve summaries to a JSON Lines file (NDJSON).
  Optimized for machine parsing by the result notebooks.

REQUIREMENTS:
  User-specified:
  - JSON output for easier parsing.

  Implementation-discovered:
  - JSON Lines is better for streaming/logging than a single large array
    (append-friendly).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/losslog.Summary

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.

USAGE:
  w, err := output.NewSummaryWriter("loss_summaries.jsonl")
  w.Write("D1", summary)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/losslog/summary.go

MAINTENANCE:
  - Update if we switch to plain JSON array (not recommended for streaming).
*/

package output

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/losslog"
)

// SummaryWriter handles writing curve summaries to a JSON Lines file.
type SummaryWriter struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewSummaryWriter creates a new SummaryWriter.
func NewSummaryWriter(path string) (*SummaryWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &SummaryWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes one dataset's summary as a JSON line.
func (sw *SummaryWriter) Write(dataset string, s losslog.Summary) error {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	row := struct {
		Dataset string `json:"dataset"`
		losslog.Summary
	}{dataset, s}

	return sw.encoder.Encode(row)
}

// Close closes the underlying file.
func (sw *SummaryWriter) Close() error {
	return sw.file.Close()
}
