/*
PURPOSE:
  High-level runner that orchestrates loss extraction from a captured
  training stdout file. Read -> Parse -> Summarize -> Render -> Export.

REQUIREMENTS:
  User-specified:
  - Always render the per-dataset summary table.
  - Optionally render full epoch tables and export CSV/JSONL files.

  Implementation-discovered:
  - Map iteration order is random, so dataset ids need sorting.
  - Dataset ids come straight from captured stdout and may hold characters
    that are unsafe in filenames, or be empty.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/losslog, internal/output

ERROR HANDLING:
  - Fails fast on unreadable capture, malformed blocks or export errors.
  - A capture with zero loss blocks is not an error.

IMPLEMENTATION RULES:
  - Parse the whole capture before touching the filesystem.
  - One CSV per dataset, one JSONL file for all summaries.

USAGE:
  engine.ExtractLosses(opts)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/losslog/losslog.go
  - internal/output/csv.go

MAINTENANCE:
  - Update when adding new export formats.
*/

package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/losslog"
	"github.com/alexanderflorean/SCAI2024-Estimating-Synthetic-Data/internal/output"
)

// ExtractOptions controls one extraction run.
type ExtractOptions struct {
	// CapturePath is the file holding captured training stdout.
	CapturePath string
	// OutputDir receives per-dataset CSV tables and a JSONL summary file.
	// Empty means no files are written.
	OutputDir string
	// Dump renders the full per-epoch table for every dataset.
	Dump bool
	// Out is the rendering target, usually os.Stdout.
	Out io.Writer
}

// ExtractLosses runs the full extraction pipeline for one capture file.
func ExtractLosses(opts ExtractOptions) error {
	// 1. Read the capture
	data, err := os.ReadFile(opts.CapturePath)
	if err != nil {
		return fmt.Errorf("failed to read capture file: %w", err)
	}

	// 2. Parse
	result, err := losslog.Parse(string(data))
	if err != nil {
		return err
	}
	if len(result) == 0 {
		output.Logger.Info("No loss blocks found", "file", opts.CapturePath)
		return nil
	}
	output.Logger.Debug("Parsed loss blocks", "file", opts.CapturePath, "datasets", len(result))

	ids := make([]string, 0, len(result))
	for id := range result {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	// 3. Summarize
	rows := make([]output.SummaryRow, 0, len(ids))
	for _, id := range ids {
		s, err := losslog.Summarize(result[id])
		if err != nil {
			return fmt.Errorf("failed to summarize dataset %q: %w", id, err)
		}
		rows = append(rows, output.SummaryRow{Dataset: id, Summary: s})
	}

	// 4. Render
	output.RenderSummaries(opts.Out, rows)
	if opts.Dump {
		for _, id := range ids {
			output.RenderLossTable(opts.Out, id, result[id])
		}
	}

	// 5. Export
	if opts.OutputDir != "" {
		return exportLosses(opts.OutputDir, ids, result, rows)
	}
	return nil
}

// exportLosses writes one CSV table per dataset and a JSONL file with all
// summaries into dir.
func exportLosses(dir string, ids []string, result losslog.Result, rows []output.SummaryRow) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	for _, id := range ids {
		path := filepath.Join(dir, fmt.Sprintf("losses_%s.csv", sanitizeID(id)))
		if err := output.WriteLossTable(path, result[id]); err != nil {
			return err
		}
		output.Logger.Info("Wrote loss table", "dataset", id, "path", path)
	}

	path := filepath.Join(dir, "loss_summaries.jsonl")
	sw, err := output.NewSummaryWriter(path)
	if err != nil {
		return err
	}
	defer sw.Close()
	for _, row := range rows {
		if err := sw.Write(row.Dataset, row.Summary); err != nil {
			return err
		}
	}
	output.Logger.Info("Wrote loss summaries", "path", path)
	return nil
}

// sanitizeID maps a dataset identifier to a filename-safe form.
func sanitizeID(id string) string {
	if id == "" {
		return "unnamed"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, id)
}
