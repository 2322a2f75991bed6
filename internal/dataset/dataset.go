/*
PURPOSE:
  Loads experiment CSV data with per-column type control: explicit
  overrides from dataset metadata where given, inference everywhere else.
  This is the data-side preparation for the AutoML setup call; the call
  itself lives outside this repository.

REQUIREMENTS:
  User-specified:
  - Honor column dtype overrides from the dataset metadata sheets.
  - Keep header order; notebooks address columns positionally at times.

  Implementation-discovered:
  - Inference must try int before float and float before bool so "1"/"0"
    columns stay numeric instead of collapsing to booleans.
  - An override naming a column the file lacks is a configuration mistake
    and fails fast.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (dataset-info command)
  - Depends on: stdlib encoding/csv

ERROR HANDLING:
  - Ragged records, missing headers, unknown override columns and cells
    violating an explicit override all fail with wrapped errors naming the
    file, column and row.

USAGE:
  ds, err := dataset.Load("data/original/D1.csv", map[string]dataset.Kind{
      "zip": dataset.KindString,
  })

RELATED FILES:
  - internal/config/config.go - where the folder layout comes from.

MAINTENANCE:
  - Extend Kind if the metadata sheets grow new dtype spellings.
*/

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Kind names a column's cell type.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
)

// Dataset is one loaded CSV: header order, per-column kinds and typed rows.
type Dataset struct {
	Columns []string
	Kinds   map[string]Kind
	Rows    [][]any
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Column returns the named column's cells in row order.
func (d *Dataset) Column(name string) ([]any, bool) {
	idx := -1
	for i, col := range d.Columns {
		if col == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	cells := make([]any, len(d.Rows))
	for i, row := range d.Rows {
		cells[i] = row[idx]
	}
	return cells, true
}

// Load reads a headered CSV, applying the given kind overrides and
// inferring a kind for every other column from its observed values.
func Load(path string, overrides map[string]Kind) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s: missing header row", path)
	}

	header := records[0]
	body := records[1:]

	for col := range overrides {
		if !contains(header, col) {
			return nil, fmt.Errorf("dataset %s: dtype override for unknown column %q", path, col)
		}
	}

	kinds := make(map[string]Kind, len(header))
	for i, col := range header {
		if kind, ok := overrides[col]; ok {
			kinds[col] = kind
			continue
		}
		kinds[col] = inferKind(column(body, i))
	}

	rows := make([][]any, len(body))
	for r, record := range body {
		row := make([]any, len(record))
		for c, cell := range record {
			value, err := parseCell(cell, kinds[header[c]])
			if err != nil {
				return nil, fmt.Errorf("dataset %s: column %q row %d: %w", path, header[c], r+1, err)
			}
			row[c] = value
		}
		rows[r] = row
	}

	return &Dataset{Columns: header, Kinds: kinds, Rows: rows}, nil
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

func column(body [][]string, idx int) []string {
	cells := make([]string, len(body))
	for i, record := range body {
		cells[i] = record[idx]
	}
	return cells
}

// inferKind picks the narrowest kind every observed value parses as.
// Candidates are eliminated cell by cell so a column like [1.5, true] falls
// back to string instead of a kind only some cells satisfy.
func inferKind(cells []string) Kind {
	if len(cells) == 0 {
		return KindString
	}

	canInt, canFloat, canBool := true, true, true
	for _, cell := range cells {
		if canInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				canInt = false
			}
		}
		if canFloat {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				canFloat = false
			}
		}
		if canBool {
			if _, err := strconv.ParseBool(cell); err != nil {
				canBool = false
			}
		}
		if !canInt && !canFloat && !canBool {
			return KindString
		}
	}

	switch {
	case canInt:
		return KindInt
	case canFloat:
		return KindFloat
	default:
		return KindBool
	}
}

func parseCell(cell string, kind Kind) (any, error) {
	switch kind {
	case KindInt:
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an int", cell)
		}
		return int(n), nil
	case KindFloat:
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a float", cell)
		}
		return f, nil
	case KindBool:
		b, err := strconv.ParseBool(cell)
		if err != nil {
			return nil, fmt.Errorf("%q is not a bool", cell)
		}
		return b, nil
	default:
		return cell, nil
	}
}
