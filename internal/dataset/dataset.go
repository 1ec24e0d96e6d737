package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Options controls how a CSV file is loaded.
type Options struct {
	// Delimiter for CSV fields. If 0, auto-detects by extension (',' or tab).
	Delimiter rune
	// MissingTokens are cell values (after trimming, case-insensitive) treated
	// as missing in addition to the empty string.
	MissingTokens []string
}

// DefaultOptions returns the loader defaults.
func DefaultOptions() Options {
	return Options{
		MissingTokens: []string{"NA", "N/A", "null", "NaN"},
	}
}

// Cell is a single value of a column. Missing cells keep no raw text.
type Cell struct {
	Raw     string
	Missing bool
}

// Column is a named, typed sequence of cells aligned by row index.
type Column struct {
	Name  string
	Kind  Kind
	Cells []Cell
}

// Float returns the numeric value at row i, or false if the cell is missing
// or the column is not numeric.
func (c *Column) Float(i int) (float64, bool) {
	if c.Kind != KindInteger && c.Kind != KindFloat {
		return 0, false
	}
	if i < 0 || i >= len(c.Cells) || c.Cells[i].Missing {
		return 0, false
	}
	return parseFloatValue(c.Cells[i].Raw)
}

// Canonical returns the cell value at row i normalized for value equality
// under the column's inferred kind: integers and floats compare by parsed
// value ("1" and "1.0" are one value in a float column), booleans lower-case,
// dates in a fixed layout. Text cells compare by raw text. ok is false for
// missing cells.
func (c *Column) Canonical(i int) (string, bool) {
	if i < 0 || i >= len(c.Cells) || c.Cells[i].Missing {
		return "", false
	}
	raw := c.Cells[i].Raw
	switch c.Kind {
	case KindInteger:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return strconv.FormatInt(n, 10), true
		}
	case KindFloat:
		if f, ok := parseFloatValue(raw); ok {
			return strconv.FormatFloat(f, 'g', -1, 64), true
		}
	case KindBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return strconv.FormatBool(b), true
		}
	case KindDate:
		if t, ok := parseDateValue(raw); ok {
			return t.Format(time.RFC3339), true
		}
	}
	return raw, true
}

// Dataset is an immutable columnar table loaded from a CSV file.
// Analyzers only read it.
type Dataset struct {
	Source  string
	Columns []Column
	rows    int
}

// Rows returns the number of data rows.
func (d *Dataset) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dataset) Cols() int { return len(d.Columns) }

// Load reads a CSV file with a header row into a Dataset and infers a kind
// for every column. It fails with *NotFoundError if the path is unreadable,
// ErrEmpty if the file has no data rows or no columns, and *ParseError for
// malformed records.
func Load(path string, opt Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.Comma = delim
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	ncol := len(header)
	if ncol == 0 {
		return nil, ErrEmpty
	}

	missing := missingSet(opt.MissingTokens)
	cols := make([]Column, ncol)
	for i, h := range header {
		cols[i].Name = strings.TrimSpace(h)
	}

	rows := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &ParseError{Row: rows + 1, Err: err}
		}
		if len(rec) > ncol {
			return nil, &ParseError{Row: rows + 1, Err: fmt.Errorf("record has %d fields, header has %d", len(rec), ncol)}
		}
		rows++
		for j := 0; j < ncol; j++ {
			var cell Cell
			if j < len(rec) {
				v := strings.TrimSpace(rec[j])
				if _, miss := missing[strings.ToLower(v)]; miss {
					cell.Missing = true
				} else {
					cell.Raw = v
				}
			} else {
				// Short record: pad with missing cells.
				cell.Missing = true
			}
			cols[j].Cells = append(cols[j].Cells, cell)
		}
	}
	if rows == 0 {
		return nil, ErrEmpty
	}

	for i := range cols {
		cols[i].Kind = inferKind(cols[i].Cells)
	}

	return &Dataset{
		Source:  filepath.Base(path),
		Columns: cols,
		rows:    rows,
	}, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

func missingSet(tokens []string) map[string]struct{} {
	set := map[string]struct{}{"": {}}
	for _, t := range tokens {
		set[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return set
}
