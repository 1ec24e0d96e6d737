package quality

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"csvqc/internal/dataset"

	"github.com/google/uuid"
)

// CheckMissing counts missing cells per column and reports columns with at
// least one, in declaration order.
func CheckMissing(ds *dataset.Dataset) []MissingValue {
	total := ds.Rows()
	if total == 0 {
		return nil
	}
	var issues []MissingValue
	for _, col := range ds.Columns {
		count := 0
		for _, c := range col.Cells {
			if c.Missing {
				count++
			}
		}
		if count > 0 {
			issues = append(issues, MissingValue{
				Column:     col.Name,
				Count:      count,
				Percentage: round2(100 * float64(count) / float64(total)),
			})
		}
	}
	return issues
}

// CheckDuplicates counts rows whose full value tuple matches an earlier row.
// Cells compare by canonical value under the column's inferred kind, and
// missing cells compare equal to missing cells of the same column.
func CheckDuplicates(ds *dataset.Dataset) Duplicates {
	total := ds.Rows()
	if total == 0 {
		return Duplicates{}
	}
	seen := make(map[string]struct{}, total)
	dups := 0
	var b strings.Builder
	for i := 0; i < total; i++ {
		b.Reset()
		// Length-prefixed fields keep the row key injective: no cell text
		// can shift a field boundary.
		for ci := range ds.Columns {
			v, ok := ds.Columns[ci].Canonical(i)
			if !ok {
				b.WriteString("m;")
				continue
			}
			b.WriteString(strconv.Itoa(len(v)))
			b.WriteByte(':')
			b.WriteString(v)
		}
		key := b.String()
		if _, ok := seen[key]; ok {
			dups++
		} else {
			seen[key] = struct{}{}
		}
	}
	return Duplicates{
		Rows:       dups,
		Percentage: round2(100 * float64(dups) / float64(total)),
	}
}

// CheckTypes emits one TypeInfo per column: inferred kind label, distinct
// non-missing value count, and the first three non-missing values in row
// order. Distinctness uses canonical values, so "1" and "1.0" are one value
// in a float column; samples keep the raw text as it appeared in the file.
// Descriptive pass; every column appears regardless of issues.
func CheckTypes(ds *dataset.Dataset) []TypeInfo {
	infos := make([]TypeInfo, 0, ds.Cols())
	for ci := range ds.Columns {
		col := &ds.Columns[ci]
		distinct := make(map[string]struct{})
		samples := make([]string, 0, 3)
		for i := range col.Cells {
			v, ok := col.Canonical(i)
			if !ok {
				continue
			}
			distinct[v] = struct{}{}
			if len(samples) < 3 {
				samples = append(samples, col.Cells[i].Raw)
			}
		}
		infos = append(infos, TypeInfo{
			Column:       col.Name,
			DataType:     col.Kind.String(),
			UniqueValues: len(distinct),
			SampleValues: samples,
		})
	}
	return infos
}

// CheckOutliers applies the IQR rule to integer and float columns. A value is
// an outlier when strictly outside [Q1 - 1.5*IQR, Q3 + 1.5*IQR], with Q1/Q3
// computed by linear interpolation over the sorted non-missing values.
// Columns with a single distinct value get a collapsed fence (IQR = 0).
func CheckOutliers(ds *dataset.Dataset) []Outlier {
	total := ds.Rows()
	if total == 0 {
		return nil
	}
	var issues []Outlier
	for ci := range ds.Columns {
		col := &ds.Columns[ci]
		if !col.Kind.Numeric() {
			continue
		}
		vals := make([]float64, 0, total)
		for i := 0; i < total; i++ {
			if v, ok := col.Float(i); ok {
				vals = append(vals, v)
			}
		}
		if len(vals) == 0 {
			continue
		}
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)
		q1 := quantile(sorted, 0.25)
		q3 := quantile(sorted, 0.75)
		iqr := q3 - q1
		lower := q1 - 1.5*iqr
		upper := q3 + 1.5*iqr

		count := 0
		for _, v := range vals {
			if v < lower || v > upper {
				count++
			}
		}
		if count > 0 {
			issues = append(issues, Outlier{
				Column:     col.Name,
				Count:      count,
				Percentage: round2(100 * float64(count) / float64(total)),
				LowerBound: round2(lower),
				UpperBound: round2(upper),
			})
		}
	}
	return issues
}

// Check runs the four analyzers over an immutable dataset snapshot and
// assembles the result record. Pure composition; no partial results.
func Check(ds *dataset.Dataset, now time.Time) *Result {
	return &Result{
		ID:            uuid.NewString(),
		Source:        ds.Source,
		GeneratedAt:   now,
		TotalRows:     ds.Rows(),
		TotalColumns:  ds.Cols(),
		MissingValues: CheckMissing(ds),
		Duplicates:    CheckDuplicates(ds),
		DataTypes:     CheckTypes(ds),
		Outliers:      CheckOutliers(ds),
	}
}

// quantile interpolates linearly between the two nearest ranks of a sorted
// slice, matching pandas' default quantile method.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
