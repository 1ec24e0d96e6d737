package quality

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"csvqc/internal/dataset"

	"github.com/google/uuid"
)

func loadCSV(t *testing.T, content string) *dataset.Dataset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	ds, err := dataset.Load(path, dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return ds
}

func TestCleanDatasetHasNoIssues(t *testing.T) {
	ds := loadCSV(t, "a,b\n1,4\n2,5\n3,6\n")

	if issues := CheckMissing(ds); len(issues) != 0 {
		t.Fatalf("missing issues = %#v, want none", issues)
	}
	if dup := CheckDuplicates(ds); dup.Rows != 0 || dup.Percentage != 0 {
		t.Fatalf("duplicates = %#v, want zero", dup)
	}
	if types := CheckTypes(ds); len(types) != 2 {
		t.Fatalf("type entries = %d, want 2", len(types))
	}
	if outliers := CheckOutliers(ds); len(outliers) != 0 {
		t.Fatalf("outliers = %#v, want none", outliers)
	}
}

func TestCheckMissingSingleColumn(t *testing.T) {
	// csv readers skip fully blank lines, so the missing cell is an NA token.
	ds := loadCSV(t, "a\n1\nNA\n3\n")

	issues := CheckMissing(ds)
	if len(issues) != 1 {
		t.Fatalf("issues = %#v, want exactly one", issues)
	}
	got := issues[0]
	if got.Column != "a" || got.Count != 1 || got.Percentage != 33.33 {
		t.Fatalf("issue = %#v, want {a 1 33.33}", got)
	}
}

func TestCheckMissingSkipsCleanColumns(t *testing.T) {
	ds := loadCSV(t, "a,b\n1,\n2,5\n")

	issues := CheckMissing(ds)
	if len(issues) != 1 || issues[0].Column != "b" {
		t.Fatalf("issues = %#v, want only column b", issues)
	}
	if issues[0].Percentage != 50 {
		t.Fatalf("percentage = %v, want 50", issues[0].Percentage)
	}
}

func TestCheckDuplicates(t *testing.T) {
	ds := loadCSV(t, "x,y\n1,2\n1,2\n3,4\n")

	dup := CheckDuplicates(ds)
	if dup.Rows != 1 {
		t.Fatalf("duplicate rows = %d, want 1", dup.Rows)
	}
	if dup.Percentage != 33.33 {
		t.Fatalf("duplicate percentage = %v, want 33.33", dup.Percentage)
	}
}

func TestCheckDuplicatesMonotonicOnAppend(t *testing.T) {
	base := "x,y\n1,2\n1,2\n3,4\n"
	before := CheckDuplicates(loadCSV(t, base)).Rows
	after := CheckDuplicates(loadCSV(t, base+"1,2\n")).Rows
	if after != before+1 {
		t.Fatalf("appending a matching row: %d -> %d, want +1", before, after)
	}
}

func TestCheckDuplicatesMissingEqualsMissing(t *testing.T) {
	ds := loadCSV(t, "x,y\n1,\n1,\n")
	if dup := CheckDuplicates(ds); dup.Rows != 1 {
		t.Fatalf("duplicate rows = %d, want 1 (missing markers compare equal)", dup.Rows)
	}
}

func TestCheckDuplicatesNumericValueEquality(t *testing.T) {
	// Numeric columns compare by parsed value, as pandas does: "1" and
	// "1.0" are one value in a float column.
	ds := loadCSV(t, "x\n1\n1.0\n")
	if ds.Columns[0].Kind != dataset.KindFloat {
		t.Fatalf("column kind = %s, want float", ds.Columns[0].Kind)
	}
	if dup := CheckDuplicates(ds); dup.Rows != 1 {
		t.Fatalf("duplicate rows = %d, want 1", dup.Rows)
	}
}

func TestCheckDuplicatesBooleanAndDateEquality(t *testing.T) {
	ds := loadCSV(t, "flag,day\ntrue,2024-01-15\nTrue,2024/01/15\n")
	if dup := CheckDuplicates(ds); dup.Rows != 1 {
		t.Fatalf("duplicate rows = %d, want 1 (boolean and date cells compare by value)", dup.Rows)
	}
}

func TestCheckDuplicatesIntegerLeadingZeros(t *testing.T) {
	ds := loadCSV(t, "n\n7\n07\n")
	if ds.Columns[0].Kind != dataset.KindInteger {
		t.Fatalf("column kind = %s, want integer", ds.Columns[0].Kind)
	}
	if dup := CheckDuplicates(ds); dup.Rows != 1 {
		t.Fatalf("duplicate rows = %d, want 1", dup.Rows)
	}
}

func TestCheckDuplicatesDistinctRowsNeverCollide(t *testing.T) {
	// Cell text is arbitrary; rows whose concatenated text happens to match
	// must still count as distinct.
	ds := loadCSV(t, "a,b\n\"x\x00\x02y\",z\nx,\"y\x00\x02z\"\n")
	if dup := CheckDuplicates(ds); dup.Rows != 0 {
		t.Fatalf("distinct rows reported as duplicates: %#v", dup)
	}
}

func TestCheckDuplicatesMissingNotEqualValue(t *testing.T) {
	ds := loadCSV(t, "x,y\n1,\n1,2\n")
	if dup := CheckDuplicates(ds); dup.Rows != 0 {
		t.Fatalf("duplicate rows = %d, want 0", dup.Rows)
	}
}

func TestCheckTypesOnePerColumn(t *testing.T) {
	ds := loadCSV(t, "id,name,score\n1,ana,3.5\n2,ana,NA\n3,bo,1.25\n4,ana,2.5\n")

	types := CheckTypes(ds)
	if len(types) != 3 {
		t.Fatalf("type entries = %d, want 3", len(types))
	}

	id := types[0]
	if id.Column != "id" || id.DataType != "integer" || id.UniqueValues != 4 {
		t.Fatalf("id info = %#v", id)
	}

	name := types[1]
	if name.DataType != "text" || name.UniqueValues != 2 {
		t.Fatalf("name info = %#v", name)
	}
	// Samples are the first three non-missing values in row order, not deduplicated.
	wantSamples := []string{"ana", "ana", "bo"}
	if len(name.SampleValues) != 3 {
		t.Fatalf("name samples = %#v", name.SampleValues)
	}
	for i, s := range wantSamples {
		if name.SampleValues[i] != s {
			t.Fatalf("name samples = %#v, want %#v", name.SampleValues, wantSamples)
		}
	}

	score := types[2]
	if score.DataType != "float" || score.UniqueValues != 3 {
		t.Fatalf("score info = %#v", score)
	}
	if len(score.SampleValues) != 3 || score.SampleValues[1] != "1.25" {
		t.Fatalf("score samples should skip the missing cell: %#v", score.SampleValues)
	}
}

func TestCheckTypesNumericValueEquality(t *testing.T) {
	ds := loadCSV(t, "x\n1\n1.0\n2\n")
	types := CheckTypes(ds)
	if len(types) != 1 {
		t.Fatalf("type entries = %#v", types)
	}
	got := types[0]
	if got.DataType != "float" || got.UniqueValues != 2 {
		t.Fatalf("info = %#v, want float with 2 unique values", got)
	}
	// Samples keep the raw text as it appeared in the file.
	want := []string{"1", "1.0", "2"}
	if len(got.SampleValues) != 3 {
		t.Fatalf("samples = %#v", got.SampleValues)
	}
	for i, s := range want {
		if got.SampleValues[i] != s {
			t.Fatalf("samples = %#v, want %#v", got.SampleValues, want)
		}
	}
}

func TestCheckOutliersIQR(t *testing.T) {
	ds := loadCSV(t, "v\n1\n2\n3\n4\n100\n")

	issues := CheckOutliers(ds)
	if len(issues) != 1 {
		t.Fatalf("outlier issues = %#v, want one", issues)
	}
	got := issues[0]
	// sorted [1 2 3 4 100]: Q1 at pos 1 = 2, Q3 at pos 3 = 4, IQR = 2,
	// fence = [-1, 7]; only 100 falls strictly outside.
	if got.Column != "v" || got.Count != 1 {
		t.Fatalf("issue = %#v", got)
	}
	if got.LowerBound != -1 || got.UpperBound != 7 {
		t.Fatalf("bounds = [%v, %v], want [-1, 7]", got.LowerBound, got.UpperBound)
	}
	if got.Percentage != 20 {
		t.Fatalf("percentage = %v, want 20", got.Percentage)
	}
}

func TestCheckOutliersBoundsRounded(t *testing.T) {
	ds := loadCSV(t, "v\n0.1\n0.2\n0.3\n0.4\n10\n")

	issues := CheckOutliers(ds)
	if len(issues) != 1 {
		t.Fatalf("outlier issues = %#v, want one", issues)
	}
	got := issues[0]
	// Q1 = 0.2, Q3 = 0.4, IQR = 0.2, fence = [-0.1, 0.7] after rounding.
	if got.LowerBound != -0.1 || got.UpperBound != 0.7 {
		t.Fatalf("bounds = [%v, %v], want [-0.1, 0.7]", got.LowerBound, got.UpperBound)
	}
	if got.LowerBound > got.UpperBound {
		t.Fatalf("lower bound must not exceed upper bound")
	}
}

func TestCheckOutliersDegenerateIQR(t *testing.T) {
	// Four equal values collapse the fence to [5, 5]; the stray 100 is
	// strictly outside and must be flagged.
	ds := loadCSV(t, "v\n5\n5\n5\n5\n100\n")

	issues := CheckOutliers(ds)
	if len(issues) != 1 {
		t.Fatalf("outlier issues = %#v, want one", issues)
	}
	got := issues[0]
	if got.LowerBound != 5 || got.UpperBound != 5 {
		t.Fatalf("bounds = [%v, %v], want collapsed [5, 5]", got.LowerBound, got.UpperBound)
	}
	if got.Count != 1 {
		t.Fatalf("count = %d, want 1", got.Count)
	}
}

func TestCheckOutliersConstantColumn(t *testing.T) {
	ds := loadCSV(t, "v\n5\n5\n5\n")
	if issues := CheckOutliers(ds); len(issues) != 0 {
		t.Fatalf("constant column flagged outliers: %#v", issues)
	}
}

func TestCheckOutliersSkipNonNumeric(t *testing.T) {
	ds := loadCSV(t, "label,flag,day\nrare,true,2024-01-01\nrare,false,2024-01-02\nodd,true,2024-05-05\n")
	if issues := CheckOutliers(ds); len(issues) != 0 {
		t.Fatalf("non-numeric columns must be excluded: %#v", issues)
	}
}

func TestCheckAggregatesResult(t *testing.T) {
	ds := loadCSV(t, "a,b\n1,x\n1,x\n,y\n")
	now := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)

	res := Check(ds, now)
	if _, err := uuid.Parse(res.ID); err != nil {
		t.Fatalf("result ID %q is not a uuid: %v", res.ID, err)
	}
	if res.Source != "fixture.csv" {
		t.Fatalf("source = %q", res.Source)
	}
	if !res.GeneratedAt.Equal(now) {
		t.Fatalf("generated at = %v, want %v", res.GeneratedAt, now)
	}
	if res.TotalRows != 3 || res.TotalColumns != 2 {
		t.Fatalf("totals = %d/%d, want 3/2", res.TotalRows, res.TotalColumns)
	}
	if len(res.MissingValues) != 1 || res.MissingValues[0].Column != "a" {
		t.Fatalf("missing = %#v", res.MissingValues)
	}
	if res.Duplicates.Rows != 1 {
		t.Fatalf("duplicates = %#v", res.Duplicates)
	}
	if len(res.DataTypes) != 2 {
		t.Fatalf("data types = %#v", res.DataTypes)
	}
}

func TestQuantileLinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 100}
	cases := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 2},
		{0.5, 3},
		{0.75, 4},
		{1, 100},
		{0.9, 61.6}, // pos 3.6: 4 + 0.6*(100-4)
	}
	for _, tc := range cases {
		if got := quantile(sorted, tc.q); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("quantile(%v) = %v, want %v", tc.q, got, tc.want)
		}
	}
	if got := quantile([]float64{7}, 0.5); got != 7 {
		t.Fatalf("single-element quantile = %v, want 7", got)
	}
	if got := quantile(nil, 0.5); got != 0 {
		t.Fatalf("empty quantile = %v, want 0", got)
	}
}
