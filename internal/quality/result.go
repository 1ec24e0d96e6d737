package quality

import "time"

// MissingValue reports missing cells in one column. Only columns with at
// least one missing cell are reported.
type MissingValue struct {
	Column     string  `json:"column"`
	Count      int     `json:"missing_count"`
	Percentage float64 `json:"missing_percentage"`
}

// Duplicates summarizes rows that repeat an earlier row's full value tuple.
type Duplicates struct {
	Rows       int     `json:"duplicate_rows"`
	Percentage float64 `json:"duplicate_percentage"`
}

// TypeInfo describes one column: inferred type, cardinality, and up to three
// sample values in row order. Every column gets exactly one entry.
type TypeInfo struct {
	Column       string   `json:"column"`
	DataType     string   `json:"data_type"`
	UniqueValues int      `json:"unique_values"`
	SampleValues []string `json:"sample_values"`
}

// Outlier reports values of a numeric column falling strictly outside the
// IQR fence [Q1 - 1.5*IQR, Q3 + 1.5*IQR].
type Outlier struct {
	Column     string  `json:"column"`
	Count      int     `json:"outlier_count"`
	Percentage float64 `json:"outlier_percentage"`
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
}

// Result is the immutable outcome of one quality check run.
type Result struct {
	ID            string         `json:"report_id"`
	Source        string         `json:"filename"`
	GeneratedAt   time.Time      `json:"timestamp"`
	TotalRows     int            `json:"total_rows"`
	TotalColumns  int            `json:"total_columns"`
	MissingValues []MissingValue `json:"missing_values"`
	Duplicates    Duplicates     `json:"duplicates"`
	DataTypes     []TypeInfo     `json:"data_types"`
	Outliers      []Outlier      `json:"outliers"`
}
