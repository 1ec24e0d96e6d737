package dataset

import (
	"strconv"
	"time"
)

// Kind is the inferred scalar type of a column.
type Kind uint8

const (
	KindText Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	}
	return "text"
}

// Numeric reports whether the kind participates in numeric analysis.
func (k Kind) Numeric() bool { return k == KindInteger || k == KindFloat }

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01-02-2006",
	"01/02/2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// inferKind assigns a kind to a column by trying parsers over all non-missing
// cells, in order: integer, float, boolean, date, else text. A kind applies
// only if every non-missing cell parses; integer widens to float when the
// column mixes whole and fractional numbers. All-missing columns are text.
func inferKind(cells []Cell) Kind {
	seen := 0
	allInt, allFloat, allBool, allDate := true, true, true, true
	for _, c := range cells {
		if c.Missing {
			continue
		}
		seen++
		if allInt {
			if _, err := strconv.ParseInt(c.Raw, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, ok := parseFloatValue(c.Raw); !ok {
				allFloat = false
			}
		}
		if allBool {
			if _, err := strconv.ParseBool(c.Raw); err != nil {
				allBool = false
			}
		}
		if allDate {
			if _, ok := parseDateValue(c.Raw); !ok {
				allDate = false
			}
		}
		if !allInt && !allFloat && !allBool && !allDate {
			return KindText
		}
	}
	if seen == 0 {
		return KindText
	}
	switch {
	case allInt:
		return KindInteger
	case allFloat:
		return KindFloat
	case allBool:
		return KindBool
	case allDate:
		return KindDate
	}
	return KindText
}

func parseFloatValue(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseDateValue(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
