package tabular

import (
	"fmt"
	"strings"
)

// Keyword sets for column role detection. Matching is substring-based on
// the lowercased header name; only column order matters, not keyword order.
var (
	entityKeywords = []string{"country", "territory", "nation", "region"}
	metricKeywords = []string{"estimate", "million", "gdp", "usd", "us$", "imf"}
)

// Columns holds the resolved column indexes for the two roles.
type Columns struct {
	Entity int
	Metric int
}

// ColumnNotFoundError reports a header role that could not be resolved.
// It carries the full header list so the operator can see what was there.
type ColumnNotFoundError struct {
	Role   string
	Header []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("%s column not found, available columns: [%s]",
		e.Role, strings.Join(e.Header, ", "))
}

// DetectColumns resolves the entity and metric columns from cleaned header
// names. Both scans are independent, first-match, left to right. Headers
// mentioning "year" never qualify as the metric column (they hold the
// estimate's reference year, not the estimate).
func DetectColumns(header []string) (Columns, error) {
	cols := Columns{Entity: -1, Metric: -1}

	for i, name := range header {
		if containsAny(strings.ToLower(name), entityKeywords) {
			cols.Entity = i
			break
		}
	}

	for i, name := range header {
		lower := strings.ToLower(name)
		if containsAny(lower, metricKeywords) && !strings.Contains(lower, "year") {
			cols.Metric = i
			break
		}
	}

	if cols.Entity < 0 {
		return cols, &ColumnNotFoundError{Role: "entity", Header: header}
	}
	if cols.Metric < 0 {
		return cols, &ColumnNotFoundError{Role: "metric", Header: header}
	}
	return cols, nil
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
