package tabular

import "errors"

// DefaultMinRows is the data-row count a table must exceed to be selected
// outright. Reference tables of the kind this tool targets are long and
// tend to appear early in the page.
const DefaultMinRows = 50

// ErrNoCandidates indicates the page contained no matching tables.
var ErrNoCandidates = errors.New("no candidate tables found")

// SelectTable picks the table most likely to hold the target dataset.
// The first candidate in document order whose row count exceeds minRows
// wins immediately; if none does, the first candidate is returned as a
// fallback. Pure size heuristic, content is never inspected.
func SelectTable(tables []Table, minRows int) (Table, error) {
	if len(tables) == 0 {
		return Table{}, ErrNoCandidates
	}

	for _, t := range tables {
		if len(t.Rows) > minRows {
			return t, nil
		}
	}

	return tables[0], nil
}
