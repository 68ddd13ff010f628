// Package tabular implements the heuristic table selection, column
// detection and numeric cleaning that turn a scraped HTML table into a
// two-column dataset. Everything here operates on plain string sequences
// so the logic stays independent of any HTML library's object model.
package tabular

// Table is a candidate table lifted out of an HTML page.
type Table struct {
	Index  int      // position on the page, document order
	Header []string // one composite name per column, raw
	Rows   [][]string
}

// Row is one cleaned dataset entry.
type Row struct {
	Country     string  `db:"Country"`
	GDPBillions float64 `db:"GDP_USD_billion"`
}

// Dataset is the cleaned dataset in source-table order.
type Dataset []Row
