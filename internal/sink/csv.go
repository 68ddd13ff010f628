// Package sink persists the cleaned dataset to a CSV file and a SQLite
// database, and runs the reporting query against the latter.
package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jmylchreest/econotab/internal/tabular"
)

// CSV column names, fixed by the export contract.
var csvHeader = []string{"Country", "GDP_USD_billion"}

// WriteCSV writes the dataset as CSV. Values are already rounded to two
// decimals, so the shortest float representation prints at most two.
func WriteCSV(w io.Writer, ds tabular.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range ds {
		rec := []string{row.Country, strconv.FormatFloat(row.GDPBillions, 'f', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the dataset to path, replacing any existing file.
func ExportCSV(path string, ds tabular.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, ds); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
