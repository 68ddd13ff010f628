package tabular

import (
	"math"
	"strings"

	"github.com/jmylchreest/econotab/internal/logger"
)

// Source values are published in millions of US dollars; output is
// billions. The factor is fixed, not detected from the page.
const millionsPerBillion = 1000

// CleanHeader normalizes raw header names: non-breaking spaces become
// ordinary spaces, leading/trailing whitespace is trimmed, and runs of
// whitespace collapse to a single space.
func CleanHeader(header []string) []string {
	cleaned := make([]string, len(header))
	for i, name := range header {
		cleaned[i] = strings.Join(strings.Fields(name), " ")
	}
	return cleaned
}

// BuildDataset cleans the table's header, detects the entity and metric
// columns, and produces the cleaned dataset. Rows whose metric cell yields
// no value or a non-positive value are dropped silently; surviving metrics
// are rescaled to billions and rounded to two decimals. Source order is
// preserved.
func BuildDataset(t Table) (Dataset, error) {
	header := CleanHeader(t.Header)
	logger.Debug("detected columns", "header", header)

	cols, err := DetectColumns(header)
	if err != nil {
		return nil, err
	}
	logger.Info("columns resolved",
		"entity", header[cols.Entity], "metric", header[cols.Metric])

	if strings.Contains(strings.ToLower(header[cols.Metric]), "billion") {
		logger.Warn("metric header mentions billions, fixed millions-to-billions rescale may be off by 1000x",
			"column", header[cols.Metric])
	}

	ds := make(Dataset, 0, len(t.Rows))
	for _, row := range t.Rows {
		if cols.Entity >= len(row) || cols.Metric >= len(row) {
			continue
		}
		name := strings.Join(strings.Fields(row[cols.Entity]), " ")
		v, ok := NormalizeNumber(row[cols.Metric])
		if !ok || v <= 0 || name == "" {
			continue
		}
		ds = append(ds, Row{
			Country:     name,
			GDPBillions: math.Round(v/millionsPerBillion*100) / 100,
		})
	}
	return ds, nil
}
