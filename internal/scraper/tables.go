package scraper

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jmylchreest/econotab/internal/tabular"
)

// ExtractTables enumerates table elements whose class matches classFilter
// (all tables when empty) and lifts each into a tabular.Table, in document
// order. Multi-row headers are expanded by colspan/rowspan so the column
// positions line up, then joined column-wise into composite names like
// "IMF Estimate".
func ExtractTables(html string, classFilter string) ([]tabular.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	selector := "table"
	if classFilter != "" {
		selector = "table." + classFilter
	}

	var tables []tabular.Table
	doc.Find(selector).Each(func(i int, sel *goquery.Selection) {
		tables = append(tables, liftTable(i, sel))
	})

	return tables, nil
}

// carried tracks a rowspan cell occupying a column in later rows.
type carried struct {
	text string
	rows int
}

func liftTable(index int, table *goquery.Selection) tabular.Table {
	tableNode := table.Get(0)
	carry := make(map[int]*carried)

	var grid [][]string
	headerRows := 0
	headerDone := false

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		// Skip rows that belong to a nested table
		if tr.Closest("table").Get(0) != tableNode {
			return
		}

		cells := tr.ChildrenFiltered("th, td")
		if cells.Length() == 0 {
			return
		}

		var out []string
		col := 0

		consumeCarried := func() {
			for {
				c, ok := carry[col]
				if !ok {
					return
				}
				out = append(out, c.text)
				c.rows--
				if c.rows == 0 {
					delete(carry, col)
				}
				col++
			}
		}

		isHeader := true
		cells.Each(func(_ int, cell *goquery.Selection) {
			if goquery.NodeName(cell) == "td" {
				isHeader = false
			}
			consumeCarried()

			text := cleanText(cell.Text())
			colspan := spanAttr(cell, "colspan")
			rowspan := spanAttr(cell, "rowspan")
			for k := 0; k < colspan; k++ {
				out = append(out, text)
				if rowspan > 1 {
					carry[col] = &carried{text: text, rows: rowspan - 1}
				}
				col++
			}
		})
		consumeCarried()

		if isHeader && !headerDone {
			headerRows++
		} else {
			headerDone = true
		}
		grid = append(grid, out)
	})

	width := 0
	for _, r := range grid {
		if len(r) > width {
			width = len(r)
		}
	}

	header := make([]string, width)
	for c := 0; c < width; c++ {
		var parts []string
		for r := 0; r < headerRows; r++ {
			if c >= len(grid[r]) || grid[r][c] == "" {
				continue
			}
			// A rowspan cell repeats in every row it covers; keep one copy
			if len(parts) > 0 && parts[len(parts)-1] == grid[r][c] {
				continue
			}
			parts = append(parts, grid[r][c])
		}
		header[c] = strings.Join(parts, " ")
	}

	return tabular.Table{
		Index:  index,
		Header: header,
		Rows:   grid[headerRows:],
	}
}

// cleanText normalizes whitespace in text.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func spanAttr(cell *goquery.Selection, name string) int {
	v, err := strconv.Atoi(strings.TrimSpace(cell.AttrOr(name, "")))
	if err != nil || v < 1 {
		return 1
	}
	return v
}
