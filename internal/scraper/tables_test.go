package scraper

import (
	"reflect"
	"testing"
)

const gdpPageHTML = `<!DOCTYPE html>
<html><body>
<table class="infobox">
<tr><th>About</th></tr>
<tr><td>Not the data table</td></tr>
</table>
<table class="wikitable sortable">
<thead>
<tr>
  <th rowspan="2">Country/Territory</th>
  <th rowspan="2">UN&nbsp;region</th>
  <th colspan="2">IMF</th>
  <th colspan="2">World Bank</th>
</tr>
<tr>
  <th>Estimate</th><th>Year</th>
  <th>Estimate</th><th>Year</th>
</tr>
</thead>
<tbody>
<tr><td>World</td><td>—</td><td>105,568,776</td><td>2023</td><td>100,562,011</td><td>2022</td></tr>
<tr><td>United States</td><td>Americas</td><td>26,854,599</td><td>2023</td><td>25,462,700</td><td>2022</td></tr>
<tr><td>China</td><td>Asia</td><td>19,373,586</td><td>2023</td><td>17,963,171</td><td>2022</td></tr>
</tbody>
</table>
</body></html>`

func TestExtractTables_ClassFilter(t *testing.T) {
	tables, err := ExtractTables(gdpPageHTML, "wikitable")
	if err != nil {
		t.Fatalf("ExtractTables() error = %v", err)
	}

	if len(tables) != 1 {
		t.Fatalf("expected 1 wikitable, got %d", len(tables))
	}
}

func TestExtractTables_NoFilter(t *testing.T) {
	tables, err := ExtractTables(gdpPageHTML, "")
	if err != nil {
		t.Fatalf("ExtractTables() error = %v", err)
	}

	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}

	// Document order
	if tables[0].Index != 0 || tables[1].Index != 1 {
		t.Errorf("tables not in document order: %d, %d", tables[0].Index, tables[1].Index)
	}
}

func TestExtractTables_CompositeHeader(t *testing.T) {
	tables, err := ExtractTables(gdpPageHTML, "wikitable")
	if err != nil {
		t.Fatalf("ExtractTables() error = %v", err)
	}

	want := []string{
		"Country/Territory", "UN region",
		"IMF Estimate", "IMF Year",
		"World Bank Estimate", "World Bank Year",
	}
	if !reflect.DeepEqual(tables[0].Header, want) {
		t.Errorf("header = %v, want %v", tables[0].Header, want)
	}
}

func TestExtractTables_Rows(t *testing.T) {
	tables, err := ExtractTables(gdpPageHTML, "wikitable")
	if err != nil {
		t.Fatalf("ExtractTables() error = %v", err)
	}

	rows := tables[0].Rows
	if len(rows) != 3 {
		t.Fatalf("expected 3 data rows, got %d", len(rows))
	}

	want := []string{"United States", "Americas", "26,854,599", "2023", "25,462,700", "2022"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("row = %v, want %v", rows[1], want)
	}
}

func TestExtractTables_NestedTableRowsSkipped(t *testing.T) {
	html := `<table class="wikitable">
<tr><th>Country</th><th>IMF Estimate</th></tr>
<tr><td>Alpha<table><tr><td>nested</td></tr></table></td><td>1,000</td></tr>
</table>`

	tables, err := ExtractTables(html, "wikitable")
	if err != nil {
		t.Fatalf("ExtractTables() error = %v", err)
	}

	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if len(tables[0].Rows) != 1 {
		t.Errorf("nested table rows should not count, got %d rows", len(tables[0].Rows))
	}
}

func TestExtractTables_NoMatches(t *testing.T) {
	tables, err := ExtractTables("<html><body><p>nothing here</p></body></html>", "wikitable")
	if err != nil {
		t.Fatalf("ExtractTables() error = %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("expected no tables, got %d", len(tables))
	}
}
