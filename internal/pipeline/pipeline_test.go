package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/econotab/internal/config"
	"github.com/jmylchreest/econotab/internal/tabular"
)

const testPage = `<!DOCTYPE html>
<html><body>
<h1>Economies</h1>
<table class="wikitable">
<tr><th>Country</th><th>GDP (million US$)</th></tr>
<tr><td>Alpha</td><td>1,500,000</td></tr>
<tr><td>Beta</td><td>50,000</td></tr>
<tr><td>Gamma</td><td>&#8212;</td></tr>
</table>
</body></html>`

func testConfig(t *testing.T, url string) config.Run {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.URL = url
	cfg.Timeout = 5 * time.Second
	cfg.CSVPath = filepath.Join(dir, "Countries_by_GDP.csv")
	cfg.DBPath = filepath.Join(dir, "World_Economies.db")
	return cfg
}

func TestRunner_Run_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(testPage))
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	runner := New(cfg, nil)
	defer runner.Close()

	result, err := runner.Run(context.Background())
	require.NoError(t, err)

	// Placeholder row dropped, values rescaled to billions
	assert.Equal(t, tabular.Dataset{
		{Country: "Alpha", GDPBillions: 1500.00},
		{Country: "Beta", GDPBillions: 50.00},
	}, result.Dataset)

	// Query keeps only economies above the 100 billion threshold
	assert.Equal(t, tabular.Dataset{
		{Country: "Alpha", GDPBillions: 1500.00},
	}, result.TopEconomies)

	csvBytes, err := os.ReadFile(cfg.CSVPath)
	require.NoError(t, err)
	assert.Equal(t, "Country,GDP_USD_billion\nAlpha,1500\nBeta,50\n", string(csvBytes))
}

func TestRunner_Run_Idempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testPage))
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)

	run := func() ([]byte, tabular.Dataset) {
		runner := New(cfg, nil)
		defer runner.Close()
		result, err := runner.Run(context.Background())
		require.NoError(t, err)
		csvBytes, err := os.ReadFile(cfg.CSVPath)
		require.NoError(t, err)
		return csvBytes, result.TopEconomies
	}

	firstCSV, firstTop := run()
	secondCSV, secondTop := run()

	assert.Equal(t, firstCSV, secondCSV, "CSV must be byte-identical across runs")
	assert.Equal(t, firstTop, secondTop)
}

func TestRunner_Run_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	runner := New(cfg, nil)
	defer runner.Close()

	_, err := runner.Run(context.Background())
	require.Error(t, err)

	// Nothing persisted on a fatal fetch
	_, statErr := os.Stat(cfg.CSVPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunner_Run_NoCandidateTables(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>no tables</p></body></html>"))
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	runner := New(cfg, nil)
	defer runner.Close()

	_, err := runner.Run(context.Background())
	assert.ErrorIs(t, err, tabular.ErrNoCandidates)
}
