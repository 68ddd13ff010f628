// Package pipeline wires fetching, extraction, cleaning and persistence
// into a single strictly sequential run. There is no partial success: any
// fatal error aborts the run before the sinks are touched.
package pipeline

import (
	"context"
	"fmt"

	"github.com/jmylchreest/econotab/internal/config"
	"github.com/jmylchreest/econotab/internal/logger"
	"github.com/jmylchreest/econotab/internal/scraper"
	"github.com/jmylchreest/econotab/internal/sink"
	"github.com/jmylchreest/econotab/internal/tabular"
)

// Result summarizes a completed run for reporting.
type Result struct {
	TableIndex   int
	TableRows    int
	Dataset      tabular.Dataset
	TopEconomies tabular.Dataset // query result, largest first
	CSVPath      string
	DBPath       string
}

// Runner executes the ETL pipeline.
type Runner struct {
	cfg     config.Run
	fetcher scraper.Fetcher
}

// New creates a Runner. A nil fetcher gets the default static fetcher.
func New(cfg config.Run, fetcher scraper.Fetcher) *Runner {
	if fetcher == nil {
		fetcher = scraper.NewStaticFetcher(scraper.FetcherConfig{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		})
	}
	return &Runner{cfg: cfg, fetcher: fetcher}
}

// Run executes fetch → extract → select → build → persist → query.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	cfg := r.cfg

	logger.Info("fetching source page", "url", cfg.URL)
	page, err := r.fetcher.Fetch(ctx, cfg.URL, scraper.FetchOptions{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", cfg.URL, err)
	}
	logger.Info("page fetched", "status", page.StatusCode, "bytes", len(page.HTML))

	tables, err := scraper.ExtractTables(page.HTML, cfg.TableClass)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	logger.Debug("candidate tables", "count", len(tables))

	table, err := tabular.SelectTable(tables, cfg.MinRows)
	if err != nil {
		return nil, err
	}
	logger.Info("data table selected", "table", table.Index, "rows", len(table.Rows))

	ds, err := tabular.BuildDataset(table)
	if err != nil {
		return nil, err
	}
	logger.Info("dataset built", "rows", len(ds))

	if err := sink.ExportCSV(cfg.CSVPath, ds); err != nil {
		return nil, err
	}
	logger.Info("csv written", "path", cfg.CSVPath)

	db, err := sink.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.Replace(ds); err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.DBPath, err)
	}
	logger.Info("database loaded", "path", cfg.DBPath, "table", sink.TableName)

	top, err := db.EconomiesAbove(cfg.Threshold)
	if err != nil {
		return nil, err
	}
	logger.Info("query executed", "threshold", cfg.Threshold, "rows", len(top))

	return &Result{
		TableIndex:   table.Index,
		TableRows:    len(table.Rows),
		Dataset:      ds,
		TopEconomies: top,
		CSVPath:      cfg.CSVPath,
		DBPath:       cfg.DBPath,
	}, nil
}

// Close releases the runner's fetcher.
func (r *Runner) Close() error {
	return r.fetcher.Close()
}
