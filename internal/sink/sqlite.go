package sink

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jmylchreest/econotab/internal/tabular"
)

// TableName is the relational export table.
const TableName = "Countries_by_GDP"

// DB wraps the SQLite database used for the relational export.
type DB struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Replace drops and recreates the export table, then loads the dataset in
// a single transaction. Drop-and-recreate keeps repeated runs from
// accumulating rows.
func (d *DB) Replace(ds tabular.Dataset) error {
	tx, err := d.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DROP TABLE IF EXISTS ` + TableName); err != nil {
		return err
	}
	if _, err := tx.Exec(`CREATE TABLE ` + TableName + ` (Country TEXT, GDP_USD_billion REAL)`); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO ` + TableName + ` (Country, GDP_USD_billion) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range ds {
		if _, err := stmt.Exec(row.Country, row.GDPBillions); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// EconomiesAbove returns the countries whose GDP exceeds threshold (in
// billions USD), largest first.
func (d *DB) EconomiesAbove(threshold float64) (tabular.Dataset, error) {
	var out tabular.Dataset
	err := d.db.Select(&out,
		`SELECT Country, GDP_USD_billion FROM `+TableName+
			` WHERE GDP_USD_billion > ? ORDER BY GDP_USD_billion DESC`, threshold)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", TableName, err)
	}
	return out, nil
}
