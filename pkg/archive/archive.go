// Package archive persists a history of decoded and generated alerts to
// a SQLite database, grounded on the same schema/transaction/cleanup
// pattern used for message history elsewhere in this codebase's
// lineage.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Record is one archived decode or generate operation.
type Record struct {
	ID           int64
	CreatedAt    time.Time
	Direction    string // "decode" or "generate"
	Header       string
	Organization string
	Event        string
	Locations    string
	Sender       string
	Mode         string
	OutputPath   string
	Formatted    string
}

// Archive stores alert history in SQLite.
type Archive struct {
	db         *sql.DB
	path       string
	maxRecords int
}

// Open opens (creating if necessary) the SQLite database at path and
// prepares its schema. maxRecords <= 0 means no retention limit.
func Open(path string, maxRecords int) (*Archive, error) {
	if path == "" {
		path = "sameeas.db"
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create archive directory: %w", err)
		}
	}

	connStr := path + "?_busy_timeout=10000&_journal_mode=WAL&_foreign_keys=on"
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}

	a := &Archive{db: db, path: path, maxRecords: maxRecords}
	if err := a.createSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

func (a *Archive) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS alerts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		direction TEXT NOT NULL CHECK (direction IN ('decode', 'generate')),
		header TEXT NOT NULL DEFAULT '',
		organization TEXT NOT NULL DEFAULT '',
		event TEXT NOT NULL DEFAULT '',
		locations TEXT NOT NULL DEFAULT '',
		sender TEXT NOT NULL DEFAULT '',
		mode TEXT NOT NULL DEFAULT '',
		output_path TEXT NOT NULL DEFAULT '',
		formatted TEXT NOT NULL DEFAULT ''
	);
	`
	if _, err := a.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create archive schema: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_alerts_created_at ON alerts(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_alerts_direction ON alerts(direction)",
		"CREATE INDEX IF NOT EXISTS idx_alerts_event ON alerts(event)",
	}
	for _, idx := range indexes {
		if _, err := a.db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create archive index: %w", err)
		}
	}
	return nil
}

// RecordDecode archives the result of a successful header decode.
func (a *Archive) RecordDecode(header, organization, event, locations, sender, formatted string) error {
	return a.insert(Record{
		Direction:    "decode",
		Header:       header,
		Organization: organization,
		Event:        event,
		Locations:    locations,
		Sender:       sender,
		Formatted:    formatted,
	})
}

// RecordGenerate archives the result of a successful alert generation.
func (a *Archive) RecordGenerate(header, mode, outputPath string) error {
	return a.insert(Record{
		Direction:  "generate",
		Header:     header,
		Mode:       mode,
		OutputPath: outputPath,
	})
}

func (a *Archive) insert(r Record) error {
	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin archive transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO alerts (direction, header, organization, event, locations, sender, mode, output_path, formatted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.Direction, r.Header, r.Organization, r.Event, r.Locations, r.Sender, r.Mode, r.OutputPath, r.Formatted)
	if err != nil {
		return fmt.Errorf("failed to insert archive record: %w", err)
	}

	if err := a.cleanup(tx); err != nil {
		return fmt.Errorf("failed to cleanup archive: %w", err)
	}

	return tx.Commit()
}

func (a *Archive) cleanup(tx *sql.Tx) error {
	if a.maxRecords <= 0 {
		return nil
	}

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM alerts").Scan(&count); err != nil {
		return err
	}
	if count <= a.maxRecords {
		return nil
	}

	excess := count - a.maxRecords
	_, err := tx.Exec(`
		DELETE FROM alerts WHERE id IN (
			SELECT id FROM alerts ORDER BY created_at ASC LIMIT ?
		)
	`, excess)
	return err
}

// Query filters the alert history listing.
type Query struct {
	Direction string // "decode", "generate", or "" for both
	Since     *time.Time
	Limit     int
}

// List retrieves archived alerts matching q, newest first.
func (a *Archive) List(q Query) ([]Record, error) {
	sqlQuery := "SELECT id, created_at, direction, header, organization, event, locations, sender, mode, output_path, formatted FROM alerts WHERE 1=1"
	var args []interface{}

	if q.Direction != "" {
		sqlQuery += " AND direction = ?"
		args = append(args, q.Direction)
	}
	if q.Since != nil {
		sqlQuery += " AND created_at >= ?"
		args = append(args, q.Since)
	}
	sqlQuery += " ORDER BY created_at DESC, id DESC"
	if q.Limit > 0 {
		sqlQuery += " LIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := a.db.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Direction, &r.Header, &r.Organization,
			&r.Event, &r.Locations, &r.Sender, &r.Mode, &r.OutputPath, &r.Formatted); err != nil {
			return nil, fmt.Errorf("failed to scan archive record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Count returns the total number of archived records.
func (a *Archive) Count() (int, error) {
	var count int
	err := a.db.QueryRow("SELECT COUNT(*) FROM alerts").Scan(&count)
	return count, err
}

// Close closes the underlying database connection.
func (a *Archive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
