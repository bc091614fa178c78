// ABOUTME: SQLite-backed document store using modernc.org/sqlite (pure Go, no CGO).
// ABOUTME: One documents table holds JSON payloads keyed by collection and id.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
    collection TEXT NOT NULL,
    id         TEXT NOT NULL,
    doc        TEXT NOT NULL,
    PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection);
`

type sqliteEngine struct {
	db *sql.DB
}

// OpenSQLite opens or creates a SQLite-backed document store at dbPath.
func OpenSQLite(dbPath string) (Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return newDocStore(&sqliteEngine{db: db}), nil
}

func (e *sqliteEngine) list(collection string) ([]item, error) {
	rows, err := e.db.Query(
		`SELECT id, doc FROM documents WHERE collection = ?`, collection)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var items []item
	for rows.Next() {
		var it item
		var doc string
		if err := rows.Scan(&it.id, &doc); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		it.data = []byte(doc)
		items = append(items, it)
	}
	return items, rows.Err()
}

func (e *sqliteEngine) put(collection, id string, data []byte) error {
	_, err := e.db.Exec(
		`INSERT OR REPLACE INTO documents (collection, id, doc) VALUES (?, ?, ?)`,
		collection, id, string(data))
	if err != nil {
		return fmt.Errorf("put document: %w", err)
	}
	return nil
}

func (e *sqliteEngine) close() error {
	if e.db != nil {
		return e.db.Close()
	}
	return nil
}
