package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"confex/internal/domain"
	"confex/internal/ports"
)

// ManifestFile is the manifest database name inside the export root.
const ManifestFile = ".confex-manifest.db"

// Manifest implements ports.ExportManifest using SQLite. One row per
// exported page per run; re-exporting a page updates its row.
type Manifest struct {
	db *sql.DB
}

// Ensure Manifest implements ExportManifest
var _ ports.ExportManifest = (*Manifest)(nil)

// OpenManifest opens the manifest database inside outputDir, creating the
// schema if needed. The directory must already exist.
func OpenManifest(outputDir string) (*Manifest, error) {
	db, err := sql.Open("sqlite3", filepath.Join(outputDir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS exports (
			page_id     TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			path        TEXT NOT NULL,
			depth       INTEGER NOT NULL,
			exported_at TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create manifest schema: %w", err)
	}

	return &Manifest{db: db}, nil
}

// Record upserts one exported page.
func (m *Manifest) Record(entry domain.ExportEntry) error {
	_, err := m.db.Exec(`
		INSERT INTO exports (page_id, title, path, depth, exported_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(page_id) DO UPDATE SET
			title = excluded.title,
			path = excluded.path,
			depth = excluded.depth,
			exported_at = excluded.exported_at
	`, entry.PageID, entry.Title, entry.Path, entry.Depth, entry.ExportedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to record page %s: %w", entry.PageID, err)
	}
	return nil
}

// Entries returns all recorded exports ordered by path.
func (m *Manifest) Entries() ([]domain.ExportEntry, error) {
	rows, err := m.db.Query(`SELECT page_id, title, path, depth, exported_at FROM exports ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("failed to query manifest: %w", err)
	}
	defer rows.Close()

	var entries []domain.ExportEntry
	for rows.Next() {
		var e domain.ExportEntry
		var exportedAt string
		if err := rows.Scan(&e.PageID, &e.Title, &e.Path, &e.Depth, &exportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan manifest row: %w", err)
		}
		e.ExportedAt, _ = time.Parse(time.RFC3339, exportedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the underlying database.
func (m *Manifest) Close() error {
	return m.db.Close()
}
