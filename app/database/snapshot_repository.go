package database

import (
	"database/sql"
	"fmt"
)

var _ SnapshotRepository = (*SQLSnapshotRepository)(nil)

// SQLSnapshotRepository stores state snapshots as JSON strings keyed by a
// fixed snapshot key, one row per persisted state slice.
type SQLSnapshotRepository struct {
	db *DB
}

func NewSnapshotRepository(db *DB) *SQLSnapshotRepository {
	return &SQLSnapshotRepository{db: db}
}

// Get returns the stored value for key. The second return reports whether
// the key was present.
func (r *SQLSnapshotRepository) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes the value for key, replacing any previous snapshot.
func (r *SQLSnapshotRepository) Set(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO snapshots (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot for key. Deleting an absent key is not an
// error.
func (r *SQLSnapshotRepository) Delete(key string) error {
	if _, err := r.db.Exec(`DELETE FROM snapshots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", key, err)
	}
	return nil
}
