package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wheeltracker/backend/internal/apperrors"
)

// SettingRepository provides data access methods for the settings table.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository with the provided database connection.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get retrieves a setting value by key.
// Returns apperrors.ErrSettingNotFound if the key does not exist.
func (s *SettingRepository) Get(key string) (string, error) {
	var value string

	err := s.db.QueryRow(`SELECT value FROM settings WHERE "key" = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query settings table: %w", err)
	}

	return value, nil
}

// Set stores a setting value, replacing any existing value for the key.
func (s *SettingRepository) Set(ctx context.Context, key, value string) error {
	query := `INSERT OR REPLACE INTO settings ("key", value) VALUES (?, ?)`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	return nil
}

// All retrieves every setting as a key -> value map.
func (s *SettingRepository) All() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT "key", value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings table: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan settings table results: %w", err)
		}
		settings[key] = value
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings table: %w", err)
	}

	return settings, nil
}
