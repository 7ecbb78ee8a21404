package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wheeltracker/backend/internal/model"
)

// SnapshotRepository provides data access methods for the snapshots table.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Upsert stores a snapshot for its date, replacing any existing snapshot for that day.
func (s *SnapshotRepository) Upsert(ctx context.Context, snapshot *model.Snapshot) error {
	query := `
		INSERT OR REPLACE INTO snapshots (id, snapshot_date, portfolio_value, options_pnl)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		snapshot.ID,
		snapshot.SnapshotDate.Format(DateLayout),
		snapshot.PortfolioValue,
		snapshot.OptionsPnL,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// GetSince retrieves snapshots for the last N days, oldest first.
func (s *SnapshotRepository) GetSince(days int) ([]model.Snapshot, error) {
	query := `
		SELECT id, snapshot_date, portfolio_value, options_pnl, created_at
		FROM snapshots
		WHERE snapshot_date >= date('now', ?)
		ORDER BY snapshot_date ASC
	`

	rows, err := s.db.Query(query, fmt.Sprintf("-%d days", days))
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.Snapshot{}
	for rows.Next() {
		var snap model.Snapshot
		var dateStr, createdAtStr string

		err := rows.Scan(&snap.ID, &dateStr, &snap.PortfolioValue, &snap.OptionsPnL, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshots table results: %w", err)
		}

		snap.SnapshotDate, err = ParseTime(dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		snap.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		snapshots = append(snapshots, snap)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots table: %w", err)
	}

	return snapshots, nil
}
