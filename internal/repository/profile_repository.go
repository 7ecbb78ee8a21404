package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/wheeltracker/backend/internal/model"
)

// ProfileRepository provides data access methods for the portfolio_info and
// portfolio_milestones tables.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository with the provided database connection.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetInfo retrieves the portfolio info row.
// Returns an empty PortfolioInfo (not an error) when none has been saved yet.
func (s *ProfileRepository) GetInfo() (model.PortfolioInfo, error) {
	query := `
		SELECT id, started_investing, philosophy, options_strategy, created_at, updated_at
		FROM portfolio_info
		LIMIT 1
	`

	var info model.PortfolioInfo
	var started, philosophy, strategy sql.NullString
	var createdAtStr, updatedAtStr string

	err := s.db.QueryRow(query).Scan(&info.ID, &started, &philosophy, &strategy, &createdAtStr, &updatedAtStr)
	if err == sql.ErrNoRows {
		return model.PortfolioInfo{}, nil
	}
	if err != nil {
		return model.PortfolioInfo{}, fmt.Errorf("failed to scan portfolio_info table results: %w", err)
	}

	info.StartedInvesting = started.String
	info.Philosophy = philosophy.String
	info.OptionsStrategy = strategy.String

	info.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.PortfolioInfo{}, fmt.Errorf("failed to parse date: %w", err)
	}
	info.UpdatedAt, err = ParseTime(updatedAtStr)
	if err != nil {
		return model.PortfolioInfo{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return info, nil
}

// SaveInfo creates or updates the single portfolio info row.
func (s *ProfileRepository) SaveInfo(ctx context.Context, info model.PortfolioInfo) error {
	var existingID string
	err := s.db.QueryRow("SELECT id FROM portfolio_info LIMIT 1").Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		query := `
			INSERT INTO portfolio_info (id, started_investing, philosophy, options_strategy)
			VALUES (?, ?, ?, ?)
		`
		_, err = s.db.ExecContext(ctx, query, uuid.New().String(), info.StartedInvesting, info.Philosophy, info.OptionsStrategy)
	case err != nil:
		return fmt.Errorf("failed to query portfolio_info table: %w", err)
	default:
		query := `
			UPDATE portfolio_info
			SET started_investing = ?, philosophy = ?, options_strategy = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`
		_, err = s.db.ExecContext(ctx, query, info.StartedInvesting, info.Philosophy, info.OptionsStrategy, existingID)
	}

	if err != nil {
		return fmt.Errorf("failed to save portfolio info: %w", err)
	}

	return nil
}

// GetMilestones retrieves all milestones ordered by sort order.
func (s *ProfileRepository) GetMilestones() ([]model.Milestone, error) {
	query := `
		SELECT id, amount, date_reached, time_to_reach, sort_order
		FROM portfolio_milestones
		ORDER BY sort_order ASC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio_milestones table: %w", err)
	}
	defer rows.Close()

	milestones := []model.Milestone{}
	for rows.Next() {
		var m model.Milestone
		var dateReached, timeToReach sql.NullString

		if err := rows.Scan(&m.ID, &m.Amount, &dateReached, &timeToReach, &m.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio_milestones table results: %w", err)
		}

		m.DateReached = dateReached.String
		m.TimeToReach = timeToReach.String
		milestones = append(milestones, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio_milestones table: %w", err)
	}

	return milestones, nil
}

// ReplaceMilestones replaces the full milestone list, preserving the given order.
func (s *ProfileRepository) ReplaceMilestones(ctx context.Context, milestones []model.Milestone) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM portfolio_milestones"); err != nil {
		return fmt.Errorf("failed to clear milestones: %w", err)
	}

	query := `
		INSERT INTO portfolio_milestones (id, amount, date_reached, time_to_reach, sort_order)
		VALUES (?, ?, ?, ?, ?)
	`
	for i, m := range milestones {
		if _, err := tx.ExecContext(ctx, query, uuid.New().String(), m.Amount, m.DateReached, m.TimeToReach, i); err != nil {
			return fmt.Errorf("failed to insert milestone: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit milestones: %w", err)
	}

	return nil
}
