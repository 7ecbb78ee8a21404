package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/wheeltracker/backend/internal/apperrors"
	"github.com/wheeltracker/backend/internal/model"
)

// PositionRepository provides data access methods for the positions table.
type PositionRepository struct {
	db *sql.DB
}

// NewPositionRepository creates a new PositionRepository with the provided database connection.
func NewPositionRepository(db *sql.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// GetByTicker retrieves a position by its uppercased ticker symbol.
// Returns apperrors.ErrPositionNotFound if no position exists for the ticker.
func (s *PositionRepository) GetByTicker(ticker string) (model.Position, error) {
	query := `
		SELECT id, ticker, shares_owned, cost_basis, current_price, created_at, updated_at
		FROM positions
		WHERE ticker = ?
	`
	return s.getPosition(query, strings.ToUpper(ticker))
}

// GetByID retrieves a position by its ID.
// Returns apperrors.ErrPositionNotFound if no position exists with the given ID.
func (s *PositionRepository) GetByID(positionID string) (model.Position, error) {
	query := `
		SELECT id, ticker, shares_owned, cost_basis, current_price, created_at, updated_at
		FROM positions
		WHERE id = ?
	`
	return s.getPosition(query, positionID)
}

func (s *PositionRepository) getPosition(query string, arg any) (model.Position, error) {
	var p model.Position
	var createdAtStr, updatedAtStr string

	err := s.db.QueryRow(query, arg).Scan(
		&p.ID,
		&p.Ticker,
		&p.SharesOwned,
		&p.CostBasis,
		&p.CurrentPrice,
		&createdAtStr,
		&updatedAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Position{}, apperrors.ErrPositionNotFound
	}
	if err != nil {
		return model.Position{}, fmt.Errorf("failed to scan positions table results: %w", err)
	}

	p.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Position{}, fmt.Errorf("failed to parse date: %w", err)
	}
	p.UpdatedAt, err = ParseTime(updatedAtStr)
	if err != nil {
		return model.Position{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return p, nil
}

// Insert creates a new position record. The ticker is stored uppercased.
func (s *PositionRepository) Insert(ctx context.Context, position *model.Position) error {
	query := `
		INSERT INTO positions (id, ticker, shares_owned, cost_basis, current_price)
		VALUES (?, ?, ?, ?, ?)
	`

	position.Ticker = strings.ToUpper(position.Ticker)

	_, err := s.db.ExecContext(ctx, query,
		position.ID,
		position.Ticker,
		position.SharesOwned,
		position.CostBasis,
		position.CurrentPrice,
	)
	if err != nil {
		return fmt.Errorf("failed to insert position: %w", err)
	}

	return nil
}

// UpdateHoldings updates a position's share count and optionally its cost basis and
// current price. Nil fields are left unchanged.
func (s *PositionRepository) UpdateHoldings(ctx context.Context, positionID string, shares *int, costBasis, currentPrice *float64) error {
	return updateHoldings(ctx, s.db, positionID, shares, costBasis, currentPrice)
}

// UpdateHoldingsTx is UpdateHoldings within an existing transaction.
func (s *PositionRepository) UpdateHoldingsTx(ctx context.Context, tx *sql.Tx, positionID string, shares *int, costBasis, currentPrice *float64) error {
	return updateHoldings(ctx, tx, positionID, shares, costBasis, currentPrice)
}

func updateHoldings(ctx context.Context, db execer, positionID string, shares *int, costBasis, currentPrice *float64) error {
	updates := []string{}
	args := []any{}

	if shares != nil {
		updates = append(updates, "shares_owned = ?")
		args = append(args, *shares)
	}
	if costBasis != nil {
		updates = append(updates, "cost_basis = ?")
		args = append(args, *costBasis)
	}
	if currentPrice != nil {
		updates = append(updates, "current_price = ?")
		args = append(args, *currentPrice)
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, positionID)

	query := "UPDATE positions SET " + strings.Join(updates, ", ") + " WHERE id = ?"

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPositionNotFound
	}

	return nil
}

// GetAllWithPremium retrieves all positions joined with their realized premium totals,
// ordered by total premium descending.
func (s *PositionRepository) GetAllWithPremium() ([]model.PositionSummary, error) {
	query := `
		SELECT
			p.id, p.ticker, p.shares_owned, p.cost_basis, p.current_price, p.created_at, p.updated_at,
			COALESCE(SUM(CASE WHEN t.type = 'CC' AND t.status != 'OPEN' THEN t.premium * t.quantity * 100 ELSE 0 END), 0) AS cc_premium,
			COALESCE(SUM(CASE WHEN t.type = 'CSP' AND t.status != 'OPEN' THEN t.premium * t.quantity * 100 ELSE 0 END), 0) AS csp_premium,
			COALESCE(SUM(CASE WHEN t.type IN ('CC', 'CSP') AND t.status != 'OPEN' THEN t.premium * t.quantity * 100 ELSE 0 END), 0) AS total_premium
		FROM positions p
		LEFT JOIN trades t ON p.id = t.position_id
		GROUP BY p.id
		ORDER BY total_premium DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions table: %w", err)
	}
	defer rows.Close()

	summaries := []model.PositionSummary{}
	for rows.Next() {
		var ps model.PositionSummary
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&ps.ID,
			&ps.Ticker,
			&ps.SharesOwned,
			&ps.CostBasis,
			&ps.CurrentPrice,
			&createdAtStr,
			&updatedAtStr,
			&ps.CCPremium,
			&ps.CSPPremium,
			&ps.TotalPremium,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan positions table results: %w", err)
		}

		ps.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		ps.UpdatedAt, err = ParseTime(updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		summaries = append(summaries, ps)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating positions table: %w", err)
	}

	return summaries, nil
}
