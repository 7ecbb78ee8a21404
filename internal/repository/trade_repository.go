package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wheeltracker/backend/internal/apperrors"
	"github.com/wheeltracker/backend/internal/model"
)

// realizedTradeFilter selects the trades that count towards premium totals:
// wheel trades (CC/CSP) that have left the OPEN state.
const realizedTradeFilter = "type IN ('CC', 'CSP') AND status != 'OPEN'"

// TradeRepository provides data access methods for the trades table.
// It handles the trade ledger plus the aggregated premium queries used by the
// period accounting engine.
type TradeRepository struct {
	db *sql.DB
}

// NewTradeRepository creates a new TradeRepository with the provided database connection.
func NewTradeRepository(db *sql.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// execer is satisfied by both *sql.DB and *sql.Tx, allowing writes to run
// standalone or inside a caller-owned transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// InsertTrade inserts a new trade record.
func (s *TradeRepository) InsertTrade(ctx context.Context, trade *model.Trade) error {
	return insertTrade(ctx, s.db, trade)
}

// InsertTradeTx inserts a new trade record within an existing transaction.
func (s *TradeRepository) InsertTradeTx(ctx context.Context, tx *sql.Tx, trade *model.Trade) error {
	return insertTrade(ctx, tx, trade)
}

func insertTrade(ctx context.Context, db execer, trade *model.Trade) error {
	query := `
		INSERT INTO trades (id, position_id, type, ticker, strike, expiration, premium, quantity, delta, status, notes, opened_at, closed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var expiration, closedAt any
	if trade.Expiration != nil {
		expiration = trade.Expiration.Format(DateLayout)
	}
	if trade.ClosedAt != nil {
		closedAt = trade.ClosedAt.Format(DateTimeLayout)
	}

	var notes any
	if trade.Notes != "" {
		notes = trade.Notes
	}

	_, err := db.ExecContext(ctx, query,
		trade.ID,
		trade.PositionID,
		trade.Type,
		trade.Ticker,
		trade.Strike,
		expiration,
		trade.Premium,
		trade.Quantity,
		trade.Delta,
		trade.Status,
		notes,
		trade.OpenedAt.Format(DateTimeLayout),
		closedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trade: %w", err)
	}

	return nil
}

// GetTrade retrieves a single trade by its ID.
// Returns apperrors.ErrTradeNotFound if no trade exists with the given ID.
func (s *TradeRepository) GetTrade(tradeID string) (model.Trade, error) {
	query := `
		SELECT id, position_id, type, ticker, strike, expiration, premium, quantity, delta, status, notes, opened_at, closed_at
		FROM trades
		WHERE id = ?
	`

	trade, err := scanTrade(s.db.QueryRow(query, tradeID))
	if err == sql.ErrNoRows {
		return model.Trade{}, apperrors.ErrTradeNotFound
	}
	if err != nil {
		return model.Trade{}, fmt.Errorf("failed to scan trades table results: %w", err)
	}

	return trade, nil
}

// GetTrades retrieves all trades, optionally filtered by status and type,
// ordered by opened_at descending (newest first).
func (s *TradeRepository) GetTrades(status, tradeType string) ([]model.Trade, error) {
	query := `
		SELECT id, position_id, type, ticker, strike, expiration, premium, quantity, delta, status, notes, opened_at, closed_at
		FROM trades
		WHERE 1=1
	`
	var args []any

	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}
	if tradeType != "" {
		query += " AND type = ?"
		args = append(args, tradeType)
	}

	query += " ORDER BY opened_at DESC"

	return s.queryTrades(query, args...)
}

// GetTradesForPosition retrieves all trades belonging to a position,
// ordered by opened_at descending.
func (s *TradeRepository) GetTradesForPosition(positionID string) ([]model.Trade, error) {
	query := `
		SELECT id, position_id, type, ticker, strike, expiration, premium, quantity, delta, status, notes, opened_at, closed_at
		FROM trades
		WHERE position_id = ?
		ORDER BY opened_at DESC
	`
	return s.queryTrades(query, positionID)
}

func (s *TradeRepository) queryTrades(query string, args ...any) ([]model.Trade, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades table: %w", err)
	}
	defer rows.Close()

	trades := []model.Trade{}
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trades table results: %w", err)
		}
		trades = append(trades, trade)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trades table: %w", err)
	}

	return trades, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (model.Trade, error) {
	var t model.Trade
	var positionID, expirationStr, closedAtStr, notes sql.NullString
	var strike, delta sql.NullFloat64
	var openedAtStr string

	err := row.Scan(
		&t.ID,
		&positionID,
		&t.Type,
		&t.Ticker,
		&strike,
		&expirationStr,
		&t.Premium,
		&t.Quantity,
		&delta,
		&t.Status,
		&notes,
		&openedAtStr,
		&closedAtStr,
	)
	if err != nil {
		return model.Trade{}, err
	}

	t.PositionID = positionID.String
	t.Notes = notes.String
	if strike.Valid {
		t.Strike = &strike.Float64
	}
	if delta.Valid {
		t.Delta = &delta.Float64
	}

	t.OpenedAt, err = ParseTime(openedAtStr)
	if err != nil {
		return model.Trade{}, err
	}
	if expirationStr.Valid {
		expiration, err := ParseTime(expirationStr.String)
		if err != nil {
			return model.Trade{}, err
		}
		t.Expiration = &expiration
	}
	if closedAtStr.Valid {
		closedAt, err := ParseTime(closedAtStr.String)
		if err != nil {
			return model.Trade{}, err
		}
		t.ClosedAt = &closedAt
	}

	return t, nil
}

// UpdateTradeStatus sets the status of a trade and, when provided, its closed_at timestamp.
func (s *TradeRepository) UpdateTradeStatus(ctx context.Context, tradeID, status string, closedAt *time.Time) error {
	query := "UPDATE trades SET status = ?"
	args := []any{status}

	if closedAt != nil {
		query += ", closed_at = ?"
		args = append(args, closedAt.Format(DateTimeLayout))
	}

	query += " WHERE id = ?"
	args = append(args, tradeID)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update trade status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTradeNotFound
	}

	return nil
}

// FirstTradeDate finds the earliest opened_at date among CC/CSP trades.
// This anchors week 1 and the trading year for all period accounting.
//
// Returns time.Time{} (zero value) if the ledger contains no CC/CSP trades.
func (s *TradeRepository) FirstTradeDate() (time.Time, error) {
	var firstDateStr sql.NullString

	query := `
		SELECT MIN(date(opened_at))
		FROM trades
		WHERE type IN ('CC', 'CSP')
	`

	err := s.db.QueryRow(query).Scan(&firstDateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query first trade date: %w", err)
	}
	if !firstDateStr.Valid {
		return time.Time{}, nil
	}

	firstDate, err := time.Parse(DateLayout, firstDateStr.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse first trade date: %w", err)
	}

	return firstDate, nil
}

// SumRealizedPremiumSince sums realized premium for trades opened on or after the given date.
func (s *TradeRepository) SumRealizedPremiumSince(start time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(premium * quantity * 100), 0)
		FROM trades
		WHERE ` + realizedTradeFilter + `
		AND date(opened_at) >= ?
	`
	return s.sumPremium(query, start.Format(DateLayout))
}

// SumRealizedPremiumForMonth sums realized premium for trades opened in the given calendar year-month.
func (s *TradeRepository) SumRealizedPremiumForMonth(year int, month time.Month) (float64, error) {
	query := `
		SELECT COALESCE(SUM(premium * quantity * 100), 0)
		FROM trades
		WHERE ` + realizedTradeFilter + `
		AND strftime('%Y-%m', opened_at) = ?
	`
	return s.sumPremium(query, fmt.Sprintf("%04d-%02d", year, month))
}

// SumRealizedPremiumForYear sums realized premium for trades opened in the given year.
func (s *TradeRepository) SumRealizedPremiumForYear(year int) (float64, error) {
	query := `
		SELECT COALESCE(SUM(premium * quantity * 100), 0)
		FROM trades
		WHERE ` + realizedTradeFilter + `
		AND strftime('%Y', opened_at) = ?
	`
	return s.sumPremium(query, fmt.Sprintf("%04d", year))
}

func (s *TradeRepository) sumPremium(query string, args ...any) (float64, error) {
	var total float64
	if err := s.db.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum realized premium: %w", err)
	}
	return total, nil
}

// YearlyRealizedPremium returns realized premium totals for every year present in the ledger,
// keyed by 4-digit year string.
func (s *TradeRepository) YearlyRealizedPremium() (map[string]float64, error) {
	query := `
		SELECT strftime('%Y', opened_at) AS year,
		       COALESCE(SUM(premium * quantity * 100), 0) AS total
		FROM trades
		WHERE ` + realizedTradeFilter + `
		GROUP BY year
		ORDER BY year DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query yearly premium: %w", err)
	}
	defer rows.Close()

	yearly := make(map[string]float64)
	for rows.Next() {
		var year string
		var total float64
		if err := rows.Scan(&year, &total); err != nil {
			return nil, fmt.Errorf("failed to scan yearly premium results: %w", err)
		}
		yearly[year] = total
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating yearly premium results: %w", err)
	}

	return yearly, nil
}

// TopTickersForMonth ranks tickers by realized premium for trades opened in the given
// calendar year-month. Ties are broken by ticker ascending so the ranking is deterministic.
func (s *TradeRepository) TopTickersForMonth(year int, month time.Month, limit int) ([]model.TickerPremium, error) {
	return s.topTickers("strftime('%Y-%m', opened_at) = ?", fmt.Sprintf("%04d-%02d", year, month), limit)
}

// TopTickersForYear ranks tickers by realized premium for trades opened in the given calendar year.
// Ties are broken by ticker ascending so the ranking is deterministic.
func (s *TradeRepository) TopTickersForYear(year int, limit int) ([]model.TickerPremium, error) {
	return s.topTickers("strftime('%Y', opened_at) = ?", fmt.Sprintf("%04d", year), limit)
}

func (s *TradeRepository) topTickers(dateFilter, dateArg string, limit int) ([]model.TickerPremium, error) {
	query := `
		SELECT ticker,
		       COALESCE(SUM(premium * quantity * 100), 0) AS total_premium
		FROM trades
		WHERE ` + realizedTradeFilter + `
		AND ` + dateFilter + `
		GROUP BY ticker
		ORDER BY total_premium DESC, ticker ASC
		LIMIT ?
	`

	rows, err := s.db.Query(query, dateArg, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top tickers: %w", err)
	}
	defer rows.Close()

	performers := []model.TickerPremium{}
	for rows.Next() {
		var p model.TickerPremium
		if err := rows.Scan(&p.Ticker, &p.TotalPremium); err != nil {
			return nil, fmt.Errorf("failed to scan top ticker results: %w", err)
		}
		performers = append(performers, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top ticker results: %w", err)
	}

	return performers, nil
}
