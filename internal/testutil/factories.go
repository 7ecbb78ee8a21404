package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/wheeltracker/backend/internal/model"
)

// PositionBuilder provides a fluent interface for creating test positions.
//
// Example usage:
//
//	// Simple creation with defaults
//	position := testutil.NewPosition().Build(t, db)
//
//	// Customized position
//	position := testutil.NewPosition().
//	    WithTicker("SOFI").
//	    WithShares(300, 7.80).
//	    Build(t, db)
type PositionBuilder struct {
	ID           string
	Ticker       string
	SharesOwned  int
	CostBasis    float64
	CurrentPrice float64
}

// NewPosition creates a PositionBuilder with sensible defaults.
func NewPosition() *PositionBuilder {
	return &PositionBuilder{
		ID:     MakeID(),
		Ticker: "AAPL",
	}
}

// WithID sets a custom ID.
func (b *PositionBuilder) WithID(id string) *PositionBuilder {
	b.ID = id
	return b
}

// WithTicker sets a custom ticker.
func (b *PositionBuilder) WithTicker(ticker string) *PositionBuilder {
	b.Ticker = ticker
	return b
}

// WithShares sets the share count and cost basis.
func (b *PositionBuilder) WithShares(shares int, costBasis float64) *PositionBuilder {
	b.SharesOwned = shares
	b.CostBasis = costBasis
	return b
}

// WithCurrentPrice sets the last known share price.
func (b *PositionBuilder) WithCurrentPrice(price float64) *PositionBuilder {
	b.CurrentPrice = price
	return b
}

// Build creates the position in the database and returns it.
func (b *PositionBuilder) Build(t *testing.T, db *sql.DB) model.Position {
	t.Helper()

	query := `
		INSERT INTO positions (id, ticker, shares_owned, cost_basis, current_price)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Ticker, b.SharesOwned, b.CostBasis, b.CurrentPrice)
	if err != nil {
		t.Fatalf("Failed to create test position: %v", err)
	}

	return model.Position{
		ID:           b.ID,
		Ticker:       b.Ticker,
		SharesOwned:  b.SharesOwned,
		CostBasis:    b.CostBasis,
		CurrentPrice: b.CurrentPrice,
	}
}

// TradeBuilder provides a fluent interface for creating test trades.
//
// Example usage:
//
//	// Realized CSP opened 3 weeks ago
//	trade := testutil.NewTrade().
//	    WithTicker("AAPL").
//	    WithType("CSP").
//	    WithPremium(2.50, 1).
//	    WithStatus("EXPIRED").
//	    OpenedAt(time.Now().UTC().AddDate(0, 0, -21)).
//	    Build(t, db)
type TradeBuilder struct {
	ID         string
	PositionID string
	Type       string
	Ticker     string
	Strike     *float64
	Expiration *time.Time
	Premium    float64
	Quantity   int
	Status     string
	Notes      string
	Opened     time.Time
	Closed     *time.Time
}

// NewTrade creates a TradeBuilder with sensible defaults: an OPEN CSP for one
// contract opened now.
func NewTrade() *TradeBuilder {
	return &TradeBuilder{
		ID:       MakeID(),
		Type:     model.TradeTypeCSP,
		Ticker:   "AAPL",
		Premium:  1.00,
		Quantity: 1,
		Status:   model.TradeStatusOpen,
		Opened:   time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *TradeBuilder) WithID(id string) *TradeBuilder {
	b.ID = id
	return b
}

// WithPosition links the trade to a position.
func (b *TradeBuilder) WithPosition(positionID string) *TradeBuilder {
	b.PositionID = positionID
	return b
}

// WithType sets the trade type.
func (b *TradeBuilder) WithType(tradeType string) *TradeBuilder {
	b.Type = tradeType
	return b
}

// WithTicker sets the ticker.
func (b *TradeBuilder) WithTicker(ticker string) *TradeBuilder {
	b.Ticker = ticker
	return b
}

// WithStrike sets the strike price.
func (b *TradeBuilder) WithStrike(strike float64) *TradeBuilder {
	b.Strike = &strike
	return b
}

// WithExpiration sets the expiration date.
func (b *TradeBuilder) WithExpiration(expiration time.Time) *TradeBuilder {
	b.Expiration = &expiration
	return b
}

// WithPremium sets the per-share premium and contract count.
func (b *TradeBuilder) WithPremium(premium float64, quantity int) *TradeBuilder {
	b.Premium = premium
	b.Quantity = quantity
	return b
}

// WithStatus sets the trade status.
func (b *TradeBuilder) WithStatus(status string) *TradeBuilder {
	b.Status = status
	return b
}

// OpenedAt sets the open timestamp.
func (b *TradeBuilder) OpenedAt(openedAt time.Time) *TradeBuilder {
	b.Opened = openedAt
	return b
}

// ClosedAt sets the close timestamp.
func (b *TradeBuilder) ClosedAt(closedAt time.Time) *TradeBuilder {
	b.Closed = &closedAt
	return b
}

// Expired marks the trade as expired worthless (premium fully realized).
func (b *TradeBuilder) Expired() *TradeBuilder {
	b.Status = model.TradeStatusExpired
	return b
}

// Build creates the trade in the database and returns it.
func (b *TradeBuilder) Build(t *testing.T, db *sql.DB) model.Trade {
	t.Helper()

	query := `
		INSERT INTO trades (id, position_id, type, ticker, strike, expiration, premium, quantity, status, notes, opened_at, closed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var positionID any
	if b.PositionID != "" {
		positionID = b.PositionID
	}

	var expiration, closedAt any
	if b.Expiration != nil {
		expiration = b.Expiration.Format("2006-01-02")
	}
	if b.Closed != nil {
		closedAt = b.Closed.Format("2006-01-02 15:04:05")
	}

	_, err := db.Exec(query,
		b.ID,
		positionID,
		b.Type,
		b.Ticker,
		b.Strike,
		expiration,
		b.Premium,
		b.Quantity,
		b.Status,
		b.Notes,
		b.Opened.Format("2006-01-02 15:04:05"),
		closedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create test trade: %v", err)
	}

	trade := model.Trade{
		ID:         b.ID,
		PositionID: b.PositionID,
		Type:       b.Type,
		Ticker:     b.Ticker,
		Strike:     b.Strike,
		Expiration: b.Expiration,
		Premium:    b.Premium,
		Quantity:   b.Quantity,
		Status:     b.Status,
		Notes:      b.Notes,
		OpenedAt:   b.Opened,
		ClosedAt:   b.Closed,
	}

	return trade
}

// Convenience functions

// CreateRealizedTrade creates a non-OPEN wheel trade opened on the given date,
// so it counts towards premium totals.
func CreateRealizedTrade(t *testing.T, db *sql.DB, ticker, tradeType string, premium float64, quantity int, openedAt time.Time) model.Trade {
	t.Helper()
	return NewTrade().
		WithTicker(ticker).
		WithType(tradeType).
		WithPremium(premium, quantity).
		Expired().
		OpenedAt(openedAt).
		Build(t, db)
}
