// Package demo seeds the demo database with a sample wheel ledger so the
// application has data to display when running in demo mode.
package demo

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/wheeltracker/backend/internal/model"
	"github.com/wheeltracker/backend/internal/repository"
)

// Seeder populates an empty demo database with sample positions and trades.
type Seeder struct {
	positionRepo *repository.PositionRepository
	tradeRepo    *repository.TradeRepository
}

// NewSeeder creates a new Seeder with the provided repository dependencies.
func NewSeeder(positionRepo *repository.PositionRepository, tradeRepo *repository.TradeRepository) *Seeder {
	return &Seeder{
		positionRepo: positionRepo,
		tradeRepo:    tradeRepo,
	}
}

// sampleTrade describes one seeded trade relative to today.
type sampleTrade struct {
	ticker    string
	tradeType string
	strike    float64
	premium   float64
	quantity  int
	status    string
	weeksAgo  int
}

// samplePosition describes one seeded share holding.
type samplePosition struct {
	ticker       string
	sharesOwned  int
	costBasis    float64
	currentPrice float64
}

// Seed populates the database with a sample ledger. It is a no-op when any
// trades already exist, so restarting in demo mode never duplicates data.
func (s *Seeder) Seed(ctx context.Context) error {
	trades, err := s.tradeRepo.GetTrades("", "")
	if err != nil {
		return fmt.Errorf("failed to check for existing trades: %w", err)
	}
	if len(trades) > 0 {
		return nil
	}

	log.Println("Seeding demo data...")

	positions := []samplePosition{
		{ticker: "AAPL", sharesOwned: 100, costBasis: 185.50, currentPrice: 192.30},
		{ticker: "SOFI", sharesOwned: 300, costBasis: 7.80, currentPrice: 8.45},
		{ticker: "PLTR", sharesOwned: 0, costBasis: 0, currentPrice: 24.10},
		{ticker: "F", sharesOwned: 200, costBasis: 11.25, currentPrice: 12.05},
	}

	positionIDs := make(map[string]string, len(positions))
	for _, p := range positions {
		position := model.Position{
			ID:           uuid.New().String(),
			Ticker:       p.ticker,
			SharesOwned:  p.sharesOwned,
			CostBasis:    p.costBasis,
			CurrentPrice: p.currentPrice,
		}
		if err := s.positionRepo.Insert(ctx, &position); err != nil {
			return fmt.Errorf("failed to seed position %s: %w", p.ticker, err)
		}
		positionIDs[p.ticker] = position.ID
	}

	samples := []sampleTrade{
		{ticker: "AAPL", tradeType: model.TradeTypeCSP, strike: 185, premium: 2.40, quantity: 1, status: model.TradeStatusAssigned, weeksAgo: 9},
		{ticker: "AAPL", tradeType: model.TradeTypeCC, strike: 195, premium: 1.85, quantity: 1, status: model.TradeStatusExpired, weeksAgo: 7},
		{ticker: "AAPL", tradeType: model.TradeTypeCC, strike: 197.5, premium: 1.60, quantity: 1, status: model.TradeStatusClosed, weeksAgo: 3},
		{ticker: "AAPL", tradeType: model.TradeTypeCC, strike: 200, premium: 1.20, quantity: 1, status: model.TradeStatusOpen, weeksAgo: 0},
		{ticker: "SOFI", tradeType: model.TradeTypeCSP, strike: 8, premium: 0.25, quantity: 3, status: model.TradeStatusAssigned, weeksAgo: 8},
		{ticker: "SOFI", tradeType: model.TradeTypeCC, strike: 9, premium: 0.18, quantity: 3, status: model.TradeStatusExpired, weeksAgo: 5},
		{ticker: "SOFI", tradeType: model.TradeTypeCC, strike: 9, premium: 0.22, quantity: 3, status: model.TradeStatusOpen, weeksAgo: 0},
		{ticker: "PLTR", tradeType: model.TradeTypeCSP, strike: 22, premium: 0.55, quantity: 2, status: model.TradeStatusExpired, weeksAgo: 6},
		{ticker: "PLTR", tradeType: model.TradeTypeCSP, strike: 23, premium: 0.48, quantity: 2, status: model.TradeStatusClosed, weeksAgo: 2},
		{ticker: "PLTR", tradeType: model.TradeTypeCSP, strike: 23, premium: 0.52, quantity: 2, status: model.TradeStatusOpen, weeksAgo: 0},
		{ticker: "F", tradeType: model.TradeTypeCSP, strike: 11.5, premium: 0.20, quantity: 2, status: model.TradeStatusAssigned, weeksAgo: 10},
		{ticker: "F", tradeType: model.TradeTypeCC, strike: 12.5, premium: 0.15, quantity: 2, status: model.TradeStatusExpired, weeksAgo: 4},
		{ticker: "F", tradeType: model.TradeTypeCC, strike: 13, premium: 0.12, quantity: 2, status: model.TradeStatusOpen, weeksAgo: 1},
	}

	now := time.Now().UTC()
	for _, sample := range samples {
		openedAt := now.AddDate(0, 0, -7*sample.weeksAgo)
		expiration := openedAt.AddDate(0, 0, 7)
		strike := sample.strike

		trade := model.Trade{
			ID:         uuid.New().String(),
			PositionID: positionIDs[sample.ticker],
			Type:       sample.tradeType,
			Ticker:     sample.ticker,
			Strike:     &strike,
			Expiration: &expiration,
			Premium:    sample.premium,
			Quantity:   sample.quantity,
			Status:     sample.status,
			OpenedAt:   openedAt,
		}
		if sample.status != model.TradeStatusOpen {
			closedAt := expiration
			trade.ClosedAt = &closedAt
		}
		if err := s.tradeRepo.InsertTrade(ctx, &trade); err != nil {
			return fmt.Errorf("failed to seed trade for %s: %w", sample.ticker, err)
		}
	}

	log.Printf("Seeded %d positions and %d trades", len(positions), len(samples))
	return nil
}
