package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wheeltracker/backend/internal/apperrors"
	"github.com/wheeltracker/backend/internal/model"
	"github.com/wheeltracker/backend/internal/repository"
)

// PositionService is the position ledger updater. It maintains share counts and the
// weighted-average cost basis as put and call assignments are recorded, and writes the
// ASSIGNMENT trade record in the same transaction as the position mutation.
type PositionService struct {
	db           *sql.DB
	positionRepo *repository.PositionRepository
	tradeRepo    *repository.TradeRepository
}

// NewPositionService creates a new PositionService with the provided repository dependencies.
func NewPositionService(
	db *sql.DB,
	positionRepo *repository.PositionRepository,
	tradeRepo *repository.TradeRepository,
) *PositionService {
	return &PositionService{
		db:           db,
		positionRepo: positionRepo,
		tradeRepo:    tradeRepo,
	}
}

// GetAllPositions retrieves all positions with their realized premium totals,
// ordered by total premium descending.
func (s *PositionService) GetAllPositions() ([]model.PositionSummary, error) {
	return s.positionRepo.GetAllWithPremium()
}

// GetPosition retrieves a single position by ticker.
func (s *PositionService) GetPosition(ticker string) (model.Position, error) {
	return s.positionRepo.GetByTicker(ticker)
}

// GetOrCreatePosition returns the position for the ticker, creating a zero-shares
// record if none exists. Lookup is idempotent and keyed by uppercased ticker.
func (s *PositionService) GetOrCreatePosition(ctx context.Context, ticker string) (model.Position, error) {
	ticker = strings.ToUpper(ticker)

	position, err := s.positionRepo.GetByTicker(ticker)
	if err == nil {
		return position, nil
	}
	if !errors.Is(err, apperrors.ErrPositionNotFound) {
		return model.Position{}, err
	}

	position = model.Position{
		ID:     uuid.New().String(),
		Ticker: ticker,
	}
	if err := s.positionRepo.Insert(ctx, &position); err != nil {
		return model.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return position, nil
}

// ApplyPutAssignment records a put assignment: the investor buys shares at the strike.
// The share count increases and the cost basis becomes the weighted average of the old
// holding and the newly assigned shares. The ASSIGNMENT trade record is written in the
// same transaction as the position update.
func (s *PositionService) ApplyPutAssignment(ctx context.Context, ticker string, shares int, costPerShare float64, notes string) (model.Position, error) {
	position, err := s.GetOrCreatePosition(ctx, ticker)
	if err != nil {
		return model.Position{}, err
	}

	newShares := position.SharesOwned + shares
	avgCost := costPerShare
	if newShares > 0 {
		oldCost := position.CostBasis * float64(position.SharesOwned)
		avgCost = (oldCost + costPerShare*float64(shares)) / float64(newShares)
	}

	err = s.applyAssignment(ctx, &position, newShares, &avgCost, costPerShare, shares, notes)
	if err != nil {
		return model.Position{}, err
	}

	return position, nil
}

// ApplyCallAssignment records a call assignment: the investor sells shares at the strike.
// The share count never goes below zero and the cost basis of the remaining shares is
// left unchanged. The ASSIGNMENT trade record is written in the same transaction as the
// position update.
func (s *PositionService) ApplyCallAssignment(ctx context.Context, ticker string, shares int, costPerShare float64, notes string) (model.Position, error) {
	position, err := s.GetOrCreatePosition(ctx, ticker)
	if err != nil {
		return model.Position{}, err
	}

	newShares := position.SharesOwned - shares
	if newShares < 0 {
		newShares = 0
	}

	err = s.applyAssignment(ctx, &position, newShares, nil, costPerShare, shares, notes)
	if err != nil {
		return model.Position{}, err
	}

	return position, nil
}

// applyAssignment mutates the position holdings and appends the ASSIGNMENT trade record
// atomically. A nil costBasis leaves the stored basis untouched.
func (s *PositionService) applyAssignment(ctx context.Context, position *model.Position, newShares int, costBasis *float64, costPerShare float64, shares int, notes string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.positionRepo.UpdateHoldingsTx(ctx, tx, position.ID, &newShares, costBasis, nil); err != nil {
		return err
	}

	strike := costPerShare
	trade := &model.Trade{
		ID:         uuid.New().String(),
		PositionID: position.ID,
		Type:       model.TradeTypeAssignment,
		Ticker:     position.Ticker,
		Strike:     &strike,
		Premium:    0,
		Quantity:   shares / model.SharesPerContract,
		Status:     model.TradeStatusOpen,
		Notes:      notes,
		OpenedAt:   time.Now().UTC(),
	}
	if err := s.tradeRepo.InsertTradeTx(ctx, tx, trade); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit assignment: %w", err)
	}

	position.SharesOwned = newShares
	if costBasis != nil {
		position.CostBasis = *costBasis
	}

	return nil
}
