package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wheeltracker/backend/internal/api/request"
	"github.com/wheeltracker/backend/internal/apperrors"
	"github.com/wheeltracker/backend/internal/model"
	"github.com/wheeltracker/backend/internal/repository"
)

// TradeService handles trade ledger business logic: entry, filtering and the
// one-way OPEN -> terminal status transition.
type TradeService struct {
	tradeRepo       *repository.TradeRepository
	positionService *PositionService
}

// NewTradeService creates a new TradeService with the provided dependencies.
func NewTradeService(
	tradeRepo *repository.TradeRepository,
	positionService *PositionService,
) *TradeService {
	return &TradeService{
		tradeRepo:       tradeRepo,
		positionService: positionService,
	}
}

// GetTrades retrieves all trades, optionally filtered by status and type, newest first.
func (s *TradeService) GetTrades(status, tradeType string) ([]model.Trade, error) {
	return s.tradeRepo.GetTrades(status, tradeType)
}

// GetTrade retrieves a single trade by its ID.
func (s *TradeService) GetTrade(tradeID string) (model.Trade, error) {
	return s.tradeRepo.GetTrade(tradeID)
}

// GetTradesForPosition retrieves all trades belonging to a position, newest first.
func (s *TradeService) GetTradesForPosition(positionID string) ([]model.Trade, error) {
	return s.tradeRepo.GetTradesForPosition(positionID)
}

// CreateTrade records a new trade, lazily creating the position for its ticker.
// The trade starts in the OPEN state; opened_at defaults to now when not provided.
func (s *TradeService) CreateTrade(ctx context.Context, req request.CreateTradeRequest) (*model.Trade, error) {
	position, err := s.positionService.GetOrCreatePosition(ctx, req.Ticker)
	if err != nil {
		return nil, err
	}

	trade := &model.Trade{
		ID:         uuid.New().String(),
		PositionID: position.ID,
		Type:       req.Type,
		Ticker:     strings.ToUpper(req.Ticker),
		Strike:     req.Strike,
		Premium:    req.Premium,
		Quantity:   req.Quantity,
		Delta:      req.Delta,
		Status:     model.TradeStatusOpen,
		Notes:      req.Notes,
		OpenedAt:   time.Now().UTC(),
	}

	if req.Expiration != "" {
		expiration, err := time.Parse(repository.DateLayout, req.Expiration)
		if err != nil {
			return nil, fmt.Errorf("failed to parse expiration date: %w", err)
		}
		trade.Expiration = &expiration
	}

	if req.OpenedAt != "" {
		openedAt, err := repository.ParseTime(req.OpenedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse opened date: %w", err)
		}
		trade.OpenedAt = openedAt
	}

	if err := s.tradeRepo.InsertTrade(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	return trade, nil
}

// CloseTrade moves an OPEN trade to a terminal status (CLOSED, EXPIRED or ASSIGNED)
// and stamps closed_at. A trade that already left the OPEN state is rejected with
// apperrors.ErrTradeAlreadyClosed; the transition happens exactly once.
func (s *TradeService) CloseTrade(ctx context.Context, tradeID, status string) (model.Trade, error) {
	trade, err := s.tradeRepo.GetTrade(tradeID)
	if err != nil {
		return model.Trade{}, err
	}

	if trade.Status != model.TradeStatusOpen {
		return model.Trade{}, apperrors.ErrTradeAlreadyClosed
	}

	closedAt := time.Now().UTC()
	if err := s.tradeRepo.UpdateTradeStatus(ctx, tradeID, status, &closedAt); err != nil {
		return model.Trade{}, err
	}

	trade.Status = status
	trade.ClosedAt = &closedAt

	return trade, nil
}
