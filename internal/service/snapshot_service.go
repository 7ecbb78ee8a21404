package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wheeltracker/backend/internal/model"
	"github.com/wheeltracker/backend/internal/repository"
)

// SnapshotService maintains the daily portfolio valuation history, one row per date.
type SnapshotService struct {
	snapshotRepo *repository.SnapshotRepository
	positionRepo *repository.PositionRepository
}

// NewSnapshotService creates a new SnapshotService with the provided repository dependencies.
func NewSnapshotService(
	snapshotRepo *repository.SnapshotRepository,
	positionRepo *repository.PositionRepository,
) *SnapshotService {
	return &SnapshotService{
		snapshotRepo: snapshotRepo,
		positionRepo: positionRepo,
	}
}

// GetSnapshots retrieves snapshots for the last N days, oldest first.
func (s *SnapshotService) GetSnapshots(days int) ([]model.Snapshot, error) {
	return s.snapshotRepo.GetSince(days)
}

// SaveSnapshot stores a snapshot for the given date, replacing any existing one.
func (s *SnapshotService) SaveSnapshot(ctx context.Context, date time.Time, portfolioValue, optionsPnL float64) (model.Snapshot, error) {
	snapshot := model.Snapshot{
		ID:             uuid.New().String(),
		SnapshotDate:   date,
		PortfolioValue: portfolioValue,
		OptionsPnL:     optionsPnL,
	}

	if err := s.snapshotRepo.Upsert(ctx, &snapshot); err != nil {
		return model.Snapshot{}, err
	}

	return snapshot, nil
}

// CaptureDailySnapshot values the portfolio from current positions and stores today's
// snapshot. Portfolio value is shares times last known price per position; options
// P&L is the accumulated realized premium. Run by the scheduled snapshot job.
func (s *SnapshotService) CaptureDailySnapshot(ctx context.Context, today time.Time) (model.Snapshot, error) {
	positions, err := s.positionRepo.GetAllWithPremium()
	if err != nil {
		return model.Snapshot{}, err
	}

	var portfolioValue, optionsPnL float64
	for _, p := range positions {
		portfolioValue += float64(p.SharesOwned) * p.CurrentPrice
		optionsPnL += p.TotalPremium
	}

	return s.SaveSnapshot(ctx, today, portfolioValue, optionsPnL)
}
