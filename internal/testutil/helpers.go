package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/wheeltracker/backend/internal/repository"
	"github.com/wheeltracker/backend/internal/service"
)

func NewTestPremiumService(t *testing.T, db *sql.DB) *service.PremiumService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)

	return service.NewPremiumService(tradeRepo)
}

func NewTestPositionService(t *testing.T, db *sql.DB) *service.PositionService {
	t.Helper()

	positionRepo := repository.NewPositionRepository(db)
	tradeRepo := repository.NewTradeRepository(db)

	return service.NewPositionService(
		db,
		positionRepo,
		tradeRepo,
	)
}

func NewTestTradeService(t *testing.T, db *sql.DB) *service.TradeService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)
	positionService := NewTestPositionService(t, db)

	return service.NewTradeService(
		tradeRepo,
		positionService,
	)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	snapshotRepo := repository.NewSnapshotRepository(db)
	positionRepo := repository.NewPositionRepository(db)

	return service.NewSnapshotService(
		snapshotRepo,
		positionRepo,
	)
}

// NewTestSettingService creates a SettingService without an encryption key,
// so values round-trip in plain text.
func NewTestSettingService(t *testing.T, db *sql.DB) *service.SettingService {
	t.Helper()

	settingRepo := repository.NewSettingRepository(db)

	settingService, err := service.NewSettingService(settingRepo, "")
	if err != nil {
		t.Fatalf("Failed to create setting service: %v", err)
	}

	return settingService
}

func NewTestProfileService(t *testing.T, db *sql.DB) *service.ProfileService {
	t.Helper()

	profileRepo := repository.NewProfileRepository(db)

	return service.NewProfileService(profileRepo)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}
