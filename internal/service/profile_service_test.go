package service_test

import (
	"context"
	"testing"

	"github.com/wheeltracker/backend/internal/model"
	"github.com/wheeltracker/backend/internal/testutil"
)

// TestProfileService tests the portfolio description and milestone storage.
func TestProfileService(t *testing.T) {
	t.Run("returns empty info when never saved", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		// Execute
		info, err := svc.GetInfo()

		// Assert
		if err != nil {
			t.Fatalf("GetInfo() returned unexpected error: %v", err)
		}
		if info.Philosophy != "" || info.StartedInvesting != "" {
			t.Errorf("Expected empty info, got %+v", info)
		}
	})

	t.Run("saving twice updates the single row", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		// Execute
		if err := svc.SaveInfo(context.Background(), model.PortfolioInfo{Philosophy: "buy and hold"}); err != nil {
			t.Fatalf("SaveInfo() returned unexpected error: %v", err)
		}
		if err := svc.SaveInfo(context.Background(), model.PortfolioInfo{Philosophy: "the wheel"}); err != nil {
			t.Fatalf("SaveInfo() returned unexpected error: %v", err)
		}

		// Assert
		testutil.AssertRowCount(t, db, "portfolio_info", 1)

		info, err := svc.GetInfo()
		if err != nil {
			t.Fatalf("GetInfo() returned unexpected error: %v", err)
		}
		if info.Philosophy != "the wheel" {
			t.Errorf("Expected updated philosophy, got %q", info.Philosophy)
		}
	})

	t.Run("replacing milestones keeps the given order", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		first := []model.Milestone{
			{Amount: 10000, DateReached: "2024-06-01", TimeToReach: "8 months"},
		}
		second := []model.Milestone{
			{Amount: 25000, DateReached: "2025-01-15", TimeToReach: "7 months"},
			{Amount: 10000, DateReached: "2024-06-01", TimeToReach: "8 months"},
		}

		// Execute
		if err := svc.SaveMilestones(context.Background(), first); err != nil {
			t.Fatalf("SaveMilestones() returned unexpected error: %v", err)
		}
		if err := svc.SaveMilestones(context.Background(), second); err != nil {
			t.Fatalf("SaveMilestones() returned unexpected error: %v", err)
		}

		// Assert
		milestones, err := svc.GetMilestones()
		if err != nil {
			t.Fatalf("GetMilestones() returned unexpected error: %v", err)
		}
		if len(milestones) != 2 {
			t.Fatalf("Expected 2 milestones after replace, got %d", len(milestones))
		}
		if milestones[0].Amount != 25000 || milestones[1].Amount != 10000 {
			t.Errorf("Expected order [25000 10000], got %v", milestones)
		}
	})
}
