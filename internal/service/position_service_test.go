package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wheeltracker/backend/internal/apperrors"
	"github.com/wheeltracker/backend/internal/model"
	"github.com/wheeltracker/backend/internal/testutil"
)

// TestPositionService_GetOrCreatePosition tests lazy position creation.
//
// WHY: Positions come into existence on first use and lookups are keyed by
// uppercased ticker, so repeated calls for the same ticker in any casing must
// resolve to a single record.
func TestPositionService_GetOrCreatePosition(t *testing.T) {
	t.Run("creates a zero-shares position on first use", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		// Execute
		position, err := svc.GetOrCreatePosition(context.Background(), "aapl")

		// Assert
		if err != nil {
			t.Fatalf("GetOrCreatePosition() returned unexpected error: %v", err)
		}

		if position.Ticker != "AAPL" {
			t.Errorf("Expected uppercased ticker AAPL, got %s", position.Ticker)
		}
		if position.SharesOwned != 0 || position.CostBasis != 0 {
			t.Errorf("Expected zero holdings, got %d shares at %v", position.SharesOwned, position.CostBasis)
		}
		testutil.AssertRowCount(t, db, "positions", 1)
	})

	t.Run("is idempotent across casings", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		// Execute
		first, err := svc.GetOrCreatePosition(context.Background(), "AAPL")
		if err != nil {
			t.Fatalf("GetOrCreatePosition() returned unexpected error: %v", err)
		}
		second, err := svc.GetOrCreatePosition(context.Background(), "aapl")
		if err != nil {
			t.Fatalf("GetOrCreatePosition() returned unexpected error: %v", err)
		}

		// Assert
		if first.ID != second.ID {
			t.Errorf("Expected same position, got IDs %s and %s", first.ID, second.ID)
		}
		testutil.AssertRowCount(t, db, "positions", 1)
	})
}

// TestPositionService_ApplyPutAssignment tests put assignment processing.
//
// WHY: A put assignment buys shares into the position and the cost basis must
// become the weighted average of the existing holding and the new shares.
// Getting this wrong silently corrupts every later P&L figure.
func TestPositionService_ApplyPutAssignment(t *testing.T) {
	t.Run("first assignment sets basis to the assignment cost", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		// Execute
		position, err := svc.ApplyPutAssignment(context.Background(), "AAPL", 100, 185.50, "")

		// Assert
		if err != nil {
			t.Fatalf("ApplyPutAssignment() returned unexpected error: %v", err)
		}

		if position.SharesOwned != 100 {
			t.Errorf("Expected 100 shares, got %d", position.SharesOwned)
		}
		if position.CostBasis != 185.50 {
			t.Errorf("Expected cost basis 185.50, got %v", position.CostBasis)
		}
	})

	t.Run("repeated assignment averages the cost basis by share count", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)
		testutil.NewPosition().WithTicker("SOFI").WithShares(100, 10.00).Build(t, db)

		// Execute: 100 @ 10 + 100 @ 20 -> 200 @ 15
		position, err := svc.ApplyPutAssignment(context.Background(), "SOFI", 100, 20.00, "")

		// Assert
		if err != nil {
			t.Fatalf("ApplyPutAssignment() returned unexpected error: %v", err)
		}

		if position.SharesOwned != 200 {
			t.Errorf("Expected 200 shares, got %d", position.SharesOwned)
		}
		if position.CostBasis != 15.00 {
			t.Errorf("Expected weighted average basis 15.00, got %v", position.CostBasis)
		}
	})

	t.Run("records an ASSIGNMENT trade in the ledger", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)
		tradeSvc := testutil.NewTestTradeService(t, db)

		// Execute
		position, err := svc.ApplyPutAssignment(context.Background(), "AAPL", 200, 185.00, "assigned early")
		if err != nil {
			t.Fatalf("ApplyPutAssignment() returned unexpected error: %v", err)
		}

		// Assert
		trades, err := tradeSvc.GetTradesForPosition(position.ID)
		if err != nil {
			t.Fatalf("GetTradesForPosition() returned unexpected error: %v", err)
		}
		if len(trades) != 1 {
			t.Fatalf("Expected 1 trade record, got %d", len(trades))
		}

		trade := trades[0]
		if trade.Type != model.TradeTypeAssignment {
			t.Errorf("Expected trade type ASSIGNMENT, got %s", trade.Type)
		}
		if trade.Premium != 0 {
			t.Errorf("Expected zero premium on assignment record, got %v", trade.Premium)
		}
		if trade.Quantity != 2 {
			t.Errorf("Expected 2 contracts for 200 shares, got %d", trade.Quantity)
		}
		if trade.Strike == nil || *trade.Strike != 185.00 {
			t.Errorf("Expected strike 185.00 on assignment record, got %v", trade.Strike)
		}
		if trade.Notes != "assigned early" {
			t.Errorf("Expected notes to carry through, got %q", trade.Notes)
		}
	})
}

// TestPositionService_ApplyCallAssignment tests call assignment processing.
//
// WHY: A call assignment sells shares away. The share count clamps at zero and
// the cost basis of whatever remains must not move.
func TestPositionService_ApplyCallAssignment(t *testing.T) {
	t.Run("reduces shares and leaves the basis unchanged", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)
		testutil.NewPosition().WithTicker("AAPL").WithShares(300, 185.50).Build(t, db)

		// Execute
		position, err := svc.ApplyCallAssignment(context.Background(), "AAPL", 100, 195.00, "")

		// Assert
		if err != nil {
			t.Fatalf("ApplyCallAssignment() returned unexpected error: %v", err)
		}

		if position.SharesOwned != 200 {
			t.Errorf("Expected 200 shares remaining, got %d", position.SharesOwned)
		}
		if position.CostBasis != 185.50 {
			t.Errorf("Expected basis unchanged at 185.50, got %v", position.CostBasis)
		}
	})

	t.Run("never drives the share count below zero", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)
		testutil.NewPosition().WithTicker("AAPL").WithShares(100, 185.50).Build(t, db)

		// Execute: assigning away more shares than held
		position, err := svc.ApplyCallAssignment(context.Background(), "AAPL", 300, 195.00, "")

		// Assert
		if err != nil {
			t.Fatalf("ApplyCallAssignment() returned unexpected error: %v", err)
		}
		if position.SharesOwned != 0 {
			t.Errorf("Expected shares clamped to 0, got %d", position.SharesOwned)
		}
	})

	t.Run("records an ASSIGNMENT trade in the ledger", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)
		position := testutil.NewPosition().WithTicker("AAPL").WithShares(100, 185.50).Build(t, db)

		// Execute
		if _, err := svc.ApplyCallAssignment(context.Background(), "AAPL", 100, 195.00, ""); err != nil {
			t.Fatalf("ApplyCallAssignment() returned unexpected error: %v", err)
		}

		// Assert
		tradeSvc := testutil.NewTestTradeService(t, db)
		trades, err := tradeSvc.GetTradesForPosition(position.ID)
		if err != nil {
			t.Fatalf("GetTradesForPosition() returned unexpected error: %v", err)
		}
		if len(trades) != 1 || trades[0].Type != model.TradeTypeAssignment {
			t.Fatalf("Expected 1 ASSIGNMENT trade, got %v", trades)
		}
	})
}

// TestPositionService_GetPosition tests position lookup error handling.
func TestPositionService_GetPosition(t *testing.T) {
	t.Run("returns ErrPositionNotFound for an unknown ticker", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		// Execute
		_, err := svc.GetPosition("ZZZZ")

		// Assert
		if !errors.Is(err, apperrors.ErrPositionNotFound) {
			t.Errorf("Expected ErrPositionNotFound, got %v", err)
		}
	})
}
