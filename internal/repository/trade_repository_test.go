package repository_test

import (
	"testing"
	"time"

	"github.com/wheeltracker/backend/internal/model"
	"github.com/wheeltracker/backend/internal/repository"
	"github.com/wheeltracker/backend/internal/testutil"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TestTradeRepository_FirstTradeDate tests the week-1 anchor query.
//
// WHY: The anchor is derived from the earliest CC/CSP trade only. Assignments
// and share transactions recorded before the first wheel trade must not pull
// the anchor backwards.
func TestTradeRepository_FirstTradeDate(t *testing.T) {
	t.Run("returns zero time for an empty ledger", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTradeRepository(db)

		// Execute
		first, err := repo.FirstTradeDate()

		// Assert
		if err != nil {
			t.Fatalf("FirstTradeDate() returned unexpected error: %v", err)
		}
		if !first.IsZero() {
			t.Errorf("Expected zero time, got %v", first)
		}
	})

	t.Run("returns the earliest CC/CSP open date", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTradeRepository(db)

		testutil.NewTrade().WithType(model.TradeTypeBuy).OpenedAt(date(2024, time.December, 2)).Build(t, db)
		testutil.NewTrade().WithType(model.TradeTypeCC).OpenedAt(date(2025, time.February, 3)).Build(t, db)
		testutil.NewTrade().WithType(model.TradeTypeCSP).OpenedAt(date(2025, time.January, 6)).Build(t, db)

		// Execute
		first, err := repo.FirstTradeDate()

		// Assert
		if err != nil {
			t.Fatalf("FirstTradeDate() returned unexpected error: %v", err)
		}

		expected := date(2025, time.January, 6)
		if !first.Equal(expected) {
			t.Errorf("Expected %v, got %v", expected, first)
		}
	})
}

// TestTradeRepository_SumRealizedPremium tests the premium aggregation queries.
//
// WHY: Every period total is a SUM over the realized-trade filter. OPEN trades
// and non-wheel types must be invisible to all of them.
func TestTradeRepository_SumRealizedPremium(t *testing.T) {
	t.Run("sums premium times quantity times 100", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTradeRepository(db)

		testutil.CreateRealizedTrade(t, db, "AAPL", model.TradeTypeCSP, 2.50, 2, date(2025, time.March, 10))
		testutil.CreateRealizedTrade(t, db, "AAPL", model.TradeTypeCC, 1.00, 1, date(2025, time.March, 11))

		// Execute
		total, err := repo.SumRealizedPremiumSince(date(2025, time.March, 10))

		// Assert
		if err != nil {
			t.Fatalf("SumRealizedPremiumSince() returned unexpected error: %v", err)
		}
		if total != 600 {
			t.Errorf("Expected 600 (500 + 100), got %v", total)
		}
	})

	t.Run("excludes trades opened before the window", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTradeRepository(db)

		testutil.CreateRealizedTrade(t, db, "AAPL", model.TradeTypeCSP, 2.00, 1, date(2025, time.March, 9))
		testutil.CreateRealizedTrade(t, db, "AAPL", model.TradeTypeCSP, 3.00, 1, date(2025, time.March, 10))

		// Execute
		total, err := repo.SumRealizedPremiumSince(date(2025, time.March, 10))

		// Assert
		if err != nil {
			t.Fatalf("SumRealizedPremiumSince() returned unexpected error: %v", err)
		}
		if total != 300 {
			t.Errorf("Expected 300, got %v", total)
		}
	})

	t.Run("month and year sums follow the calendar", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTradeRepository(db)

		testutil.CreateRealizedTrade(t, db, "AAPL", model.TradeTypeCSP, 1.00, 1, date(2025, time.February, 28))
		testutil.CreateRealizedTrade(t, db, "AAPL", model.TradeTypeCSP, 2.00, 1, date(2025, time.March, 1))
		testutil.CreateRealizedTrade(t, db, "AAPL", model.TradeTypeCSP, 4.00, 1, date(2024, time.December, 31))

		// Execute
		monthTotal, err := repo.SumRealizedPremiumForMonth(2025, time.March)
		if err != nil {
			t.Fatalf("SumRealizedPremiumForMonth() returned unexpected error: %v", err)
		}
		yearTotal, err := repo.SumRealizedPremiumForYear(2025)
		if err != nil {
			t.Fatalf("SumRealizedPremiumForYear() returned unexpected error: %v", err)
		}

		// Assert
		if monthTotal != 200 {
			t.Errorf("Expected March total 200, got %v", monthTotal)
		}
		if yearTotal != 300 {
			t.Errorf("Expected 2025 total 300, got %v", yearTotal)
		}
	})

	t.Run("ignores OPEN trades", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTradeRepository(db)

		testutil.NewTrade().
			WithType(model.TradeTypeCSP).
			WithPremium(5.00, 1).
			OpenedAt(date(2025, time.March, 10)).
			Build(t, db)

		// Execute
		total, err := repo.SumRealizedPremiumSince(date(2025, time.January, 1))

		// Assert
		if err != nil {
			t.Fatalf("SumRealizedPremiumSince() returned unexpected error: %v", err)
		}
		if total != 0 {
			t.Errorf("Expected 0 for OPEN-only ledger, got %v", total)
		}
	})
}

// TestTradeRepository_YearlyRealizedPremium tests the per-year breakdown.
func TestTradeRepository_YearlyRealizedPremium(t *testing.T) {
	t.Run("groups realized premium by year", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTradeRepository(db)

		testutil.CreateRealizedTrade(t, db, "AAPL", model.TradeTypeCSP, 1.00, 1, date(2024, time.June, 3))
		testutil.CreateRealizedTrade(t, db, "AAPL", model.TradeTypeCSP, 2.00, 1, date(2024, time.July, 1))
		testutil.CreateRealizedTrade(t, db, "AAPL", model.TradeTypeCC, 3.00, 1, date(2025, time.January, 6))

		// Execute
		yearly, err := repo.YearlyRealizedPremium()

		// Assert
		if err != nil {
			t.Fatalf("YearlyRealizedPremium() returned unexpected error: %v", err)
		}

		if yearly["2024"] != 300 {
			t.Errorf("Expected yearly[2024] = 300, got %v", yearly["2024"])
		}
		if yearly["2025"] != 300 {
			t.Errorf("Expected yearly[2025] = 300, got %v", yearly["2025"])
		}
	})
}

// TestTradeRepository_TopTickers tests the ticker ranking queries.
func TestTradeRepository_TopTickers(t *testing.T) {
	t.Run("orders by premium descending with ticker tie-break", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTradeRepository(db)

		testutil.CreateRealizedTrade(t, db, "SOFI", model.TradeTypeCSP, 2.00, 1, date(2025, time.March, 3))
		testutil.CreateRealizedTrade(t, db, "AAPL", model.TradeTypeCSP, 2.00, 1, date(2025, time.March, 4))
		testutil.CreateRealizedTrade(t, db, "MSFT", model.TradeTypeCC, 5.00, 1, date(2025, time.March, 5))

		// Execute
		performers, err := repo.TopTickersForMonth(2025, time.March, 10)

		// Assert
		if err != nil {
			t.Fatalf("TopTickersForMonth() returned unexpected error: %v", err)
		}

		expected := []string{"MSFT", "AAPL", "SOFI"}
		if len(performers) != len(expected) {
			t.Fatalf("Expected %d performers, got %d", len(expected), len(performers))
		}
		for i, ticker := range expected {
			if performers[i].Ticker != ticker {
				t.Errorf("Rank %d: expected %s, got %s", i+1, ticker, performers[i].Ticker)
			}
		}
	})
}

// TestPositionRepository_GetAllWithPremium tests the positions overview query.
//
// WHY: The overview joins positions with their realized premium split by trade
// type; the CC/CSP split and descending order must hold.
func TestPositionRepository_GetAllWithPremium(t *testing.T) {
	t.Run("splits premium by trade type and orders by total", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewPositionRepository(db)

		aapl := testutil.NewPosition().WithTicker("AAPL").Build(t, db)
		sofi := testutil.NewPosition().WithTicker("SOFI").Build(t, db)

		testutil.NewTrade().WithPosition(aapl.ID).WithTicker("AAPL").WithType(model.TradeTypeCC).WithPremium(1.00, 1).Expired().OpenedAt(date(2025, time.March, 3)).Build(t, db)
		testutil.NewTrade().WithPosition(sofi.ID).WithTicker("SOFI").WithType(model.TradeTypeCSP).WithPremium(3.00, 1).Expired().OpenedAt(date(2025, time.March, 4)).Build(t, db)

		// Execute
		summaries, err := repo.GetAllWithPremium()

		// Assert
		if err != nil {
			t.Fatalf("GetAllWithPremium() returned unexpected error: %v", err)
		}
		if len(summaries) != 2 {
			t.Fatalf("Expected 2 summaries, got %d", len(summaries))
		}

		if summaries[0].Ticker != "SOFI" || summaries[0].CSPPremium != 300 || summaries[0].TotalPremium != 300 {
			t.Errorf("Expected SOFI first with CSP premium 300, got %+v", summaries[0])
		}
		if summaries[1].Ticker != "AAPL" || summaries[1].CCPremium != 100 {
			t.Errorf("Expected AAPL with CC premium 100, got %+v", summaries[1])
		}
	})
}
