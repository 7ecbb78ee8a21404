package service

import (
	"fmt"
	"time"

	"github.com/wheeltracker/backend/internal/model"
	"github.com/wheeltracker/backend/internal/repository"
)

// PremiumService is the period accounting engine. It derives the week-1 anchor from
// the trade ledger and computes week/month/year-to-date premium totals, the year-end
// projection and ticker rankings.
//
// Every operation takes an explicit reference date and re-reads the ledger; nothing
// is cached, so backfilling older trades shifts the anchor on the next call.
type PremiumService struct {
	tradeRepo *repository.TradeRepository
}

// NewPremiumService creates a new PremiumService with the provided repository dependency.
func NewPremiumService(tradeRepo *repository.TradeRepository) *PremiumService {
	return &PremiumService{
		tradeRepo: tradeRepo,
	}
}

// Ranking periods for GetTopPerformers. Both are calendar-based, unlike the
// week/year-to-date figures in the premium summary which anchor to the first trade.
const (
	PeriodMonthToDate = "mtd"
	PeriodYearToDate  = "ytd"
)

// FirstTradeDate returns the date of the first CC/CSP trade (start of week 1).
// Returns time.Time{} (zero value) when the ledger has no CC/CSP trades.
func (s *PremiumService) FirstTradeDate() (time.Time, error) {
	return s.tradeRepo.FirstTradeDate()
}

// CurrentWeekNumber returns the 1-based week number of today relative to the first
// trade date. Weeks roll forward indefinitely; there is no reset at year boundaries.
// Returns 0 when no trades exist yet.
func (s *PremiumService) CurrentWeekNumber(today time.Time) (int, error) {
	firstTrade, err := s.tradeRepo.FirstTradeDate()
	if err != nil {
		return 0, err
	}
	if firstTrade.IsZero() {
		return 0, nil
	}

	return floorDiv(daysBetween(firstTrade, dateOnly(today)), 7) + 1, nil
}

// CurrentWeekStart returns the inclusive start date of the current week, anchored to
// the first trade date. Falls back to today when no anchor exists.
func (s *PremiumService) CurrentWeekStart(today time.Time) (time.Time, error) {
	firstTrade, err := s.tradeRepo.FirstTradeDate()
	if err != nil {
		return time.Time{}, err
	}
	return s.weekStart(firstTrade, dateOnly(today)), nil
}

func (s *PremiumService) weekStart(firstTrade, today time.Time) time.Time {
	if firstTrade.IsZero() {
		return today
	}
	weeksElapsed := floorDiv(daysBetween(firstTrade, today), 7)
	return firstTrade.AddDate(0, 0, weeksElapsed*7)
}

// GetPremiumSummary computes realized premium totals for the standard display periods
// as of the given date.
//
// Week and year-to-date anchor to the first trade date; month is the calendar month
// of today. The projection extrapolates the year-to-date total linearly: over the days
// since the first trade when the anchor falls in the current year, over the calendar
// year otherwise. Zero elapsed days yields a zero projection, never an error.
func (s *PremiumService) GetPremiumSummary(today time.Time) (model.PremiumSummary, error) {
	today = dateOnly(today)

	firstTrade, err := s.tradeRepo.FirstTradeDate()
	if err != nil {
		return model.PremiumSummary{}, err
	}

	weekNumber := 0
	if !firstTrade.IsZero() {
		weekNumber = floorDiv(daysBetween(firstTrade, today), 7) + 1
	}

	weekPremium, err := s.tradeRepo.SumRealizedPremiumSince(s.weekStart(firstTrade, today))
	if err != nil {
		return model.PremiumSummary{}, err
	}

	monthPremium, err := s.tradeRepo.SumRealizedPremiumForMonth(today.Year(), today.Month())
	if err != nil {
		return model.PremiumSummary{}, err
	}

	// Year-to-date follows the trading year (anchor year), not the calendar year
	startYear := today.Year()
	if !firstTrade.IsZero() {
		startYear = firstTrade.Year()
	}
	ytdPremium, err := s.tradeRepo.SumRealizedPremiumForYear(startYear)
	if err != nil {
		return model.PremiumSummary{}, err
	}

	yearly, err := s.tradeRepo.YearlyRealizedPremium()
	if err != nil {
		return model.PremiumSummary{}, err
	}

	summary := model.PremiumSummary{
		Week:       weekPremium,
		WeekNumber: weekNumber,
		Month:      monthPremium,
		YTD:        ytdPremium,
		Yearly:     yearly,
		Projected:  projectYearEnd(firstTrade, today, ytdPremium),
	}
	if !firstTrade.IsZero() {
		summary.FirstTradeDate = &firstTrade
	}

	return summary, nil
}

// projectYearEnd extrapolates the year-to-date premium to a full-year figure.
func projectYearEnd(firstTrade, today time.Time, ytdPremium float64) float64 {
	if !firstTrade.IsZero() && firstTrade.Year() == today.Year() {
		daysElapsed := daysBetween(firstTrade, today) + 1
		endOfYear := time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		totalDays := daysElapsed + daysBetween(today, endOfYear)
		if daysElapsed <= 0 {
			return 0
		}
		return ytdPremium / float64(daysElapsed) * float64(totalDays)
	}

	startOfYear := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	daysElapsed := daysBetween(startOfYear, today) + 1
	daysInYear := 365
	if isLeapYear(today.Year()) {
		daysInYear = 366
	}
	if daysElapsed <= 0 {
		return 0
	}
	return ytdPremium / float64(daysElapsed) * float64(daysInYear)
}

// GetTopPerformers ranks tickers by realized premium within the given calendar period
// (PeriodMonthToDate or PeriodYearToDate) as of today, returning at most limit entries
// in descending order. Ties are broken by ticker ascending.
func (s *PremiumService) GetTopPerformers(period string, limit int, today time.Time) ([]model.TickerPremium, error) {
	today = dateOnly(today)

	switch period {
	case PeriodMonthToDate:
		return s.tradeRepo.TopTickersForMonth(today.Year(), today.Month(), limit)
	case PeriodYearToDate:
		return s.tradeRepo.TopTickersForYear(today.Year(), limit)
	default:
		return nil, fmt.Errorf("unknown ranking period: %q", period)
	}
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of whole days from a to b. Both are expected to be
// UTC midnights, so the division is exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// floorDiv is integer division rounding towards negative infinity, so week math stays
// consistent for dates before the anchor (a backfilled ledger can move the anchor
// forward past a previously queried date).
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
