package model

import "time"

// PremiumSummary holds realized premium totals for the standard display periods.
//
// Week and YTD are anchored to the first CC/CSP trade date; Month is anchored to
// the calendar month. The asymmetry mirrors the week-1 accounting model: weeks and
// the trading year start at the first trade, months follow the calendar.
type PremiumSummary struct {
	Week           float64            `json:"week"`
	WeekNumber     int                `json:"weekNumber"`
	Month          float64            `json:"month"`
	YTD            float64            `json:"ytd"`
	Yearly         map[string]float64 `json:"yearly"`
	Projected      float64            `json:"projected"`
	FirstTradeDate *time.Time         `json:"firstTradeDate"`
}

// TickerPremium is a ranked entry of realized premium for a single ticker.
type TickerPremium struct {
	Ticker       string  `json:"ticker"`
	TotalPremium float64 `json:"totalPremium"`
}
