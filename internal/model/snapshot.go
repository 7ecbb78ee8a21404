package model

import "time"

// Snapshot represents a daily portfolio valuation, one row per calendar date.
type Snapshot struct {
	ID             string    `json:"id"`
	SnapshotDate   time.Time `json:"snapshotDate"`
	PortfolioValue float64   `json:"portfolioValue"`
	OptionsPnL     float64   `json:"optionsPnl"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}
