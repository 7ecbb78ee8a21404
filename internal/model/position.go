package model

import "time"

// Position represents a stock position for a single ticker.
// Created lazily on the first trade or assignment referencing the ticker,
// mutated only by assignment processing, never deleted.
type Position struct {
	ID           string    `json:"id"`
	Ticker       string    `json:"ticker"`
	SharesOwned  int       `json:"sharesOwned"`
	CostBasis    float64   `json:"costBasis"`
	CurrentPrice float64   `json:"currentPrice"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// PositionSummary represents a position with its realized premium totals for API responses.
type PositionSummary struct {
	Position
	CCPremium    float64 `json:"ccPremium"`
	CSPPremium   float64 `json:"cspPremium"`
	TotalPremium float64 `json:"totalPremium"`
}
