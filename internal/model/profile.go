package model

import "time"

// PortfolioInfo holds the single-row configurable portfolio description.
type PortfolioInfo struct {
	ID               string    `json:"id,omitempty"`
	StartedInvesting string    `json:"startedInvesting"`
	Philosophy       string    `json:"philosophy"`
	OptionsStrategy  string    `json:"optionsStrategy"`
	CreatedAt        time.Time `json:"createdAt,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt,omitempty"`
}

// Milestone represents a portfolio value milestone for display, ordered by SortOrder.
type Milestone struct {
	ID          string  `json:"id,omitempty"`
	Amount      float64 `json:"amount"`
	DateReached string  `json:"dateReached"`
	TimeToReach string  `json:"timeToReach"`
	SortOrder   int     `json:"sortOrder"`
}
