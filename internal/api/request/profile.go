package request

// SavePortfolioInfoRequest is the payload for the portfolio description.
type SavePortfolioInfoRequest struct {
	StartedInvesting string `json:"startedInvesting"`
	Philosophy       string `json:"philosophy"`
	OptionsStrategy  string `json:"optionsStrategy"`
}

// MilestoneEntry is one milestone in a SaveMilestonesRequest.
type MilestoneEntry struct {
	Amount      float64 `json:"amount"`
	DateReached string  `json:"dateReached"`
	TimeToReach string  `json:"timeToReach"`
}

// SaveMilestonesRequest replaces the full milestone list in the given order.
type SaveMilestonesRequest struct {
	Milestones []MilestoneEntry `json:"milestones"`
}
