package request

// SaveSnapshotRequest is the payload for storing a portfolio snapshot.
// Date is a YYYY-MM-DD string and defaults to today when empty.
type SaveSnapshotRequest struct {
	Date           string  `json:"date,omitempty"`
	PortfolioValue float64 `json:"portfolioValue"`
	OptionsPnL     float64 `json:"optionsPnl"`
}
