package request

// CreateTradeRequest is the payload for recording a new trade.
// Expiration and OpenedAt are YYYY-MM-DD strings; OpenedAt defaults to now.
type CreateTradeRequest struct {
	Ticker     string   `json:"ticker"`
	Type       string   `json:"type"`
	Strike     *float64 `json:"strike,omitempty"`
	Expiration string   `json:"expiration,omitempty"`
	Premium    float64  `json:"premium"`
	Quantity   int      `json:"quantity"`
	Delta      *float64 `json:"delta,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	OpenedAt   string   `json:"openedAt,omitempty"`
}

// CloseTradeRequest is the payload for moving a trade to a terminal status.
type CloseTradeRequest struct {
	Status string `json:"status"`
}
