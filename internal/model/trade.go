package model

import "time"

// Trade type tag set. CSP and CC are the premium-generating wheel trades;
// the rest record share transactions and bookkeeping events.
const (
	TradeTypeCSP        = "CSP"
	TradeTypeCC         = "CC"
	TradeTypeAssignment = "ASSIGNMENT"
	TradeTypeClose      = "CLOSE"
	TradeTypeRoll       = "ROLL"
	TradeTypeBuy        = "BUY"
	TradeTypeSell       = "SELL"
)

// Trade status tag set. A trade transitions OPEN -> {CLOSED, EXPIRED, ASSIGNED}
// exactly once and is never re-opened.
const (
	TradeStatusOpen     = "OPEN"
	TradeStatusClosed   = "CLOSED"
	TradeStatusExpired  = "EXPIRED"
	TradeStatusAssigned = "ASSIGNED"
)

// SharesPerContract is the number of shares covered by one option contract.
const SharesPerContract = 100

// Trade represents a single entry in the trade ledger.
// Premium is per share; the realized dollar value of a trade is
// premium * quantity * SharesPerContract.
type Trade struct {
	ID         string     `json:"id"`
	PositionID string     `json:"positionId"`
	Type       string     `json:"type"`
	Ticker     string     `json:"ticker"`
	Strike     *float64   `json:"strike,omitempty"`
	Expiration *time.Time `json:"expiration,omitempty"`
	Premium    float64    `json:"premium"`
	Quantity   int        `json:"quantity"`
	Delta      *float64   `json:"delta,omitempty"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	OpenedAt   time.Time  `json:"openedAt"`
	ClosedAt   *time.Time `json:"closedAt,omitempty"`
}

// RealizedPremium returns the canonical dollar value of this trade's premium contribution.
func (t Trade) RealizedPremium() float64 {
	return t.Premium * float64(t.Quantity) * SharesPerContract
}
