package request

// Assignment kinds: a put assignment buys shares, a call assignment sells them.
const (
	AssignmentKindPut  = "put"
	AssignmentKindCall = "call"
)

// CreateAssignmentRequest is the payload for recording an option assignment.
// CostPerShare is the strike at which shares were bought (put) or sold (call).
type CreateAssignmentRequest struct {
	Ticker       string  `json:"ticker"`
	Kind         string  `json:"kind"`
	Shares       int     `json:"shares"`
	CostPerShare float64 `json:"costPerShare"`
	Notes        string  `json:"notes,omitempty"`
}
