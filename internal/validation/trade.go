package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/wheeltracker/backend/internal/api/request"
	"github.com/wheeltracker/backend/internal/model"
)

// ValidTradeType contains the allowed trade type values.
var ValidTradeType = map[string]bool{
	model.TradeTypeCSP:        true,
	model.TradeTypeCC:         true,
	model.TradeTypeAssignment: true,
	model.TradeTypeClose:      true,
	model.TradeTypeRoll:       true,
	model.TradeTypeBuy:        true,
	model.TradeTypeSell:       true,
}

// ValidCloseStatus contains the terminal statuses a trade may be closed with.
var ValidCloseStatus = map[string]bool{
	model.TradeStatusClosed:   true,
	model.TradeStatusExpired:  true,
	model.TradeStatusAssigned: true,
}

// ValidateCreateTrade validates a trade creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - ticker: non-empty, at most 10 characters
//   - type: one of the trade type tag set
//   - premium: positive for CSP and CC trades (the premium-generating types)
//   - quantity: at least 1 contract
//
// Optional fields (validated if provided):
//   - expiration, openedAt: YYYY-MM-DD format
//   - premium, strike: never negative
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTrade(req request.CreateTradeRequest) error {
	errors := make(map[string]string)

	validateTicker(req.Ticker, errors)

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !ValidTradeType[req.Type] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	switch {
	case req.Premium < 0:
		errors["premium"] = "premium cannot be negative"
	case req.Premium == 0 && (req.Type == model.TradeTypeCSP || req.Type == model.TradeTypeCC):
		errors["premium"] = "premium must be positive for CSP and CC trades"
	}

	if req.Quantity < 1 {
		errors["quantity"] = "quantity must be at least 1"
	}

	if req.Strike != nil && *req.Strike < 0 {
		errors["strike"] = "strike cannot be negative"
	}

	if req.Expiration != "" {
		if _, err := time.Parse("2006-01-02", req.Expiration); err != nil {
			errors["expiration"] = err.Error()
		}
	}

	if req.OpenedAt != "" {
		if _, err := time.Parse("2006-01-02", req.OpenedAt); err != nil {
			errors["openedAt"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateCloseTrade validates a trade close request.
// The status must be one of the terminal statuses: CLOSED, EXPIRED or ASSIGNED.
func ValidateCloseTrade(req request.CloseTradeRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Status) == "" {
		errors["status"] = "status is required"
	} else if !ValidCloseStatus[req.Status] {
		errors["status"] = fmt.Sprintf("invalid close status: %s", req.Status)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func validateTicker(ticker string, errors map[string]string) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		errors["ticker"] = "ticker is required"
	} else if len(ticker) > 10 {
		errors["ticker"] = "ticker must be at most 10 characters"
	}
}
