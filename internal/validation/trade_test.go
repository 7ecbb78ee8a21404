package validation_test

import (
	"errors"
	"testing"

	"github.com/wheeltracker/backend/internal/api/request"
	"github.com/wheeltracker/backend/internal/model"
	"github.com/wheeltracker/backend/internal/validation"
)

// TestValidateCreateTrade tests trade request validation.
//
// WHY: Validation is the only guard between arbitrary JSON and the ledger.
// A trade that slips through with a zero premium or bogus type corrupts the
// premium totals for every period.
func TestValidateCreateTrade(t *testing.T) {
	validStrike := 185.0
	negativeStrike := -1.0

	tests := []struct {
		name        string
		req         request.CreateTradeRequest
		expectError bool
		errorField  string
	}{
		{
			name: "valid CSP trade",
			req: request.CreateTradeRequest{
				Ticker:     "AAPL",
				Type:       model.TradeTypeCSP,
				Strike:     &validStrike,
				Expiration: "2025-03-21",
				Premium:    2.50,
				Quantity:   1,
			},
			expectError: false,
		},
		{
			name: "missing ticker",
			req: request.CreateTradeRequest{
				Type:     model.TradeTypeCSP,
				Premium:  2.50,
				Quantity: 1,
			},
			expectError: true,
			errorField:  "ticker",
		},
		{
			name: "ticker too long",
			req: request.CreateTradeRequest{
				Ticker:   "ABCDEFGHIJK",
				Type:     model.TradeTypeCSP,
				Premium:  2.50,
				Quantity: 1,
			},
			expectError: true,
			errorField:  "ticker",
		},
		{
			name: "unknown type",
			req: request.CreateTradeRequest{
				Ticker:   "AAPL",
				Type:     "STRADDLE",
				Premium:  2.50,
				Quantity: 1,
			},
			expectError: true,
			errorField:  "type",
		},
		{
			name: "zero premium on a CC trade",
			req: request.CreateTradeRequest{
				Ticker:   "AAPL",
				Type:     model.TradeTypeCC,
				Premium:  0,
				Quantity: 1,
			},
			expectError: true,
			errorField:  "premium",
		},
		{
			name: "zero premium allowed on a BUY trade",
			req: request.CreateTradeRequest{
				Ticker:   "AAPL",
				Type:     model.TradeTypeBuy,
				Premium:  0,
				Quantity: 1,
			},
			expectError: false,
		},
		{
			name: "negative premium",
			req: request.CreateTradeRequest{
				Ticker:   "AAPL",
				Type:     model.TradeTypeCSP,
				Premium:  -1,
				Quantity: 1,
			},
			expectError: true,
			errorField:  "premium",
		},
		{
			name: "zero quantity",
			req: request.CreateTradeRequest{
				Ticker:   "AAPL",
				Type:     model.TradeTypeCSP,
				Premium:  2.50,
				Quantity: 0,
			},
			expectError: true,
			errorField:  "quantity",
		},
		{
			name: "negative strike",
			req: request.CreateTradeRequest{
				Ticker:   "AAPL",
				Type:     model.TradeTypeCSP,
				Strike:   &negativeStrike,
				Premium:  2.50,
				Quantity: 1,
			},
			expectError: true,
			errorField:  "strike",
		},
		{
			name: "malformed expiration date",
			req: request.CreateTradeRequest{
				Ticker:     "AAPL",
				Type:       model.TradeTypeCSP,
				Expiration: "21-03-2025",
				Premium:    2.50,
				Quantity:   1,
			},
			expectError: true,
			errorField:  "expiration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateCreateTrade(tt.req)

			if !tt.expectError {
				if err != nil {
					t.Fatalf("Expected no error, got: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}

			var vErr *validation.Error
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *validation.Error, got %T", err)
			}
			if _, ok := vErr.Fields[tt.errorField]; !ok {
				t.Errorf("Expected error on field %q, got %v", tt.errorField, vErr.Fields)
			}
		})
	}
}

// TestValidateCloseTrade tests close request validation.
func TestValidateCloseTrade(t *testing.T) {
	t.Run("accepts terminal statuses", func(t *testing.T) {
		for _, status := range []string{model.TradeStatusClosed, model.TradeStatusExpired, model.TradeStatusAssigned} {
			if err := validation.ValidateCloseTrade(request.CloseTradeRequest{Status: status}); err != nil {
				t.Errorf("Expected %s to be valid, got: %v", status, err)
			}
		}
	})

	t.Run("rejects OPEN and unknown statuses", func(t *testing.T) {
		for _, status := range []string{model.TradeStatusOpen, "", "DONE"} {
			if err := validation.ValidateCloseTrade(request.CloseTradeRequest{Status: status}); err == nil {
				t.Errorf("Expected %q to be rejected", status)
			}
		}
	})
}

// TestValidateCreateAssignment tests assignment request validation.
func TestValidateCreateAssignment(t *testing.T) {
	t.Run("accepts a valid put assignment", func(t *testing.T) {
		err := validation.ValidateCreateAssignment(request.CreateAssignmentRequest{
			Ticker:       "AAPL",
			Kind:         request.AssignmentKindPut,
			Shares:       100,
			CostPerShare: 185.50,
		})
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
	})

	t.Run("rejects non-positive shares", func(t *testing.T) {
		err := validation.ValidateCreateAssignment(request.CreateAssignmentRequest{
			Ticker:       "AAPL",
			Kind:         request.AssignmentKindCall,
			Shares:       0,
			CostPerShare: 185.50,
		})
		if err == nil {
			t.Fatal("Expected validation error, got nil")
		}
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		err := validation.ValidateCreateAssignment(request.CreateAssignmentRequest{
			Ticker:       "AAPL",
			Kind:         "exercise",
			Shares:       100,
			CostPerShare: 185.50,
		})
		if err == nil {
			t.Fatal("Expected validation error, got nil")
		}
	})
}
