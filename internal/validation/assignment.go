package validation

import (
	"fmt"
	"strings"

	"github.com/wheeltracker/backend/internal/api/request"
)

// ValidAssignmentKind contains the allowed assignment kinds.
var ValidAssignmentKind = map[string]bool{
	request.AssignmentKindPut:  true,
	request.AssignmentKindCall: true,
}

// ValidateCreateAssignment validates an assignment request.
//
// Required fields:
//   - ticker: non-empty, at most 10 characters
//   - kind: "put" or "call"
//   - shares: positive
//   - costPerShare: never negative
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateAssignment(req request.CreateAssignmentRequest) error {
	errors := make(map[string]string)

	validateTicker(req.Ticker, errors)

	if strings.TrimSpace(req.Kind) == "" {
		errors["kind"] = "kind is required"
	} else if !ValidAssignmentKind[req.Kind] {
		errors["kind"] = fmt.Sprintf("invalid assignment kind: %s", req.Kind)
	}

	if req.Shares <= 0 {
		errors["shares"] = "shares must be positive"
	}

	if req.CostPerShare < 0 {
		errors["costPerShare"] = "costPerShare cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
