package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPositionNotFound indicates that a position with the given ticker or ID does not exist.
	ErrPositionNotFound = errors.New("position not found")

	// ErrTradeNotFound indicates that a trade with the given ID does not exist.
	ErrTradeNotFound = errors.New("trade not found")

	// ErrSettingNotFound indicates that a setting with the given key does not exist.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrTradeAlreadyClosed indicates that a trade has already left the OPEN state.
	// Status transitions happen exactly once; a closed trade is never re-opened.
	ErrTradeAlreadyClosed = errors.New("trade already closed")

	// ErrInvalidTradeType indicates a trade type outside the allowed tag set.
	ErrInvalidTradeType = errors.New("invalid trade type")

	// ErrInvalidTradeStatus indicates a status outside the allowed tag set.
	ErrInvalidTradeStatus = errors.New("invalid trade status")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	// Position operation errors
	ErrFailedToRetrievePositions = errors.New("failed to retrieve positions")
	ErrFailedToRetrievePosition  = errors.New("failed to retrieve position")

	// Trade operation errors
	ErrFailedToRetrieveTrades = errors.New("failed to retrieve trades")
	ErrFailedToRetrieveTrade  = errors.New("failed to retrieve trade")

	// Premium operation errors
	ErrFailedToGetPremiumSummary = errors.New("failed to get premium summary")
	ErrFailedToGetTopPerformers  = errors.New("failed to get top performers")

	// Snapshot operation errors
	ErrFailedToRetrieveSnapshots = errors.New("failed to retrieve snapshots")
	ErrFailedToSaveSnapshot      = errors.New("failed to save snapshot")

	// Settings operation errors
	ErrFailedToRetrieveSettings = errors.New("failed to retrieve settings")
	ErrFailedToSaveSetting      = errors.New("failed to save setting")

	// Portfolio profile operation errors
	ErrFailedToRetrieveProfile = errors.New("failed to retrieve portfolio info")
	ErrFailedToSaveProfile     = errors.New("failed to save portfolio info")
)
