package domain

import "errors"

// Policy violations. Rejected synchronously, retrying without a state
// change cannot succeed.
var (
	ErrPaused             = errors.New("campaign is paused")
	ErrFinalized          = errors.New("campaign already finalized")
	ErrNotFinalized       = errors.New("campaign not finalized")
	ErrNotRefundable      = errors.New("campaign has no refund path")
	ErrDeadlineNotReached = errors.New("deadline not reached")
)

// Authorization failures.
var ErrNotOwner = errors.New("caller is not the owner")

// Resource exhaustion. The caller must remediate before retrying.
var (
	ErrSupplyExhausted      = errors.New("product supply exhausted")
	ErrInsufficientReceipts = errors.New("insufficient receipt units")
)

// Input validation. Rejected at the boundary before any state read.
var (
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrUnknownProduct   = errors.New("unknown product")
	ErrEmptyProducts    = errors.New("product list is empty")
	ErrDuplicateProduct = errors.New("duplicate product id")
	ErrInvalidProduct   = errors.New("invalid product configuration")
	ErrInvalidFee       = errors.New("fee basis points out of range")
	ErrUnknownPolicy    = errors.New("unknown funding policy")
	ErrInvalidAddress   = errors.New("missing wallet address")
	ErrInvalidRef       = errors.New("implementation ref is empty")
)
