package port

import (
	"context"
	"errors"

	"fundvault/internal/core/domain"
)

var (
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrNotMinter             = errors.New("not an authorized minter")
)

// ValueTransferMedium is the stable-value balance ledger the engine moves
// funds on. TransferFrom is the pull path: the owner must have approved the
// spender for at least the amount, and the allowance is consumed.
type ValueTransferMedium interface {
	Approve(ctx context.Context, owner, spender domain.Address, amount int64) error
	TransferFrom(ctx context.Context, spender, from, to domain.Address, amount int64) error
	Transfer(ctx context.Context, from, to domain.Address, amount int64) error
	BalanceOf(ctx context.Context, addr domain.Address) (int64, error)
}

// ReceiptLedger issues fungible-per-product ownership receipts. Minting is
// restricted to campaigns granted authorization at creation time.
type ReceiptLedger interface {
	GrantMinter(ctx context.Context, campaignID string) error
	Mint(ctx context.Context, campaignID string, to domain.Address, productID, quantity int64) error
	Burn(ctx context.Context, campaignID string, from domain.Address, productID, quantity int64) error
	BalanceOf(ctx context.Context, holder domain.Address, campaignID string, productID int64) (int64, error)
}

// AutomationTrigger is the two-entry-point contract for the periodic
// external caller. CheckReady is read-only; Trigger re-validates readiness
// internally and never trusts a prior CheckReady result.
type AutomationTrigger interface {
	CheckReady(ctx context.Context, campaignID string, data []byte) (bool, []byte, error)
	Trigger(ctx context.Context, campaignID string, data []byte) error
}
