package port

import (
	"context"
	"errors"
	"time"

	"fundvault/internal/core/domain"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrProductExists    = errors.New("product id already exists")
)

// DepositRecord is the ledger mutation of one accepted deposit. Gross, Fee
// and Net are precomputed by the usecase; Fee + Net == Gross.
type DepositRecord struct {
	EventID    string
	CampaignID string
	Depositor  domain.Address
	ProductID  int64
	Quantity   int64
	Gross      int64
	Fee        int64
	Net        int64
}

// RefundRecord is the ledger mutation of one refund claim.
type RefundRecord struct {
	EventID    string
	CampaignID string
	Claimant   domain.Address
	ProductID  int64
	Quantity   int64
	Amount     int64
}

// FinalizeResult reports the terminal state a campaign entered and the
// amount released from custody (zero on the refundable branch).
type FinalizeResult struct {
	Outcome  domain.CampaignState
	Released int64
}

// CampaignRepository is the persistence port for campaign state. Mutating
// methods must be atomic: they re-validate every precondition under a row
// lock and either apply all of their effects or none. The Reverse/Revert
// methods are compensations used to unwind a committed mutation when a
// later collaborator call in the same logical operation fails.
type CampaignRepository interface {
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	GetProduct(ctx context.Context, campaignID string, productID int64) (*domain.Product, error)
	ListProducts(ctx context.Context, campaignID string) ([]domain.Product, error)
	ListEvents(ctx context.Context, campaignID string, limit int) ([]domain.Event, error)
	// ListOpenPastDeadline returns open campaigns whose deadline has passed,
	// for the automation keeper.
	ListOpenPastDeadline(ctx context.Context, now time.Time) ([]domain.Campaign, error)

	// ApplyDeposit credits the product and campaign ledgers and records the
	// deposit event in one transaction.
	ApplyDeposit(ctx context.Context, rec DepositRecord) error
	// ReverseDeposit undoes ApplyDeposit, removing the event it recorded.
	ReverseDeposit(ctx context.Context, rec DepositRecord) error

	// Finalize transitions the campaign to its terminal state under a row
	// lock, re-resolving the outcome at execution time.
	Finalize(ctx context.Context, campaignID string, actor domain.Address, now time.Time) (*FinalizeResult, error)
	// RevertFinalize restores the open state after a failed payout.
	RevertFinalize(ctx context.Context, campaignID string, released int64) error

	// ApplyRefund debits the ledgers and records the refund event.
	ApplyRefund(ctx context.Context, rec RefundRecord) error
	// ReverseRefund undoes ApplyRefund, removing the event it recorded.
	ReverseRefund(ctx context.Context, rec RefundRecord) error

	SetPaused(ctx context.Context, campaignID string, paused bool, actor domain.Address) error
	UpdateFee(ctx context.Context, campaignID string, bps int32, actor domain.Address) error
	UpdateDeadline(ctx context.Context, campaignID string, deadline time.Time, actor domain.Address) error
	AddProduct(ctx context.Context, campaignID string, cfg domain.ProductConfig, actor domain.Address) error
	// RemoveProduct deactivates the product. Historical sold_count and
	// net_raised survive so outstanding refund entitlement is preserved.
	RemoveProduct(ctx context.Context, campaignID string, productID int64, actor domain.Address) error
	UpdateProductPrice(ctx context.Context, campaignID string, productID, price int64, actor domain.Address) error
}
