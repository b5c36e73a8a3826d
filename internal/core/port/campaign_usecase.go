package port

import (
	"context"
	"time"

	"fundvault/internal/core/domain"
)

// DepositReq describes one purchase. The depositor must have approved the
// campaign's custody address for at least price * quantity beforehand.
type DepositReq struct {
	CampaignID string
	Depositor  domain.Address
	ProductID  int64
	Quantity   int64
}

// DepositResp reports the amounts settled by an accepted deposit.
type DepositResp struct {
	Gross int64 `json:"gross"`
	Fee   int64 `json:"fee"`
	Net   int64 `json:"net"`
}

type RefundReq struct {
	CampaignID string
	Claimant   domain.Address
	ProductID  int64
	Quantity   int64
}

type RefundResp struct {
	Amount int64 `json:"amount"`
}

// FinalizeResp reports the terminal state entered and, on the success
// branch, the amount released to the beneficiary.
type FinalizeResp struct {
	Outcome  domain.CampaignState `json:"outcome"`
	Released int64                `json:"released"`
}

// CampaignView is the read DTO for a campaign and its catalog.
type CampaignView struct {
	ID             string               `json:"id"`
	Policy         domain.FundingPolicy `json:"policy"`
	State          domain.CampaignState `json:"state"`
	Deadline       time.Time            `json:"deadline"`
	MinimumTarget  int64                `json:"minimum_target"`
	FeeBps         int32                `json:"fee_bps"`
	Paused         bool                 `json:"paused"`
	TotalRaised    int64                `json:"total_raised"`
	Owner          domain.Address       `json:"owner"`
	Beneficiary    domain.Address       `json:"beneficiary"`
	FeeWallet      domain.Address       `json:"fee_wallet"`
	Implementation string               `json:"implementation"`
	Products       []domain.Product     `json:"products,omitempty"`
}

// CampaignUseCase is the primary port into the escrow engine. Gated
// operations take the caller address explicitly and verify it against the
// stored owner; the engine has no ambient caller identity.
type CampaignUseCase interface {
	// Approve authorizes the campaign's custody address to pull up to
	// amount from the caller's balance ahead of deposits.
	Approve(ctx context.Context, campaignID string, caller domain.Address, amount int64) error
	Deposit(ctx context.Context, req DepositReq) (*DepositResp, error)
	Finalize(ctx context.Context, campaignID string, caller domain.Address) (*FinalizeResp, error)
	ClaimRefund(ctx context.Context, req RefundReq) (*RefundResp, error)

	Pause(ctx context.Context, campaignID string, caller domain.Address) error
	Unpause(ctx context.Context, campaignID string, caller domain.Address) error
	UpdateFee(ctx context.Context, campaignID string, caller domain.Address, bps int32) error
	UpdateDeadline(ctx context.Context, campaignID string, caller domain.Address, deadline time.Time) error
	AddProduct(ctx context.Context, campaignID string, caller domain.Address, cfg domain.ProductConfig) error
	RemoveProduct(ctx context.Context, campaignID string, caller domain.Address, productID int64) error
	UpdateProductPrice(ctx context.Context, campaignID string, caller domain.Address, productID, price int64) error

	GetCampaign(ctx context.Context, campaignID string) (*CampaignView, error)
	ListEvents(ctx context.Context, campaignID string, limit int) ([]domain.Event, error)

	AutomationTrigger
}
