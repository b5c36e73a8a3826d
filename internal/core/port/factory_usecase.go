package port

import (
	"context"
	"time"

	"fundvault/internal/core/domain"
)

// CreateCampaignReq carries everything needed to deploy a new campaign.
// The effective fee is resolved by the factory: the creator's one-time
// override if present, else the factory default.
type CreateCampaignReq struct {
	Creator       domain.Address
	Beneficiary   domain.Address
	FeeWallet     domain.Address
	Policy        domain.FundingPolicy
	MinimumTarget int64
	Deadline      time.Time
	Products      []domain.ProductConfig
}

// FactoryUseCase creates campaign instances and manages factory-level
// configuration: per-creator fee overrides and the implementation template.
type FactoryUseCase interface {
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*CampaignView, error)
	SetSpecialFee(ctx context.Context, caller, creator domain.Address, bps int32) error
	GetSpecialFee(ctx context.Context, creator domain.Address) (*int32, error)
	UpdateImplementation(ctx context.Context, caller domain.Address, ref string) error
	CurrentImplementation(ctx context.Context) (string, error)
	ListCampaigns(ctx context.Context) ([]CampaignView, error)
}
