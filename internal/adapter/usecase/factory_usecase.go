package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fundvault/internal/core/domain"
	"fundvault/internal/core/port"
)

// FactoryUseCase creates campaign instances and manages factory state. The
// factory owner administers created campaigns; the creator's special-fee
// override, when set, is consumed by exactly one creation.
type FactoryUseCase struct {
	repo       port.FactoryRepository
	receipts   port.ReceiptLedger
	owner      domain.Address
	defaultFee int32
	logger     *slog.Logger

	now func() time.Time
}

// NewFactoryUseCase creates the factory with its owner address and the
// default fee in basis points applied when no override exists.
func NewFactoryUseCase(repo port.FactoryRepository, receipts port.ReceiptLedger, owner domain.Address, defaultFeeBps int32, logger *slog.Logger) *FactoryUseCase {
	return &FactoryUseCase{
		repo:       repo,
		receipts:   receipts,
		owner:      owner,
		defaultFee: defaultFeeBps,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateCampaign deploys a new campaign instance bound to the current
// implementation ref. Mint authorization is granted before the insert; the
// grant is inert if the insert fails because the id never comes into use.
func (f *FactoryUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*port.CampaignView, error) {
	switch req.Policy {
	case domain.PolicyAllOrNothing, domain.PolicyLimitless, domain.PolicyFlexible:
	default:
		return nil, domain.ErrUnknownPolicy
	}
	if req.Creator == "" || req.Beneficiary == "" || req.FeeWallet == "" {
		return nil, domain.ErrInvalidAddress
	}
	if req.MinimumTarget < 0 {
		return nil, domain.ErrInvalidProduct
	}
	if err := domain.ValidateProducts(req.Products); err != nil {
		return nil, err
	}

	now := f.now()
	c := domain.Campaign{
		ID:            uuid.NewString(),
		Policy:        req.Policy,
		State:         domain.StateOpen,
		Deadline:      req.Deadline,
		MinimumTarget: req.MinimumTarget,
		FeeBps:        f.defaultFee,
		Owner:         f.owner,
		Beneficiary:   req.Beneficiary,
		FeeWallet:     req.FeeWallet,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := f.receipts.GrantMinter(ctx, c.ID); err != nil {
		return nil, err
	}
	created, err := f.repo.CreateCampaign(ctx, req.Creator, c, req.Products)
	if err != nil {
		return nil, err
	}

	f.logger.Info("campaign created",
		slog.String("campaign_id", created.ID),
		slog.String("creator", string(req.Creator)),
		slog.Int("fee_bps", int(created.FeeBps)),
		slog.String("implementation", created.Implementation),
	)
	view := campaignView(created)
	for _, p := range req.Products {
		view.Products = append(view.Products, domain.Product{
			CampaignID:  created.ID,
			ProductID:   p.ProductID,
			Price:       p.Price,
			SupplyLimit: p.SupplyLimit,
			Active:      true,
		})
	}
	return view, nil
}

// SetSpecialFee stores a one-time override for the creator's next creation.
func (f *FactoryUseCase) SetSpecialFee(ctx context.Context, caller, creator domain.Address, bps int32) error {
	if caller != f.owner {
		return domain.ErrNotOwner
	}
	if bps < 0 || bps > domain.FeeDenominator {
		return domain.ErrInvalidFee
	}
	return f.repo.SetSpecialFee(ctx, creator, bps)
}

// GetSpecialFee returns nil when no override is pending.
func (f *FactoryUseCase) GetSpecialFee(ctx context.Context, creator domain.Address) (*int32, error) {
	return f.repo.GetSpecialFee(ctx, creator)
}

// UpdateImplementation points the factory at a new template ref. Campaigns
// created afterwards bind to it; existing campaigns keep theirs.
func (f *FactoryUseCase) UpdateImplementation(ctx context.Context, caller domain.Address, ref string) error {
	if caller != f.owner {
		return domain.ErrNotOwner
	}
	if ref == "" {
		return domain.ErrInvalidRef
	}
	return f.repo.SetImplementation(ctx, ref)
}

// CurrentImplementation returns the ref the next created campaign binds to.
func (f *FactoryUseCase) CurrentImplementation(ctx context.Context) (string, error) {
	return f.repo.CurrentImplementation(ctx)
}

func (f *FactoryUseCase) ListCampaigns(ctx context.Context) ([]port.CampaignView, error) {
	campaigns, err := f.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]port.CampaignView, 0, len(campaigns))
	for i := range campaigns {
		views = append(views, *campaignView(&campaigns[i]))
	}
	return views, nil
}
