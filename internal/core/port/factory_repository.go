package port

import (
	"context"

	"fundvault/internal/core/domain"
)

// FactoryRepository persists factory state: the campaign registry, the
// per-creator one-time fee overrides and the implementation version pointer.
type FactoryRepository interface {
	// CreateCampaign inserts the campaign with its initial products in one
	// transaction. If the creator holds a special-fee override it is
	// consumed (deleted) and applied inside the same transaction, so two
	// concurrent creations can never both observe it. The returned campaign
	// carries the effective fee and the implementation ref it bound to.
	CreateCampaign(ctx context.Context, creator domain.Address, c domain.Campaign, products []domain.ProductConfig) (*domain.Campaign, error)

	SetSpecialFee(ctx context.Context, creator domain.Address, bps int32) error
	// GetSpecialFee returns nil when no override is set.
	GetSpecialFee(ctx context.Context, creator domain.Address) (*int32, error)

	// SetImplementation records a new template version and points the
	// factory at it. Existing campaigns keep the ref they bound at creation.
	SetImplementation(ctx context.Context, ref string) error
	CurrentImplementation(ctx context.Context) (string, error)

	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
}
