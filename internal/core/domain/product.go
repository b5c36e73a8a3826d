package domain

// Product is one purchasable line within a campaign. SupplyLimit of zero
// means unlimited. SoldCount and NetRaised are historical ledger values and
// survive deactivation, so refund entitlement of already-sold units is never
// lost when a product is removed from sale.
type Product struct {
	CampaignID  string
	ProductID   int64
	Price       int64
	SupplyLimit int64
	SoldCount   int64
	NetRaised   int64
	Active      bool
}

// ProductConfig is the creation-time description of a product.
type ProductConfig struct {
	ProductID   int64 `json:"product_id"`
	Price       int64 `json:"price"`
	SupplyLimit int64 `json:"supply_limit"`
}

// ValidateProducts rejects an empty product list, duplicate ids and
// non-positive prices. Campaign creation must not proceed on error.
func ValidateProducts(products []ProductConfig) error {
	if len(products) == 0 {
		return ErrEmptyProducts
	}
	seen := make(map[int64]struct{}, len(products))
	for _, p := range products {
		if p.Price <= 0 || p.SupplyLimit < 0 {
			return ErrInvalidProduct
		}
		if _, dup := seen[p.ProductID]; dup {
			return ErrDuplicateProduct
		}
		seen[p.ProductID] = struct{}{}
	}
	return nil
}
