package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"fundvault/internal/core/domain"
	"fundvault/internal/core/port"
	"fundvault/internal/core/port/mocks"
)

func createReq() port.CreateCampaignReq {
	return port.CreateCampaignReq{
		Creator:       "carol",
		Beneficiary:   "beneficiary",
		FeeWallet:     "fee-wallet",
		Policy:        domain.PolicyAllOrNothing,
		MinimumTarget: 1000_000000,
		Deadline:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Products:      []domain.ProductConfig{{ProductID: 1, Price: 2000_000000, SupplyLimit: 100}},
	}
}

// TestCreateCampaign verifies the factory deploys with the default fee, the
// factory owner as campaign owner, and a mint grant for the new id.
func TestCreateCampaign(t *testing.T) {
	repo := mocks.NewMockFactoryRepository(t)
	receipts := mocks.NewMockReceiptLedger(t)

	var grantedID string
	receipts.EXPECT().
		GrantMinter(mock.Anything, mock.AnythingOfType("string")).
		Run(func(_ context.Context, campaignID string) { grantedID = campaignID }).
		Return(nil)
	repo.EXPECT().
		CreateCampaign(mock.Anything, domain.Address("carol"), mock.AnythingOfType("domain.Campaign"), mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.Address, c domain.Campaign, _ []domain.ProductConfig) (*domain.Campaign, error) {
			if c.FeeBps != 250 {
				t.Fatalf("expected default fee 250, got %d", c.FeeBps)
			}
			if c.Owner != "factory-owner" {
				t.Fatalf("expected factory owner, got %s", c.Owner)
			}
			if c.State != domain.StateOpen {
				t.Fatalf("expected open state, got %s", c.State)
			}
			c.Implementation = "v1"
			return &c, nil
		})

	f := NewFactoryUseCase(repo, receipts, "factory-owner", 250, testLogger())
	view, err := f.CreateCampaign(context.Background(), createReq())
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	if view.ID == "" || view.ID != grantedID {
		t.Fatalf("mint grant id %q does not match campaign id %q", grantedID, view.ID)
	}
	if view.Implementation != "v1" {
		t.Fatalf("expected implementation v1, got %s", view.Implementation)
	}
	if len(view.Products) != 1 || view.Products[0].Price != 2000_000000 {
		t.Fatalf("catalog not carried into view: %+v", view.Products)
	}
}

// TestSpecialFeeConsumedOnce reproduces the one-time override lifecycle: the
// repository applies the pending override to the first creation and the next
// one falls back to the default.
func TestSpecialFeeConsumedOnce(t *testing.T) {
	repo := mocks.NewMockFactoryRepository(t)
	receipts := mocks.NewMockReceiptLedger(t)

	receipts.EXPECT().GrantMinter(mock.Anything, mock.AnythingOfType("string")).Return(nil)

	// The override lives in factory storage; the usecase always submits the
	// default and the repository resolves the effective fee atomically.
	pending := int32(500)
	consumed := false
	repo.EXPECT().SetSpecialFee(mock.Anything, domain.Address("carol"), int32(500)).Return(nil)
	repo.EXPECT().
		CreateCampaign(mock.Anything, domain.Address("carol"), mock.AnythingOfType("domain.Campaign"), mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.Address, c domain.Campaign, _ []domain.ProductConfig) (*domain.Campaign, error) {
			if !consumed {
				c.FeeBps = pending
				consumed = true
			}
			return &c, nil
		})
	repo.EXPECT().
		GetSpecialFee(mock.Anything, domain.Address("carol")).
		RunAndReturn(func(context.Context, domain.Address) (*int32, error) {
			if consumed {
				return nil, nil
			}
			return &pending, nil
		})

	f := NewFactoryUseCase(repo, receipts, "factory-owner", 250, testLogger())

	if err := f.SetSpecialFee(context.Background(), "factory-owner", "carol", 500); err != nil {
		t.Fatalf("SetSpecialFee error: %v", err)
	}
	if fee, err := f.GetSpecialFee(context.Background(), "carol"); err != nil || fee == nil || *fee != 500 {
		t.Fatalf("expected pending override 500, got %v %v", fee, err)
	}

	first, err := f.CreateCampaign(context.Background(), createReq())
	if err != nil {
		t.Fatalf("first CreateCampaign error: %v", err)
	}
	if first.FeeBps != 500 {
		t.Fatalf("expected override fee 500, got %d", first.FeeBps)
	}
	if fee, err := f.GetSpecialFee(context.Background(), "carol"); err != nil || fee != nil {
		t.Fatalf("override should be consumed, got %v %v", fee, err)
	}

	second, err := f.CreateCampaign(context.Background(), createReq())
	if err != nil {
		t.Fatalf("second CreateCampaign error: %v", err)
	}
	if second.FeeBps != 250 {
		t.Fatalf("expected default fee 250, got %d", second.FeeBps)
	}
}

func TestSetSpecialFeeOwnerOnly(t *testing.T) {
	repo := mocks.NewMockFactoryRepository(t)
	receipts := mocks.NewMockReceiptLedger(t)

	f := NewFactoryUseCase(repo, receipts, "factory-owner", 250, testLogger())
	if err := f.SetSpecialFee(context.Background(), "mallory", "carol", 500); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := f.SetSpecialFee(context.Background(), "factory-owner", "carol", 10001); !errors.Is(err, domain.ErrInvalidFee) {
		t.Fatalf("expected ErrInvalidFee, got %v", err)
	}
}

func TestCreateCampaignValidation(t *testing.T) {
	repo := mocks.NewMockFactoryRepository(t)
	receipts := mocks.NewMockReceiptLedger(t)

	f := NewFactoryUseCase(repo, receipts, "factory-owner", 250, testLogger())

	req := createReq()
	req.Policy = "crowdloan"
	if _, err := f.CreateCampaign(context.Background(), req); !errors.Is(err, domain.ErrUnknownPolicy) {
		t.Fatalf("unknown policy: got %v", err)
	}

	req = createReq()
	req.Products = nil
	if _, err := f.CreateCampaign(context.Background(), req); !errors.Is(err, domain.ErrEmptyProducts) {
		t.Fatalf("empty catalog: got %v", err)
	}

	req = createReq()
	req.Beneficiary = ""
	if _, err := f.CreateCampaign(context.Background(), req); !errors.Is(err, domain.ErrInvalidAddress) {
		t.Fatalf("missing beneficiary: got %v", err)
	}

	req = createReq()
	req.Products = []domain.ProductConfig{{ProductID: 1, Price: 10}, {ProductID: 1, Price: 20}}
	if _, err := f.CreateCampaign(context.Background(), req); !errors.Is(err, domain.ErrDuplicateProduct) {
		t.Fatalf("duplicate product: got %v", err)
	}
}

func TestUpdateImplementation(t *testing.T) {
	repo := mocks.NewMockFactoryRepository(t)
	receipts := mocks.NewMockReceiptLedger(t)

	f := NewFactoryUseCase(repo, receipts, "factory-owner", 250, testLogger())

	if err := f.UpdateImplementation(context.Background(), "mallory", "v2"); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := f.UpdateImplementation(context.Background(), "factory-owner", ""); !errors.Is(err, domain.ErrInvalidRef) {
		t.Fatalf("expected ErrInvalidRef, got %v", err)
	}

	repo.EXPECT().SetImplementation(mock.Anything, "v2").Return(nil)
	if err := f.UpdateImplementation(context.Background(), "factory-owner", "v2"); err != nil {
		t.Fatalf("UpdateImplementation error: %v", err)
	}

	repo.EXPECT().CurrentImplementation(mock.Anything).Return("v2", nil)
	ref, err := f.CurrentImplementation(context.Background())
	if err != nil {
		t.Fatalf("CurrentImplementation error: %v", err)
	}
	if ref != "v2" {
		t.Fatalf("expected v2, got %s", ref)
	}
}
