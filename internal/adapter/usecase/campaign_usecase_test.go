package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"fundvault/internal/core/domain"
	"fundvault/internal/core/port"
	"fundvault/internal/core/port/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:            "c1",
		Policy:        domain.PolicyAllOrNothing,
		State:         domain.StateOpen,
		Deadline:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		MinimumTarget: 1000_000000,
		FeeBps:        250,
		Owner:         "factory-owner",
		Beneficiary:   "beneficiary",
		FeeWallet:     "fee-wallet",
	}
}

// TestApprove sets the allowance on the campaign's custody address, the
// authorization the deposit pull path consumes.
func TestApprove(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()
	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil)
	medium.EXPECT().
		Approve(mock.Anything, domain.Address("alice"), c.CustodyAddress(), int64(2000_000000)).
		Return(nil)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	if err := uc.Approve(context.Background(), "c1", "alice", 2000_000000); err != nil {
		t.Fatalf("Approve error: %v", err)
	}
}

// TestDepositSettlement checks the full settlement of one purchase: gross
// pulled into custody, 250 bps fee forwarded, net credited, receipts minted.
func TestDepositSettlement(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()
	p := &domain.Product{CampaignID: "c1", ProductID: 7, Price: 2000_000000, Active: true}
	custody := c.CustodyAddress()

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil)
	repo.EXPECT().GetProduct(mock.Anything, "c1", int64(7)).Return(p, nil)
	medium.EXPECT().
		TransferFrom(mock.Anything, custody, domain.Address("alice"), custody, int64(2000_000000)).
		Return(nil)
	repo.EXPECT().
		ApplyDeposit(mock.Anything, mock.MatchedBy(func(rec port.DepositRecord) bool {
			return rec.CampaignID == "c1" && rec.Gross == 2000_000000 &&
				rec.Fee == 50_000000 && rec.Net == 1950_000000 && rec.EventID != ""
		})).
		Return(nil)
	receipts.EXPECT().
		Mint(mock.Anything, "c1", domain.Address("alice"), int64(7), int64(1)).
		Return(nil)
	medium.EXPECT().
		Transfer(mock.Anything, custody, domain.Address("fee-wallet"), int64(50_000000)).
		Return(nil)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	resp, err := uc.Deposit(context.Background(), port.DepositReq{
		CampaignID: "c1", Depositor: "alice", ProductID: 7, Quantity: 1,
	})
	if err != nil {
		t.Fatalf("Deposit error: %v", err)
	}
	if resp.Gross != 2000_000000 || resp.Fee != 50_000000 || resp.Net != 1950_000000 {
		t.Fatalf("unexpected split: %+v", resp)
	}
}

// TestDepositUnwindsOnMintFailure simulates the receipt ledger failing after
// funds were pulled and the deposit recorded: both steps must be undone.
func TestDepositUnwindsOnMintFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()
	c.FeeBps = 0
	p := &domain.Product{CampaignID: "c1", ProductID: 7, Price: 100, Active: true}
	custody := c.CustodyAddress()

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil)
	repo.EXPECT().GetProduct(mock.Anything, "c1", int64(7)).Return(p, nil)
	medium.EXPECT().
		TransferFrom(mock.Anything, custody, domain.Address("alice"), custody, int64(300)).
		Return(nil)
	repo.EXPECT().
		ApplyDeposit(mock.Anything, mock.AnythingOfType("port.DepositRecord")).
		Return(nil)
	receipts.EXPECT().
		Mint(mock.Anything, "c1", domain.Address("alice"), int64(7), int64(3)).
		Return(errors.New("ledger down"))

	// Compensations, in reverse order of application.
	repo.EXPECT().
		ReverseDeposit(mock.Anything, mock.AnythingOfType("port.DepositRecord")).
		Return(nil)
	medium.EXPECT().
		Transfer(mock.Anything, custody, domain.Address("alice"), int64(300)).
		Return(nil)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	_, err := uc.Deposit(context.Background(), port.DepositReq{
		CampaignID: "c1", Depositor: "alice", ProductID: 7, Quantity: 3,
	})
	if err == nil {
		t.Fatal("expected deposit to fail")
	}
}

// TestDepositRejectsExhaustedSupply: a quantity that would cross the supply
// limit must be rejected before any value moves.
func TestDepositRejectsExhaustedSupply(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()
	p := &domain.Product{CampaignID: "c1", ProductID: 7, Price: 100, SupplyLimit: 10, SoldCount: 9, Active: true}

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil)
	repo.EXPECT().GetProduct(mock.Anything, "c1", int64(7)).Return(p, nil)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	_, err := uc.Deposit(context.Background(), port.DepositReq{
		CampaignID: "c1", Depositor: "alice", ProductID: 7, Quantity: 2,
	})
	if !errors.Is(err, domain.ErrSupplyExhausted) {
		t.Fatalf("expected ErrSupplyExhausted, got %v", err)
	}
}

// TestDepositRejectsOverflowingQuantity: a quantity large enough to wrap
// price*quantity past int64 must be rejected before any value moves or a
// single receipt unit is minted.
func TestDepositRejectsOverflowingQuantity(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()
	p := &domain.Product{CampaignID: "c1", ProductID: 7, Price: 1_000_000, Active: true}

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil)
	repo.EXPECT().GetProduct(mock.Anything, "c1", int64(7)).Return(p, nil)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	_, err := uc.Deposit(context.Background(), port.DepositReq{
		CampaignID: "c1", Depositor: "alice", ProductID: 7, Quantity: math.MaxInt64/2 + 1,
	})
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

// TestFinalizeReleasesFunds covers the success branch: after the state
// transition commits, the accumulated net moves from custody to the
// beneficiary.
func TestFinalizeReleasesFunds(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()
	c.TotalRaised = 1950_000000

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil)
	repo.EXPECT().
		Finalize(mock.Anything, "c1", domain.Address("factory-owner"), mock.AnythingOfType("time.Time")).
		Return(&port.FinalizeResult{Outcome: domain.StateFinalizedSuccess, Released: 1950_000000}, nil)
	medium.EXPECT().
		Transfer(mock.Anything, c.CustodyAddress(), domain.Address("beneficiary"), int64(1950_000000)).
		Return(nil)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	resp, err := uc.Finalize(context.Background(), "c1", "factory-owner")
	if err != nil {
		t.Fatalf("Finalize error: %v", err)
	}
	if resp.Outcome != domain.StateFinalizedSuccess || resp.Released != 1950_000000 {
		t.Fatalf("unexpected result: %+v", resp)
	}
}

// TestFinalizeRevertsOnPayoutFailure: the committed transition is rolled
// back when the beneficiary transfer fails, so finalize can be retried.
func TestFinalizeRevertsOnPayoutFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil)
	repo.EXPECT().
		Finalize(mock.Anything, "c1", domain.Address("factory-owner"), mock.AnythingOfType("time.Time")).
		Return(&port.FinalizeResult{Outcome: domain.StateFinalizedSuccess, Released: 500}, nil)
	medium.EXPECT().
		Transfer(mock.Anything, c.CustodyAddress(), domain.Address("beneficiary"), int64(500)).
		Return(errors.New("medium unavailable"))
	repo.EXPECT().RevertFinalize(mock.Anything, "c1", int64(500)).Return(nil)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	if _, err := uc.Finalize(context.Background(), "c1", "factory-owner"); err == nil {
		t.Fatal("expected finalize to fail")
	}
}

func TestFinalizeRejectsNonOwner(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(openCampaign(), nil)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	if _, err := uc.Finalize(context.Background(), "c1", "mallory"); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

// TestClaimRefund pays out the recorded per-unit net, burning the receipts
// first so the same units cannot be claimed twice.
func TestClaimRefund(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()
	c.State = domain.StateFinalizedRefundable
	p := &domain.Product{CampaignID: "c1", ProductID: 7, Price: 1000_000000, SoldCount: 4, NetRaised: 3900_000000, Active: true}

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil)
	repo.EXPECT().GetProduct(mock.Anything, "c1", int64(7)).Return(p, nil)
	receipts.EXPECT().BalanceOf(mock.Anything, domain.Address("alice"), "c1", int64(7)).Return(2, nil)
	receipts.EXPECT().Burn(mock.Anything, "c1", domain.Address("alice"), int64(7), int64(2)).Return(nil)
	repo.EXPECT().
		ApplyRefund(mock.Anything, mock.MatchedBy(func(rec port.RefundRecord) bool {
			return rec.CampaignID == "c1" && rec.Amount == 1950_000000 && rec.Quantity == 2
		})).
		Return(nil)
	medium.EXPECT().
		Transfer(mock.Anything, c.CustodyAddress(), domain.Address("alice"), int64(1950_000000)).
		Return(nil)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	resp, err := uc.ClaimRefund(context.Background(), port.RefundReq{
		CampaignID: "c1", Claimant: "alice", ProductID: 7, Quantity: 2,
	})
	if err != nil {
		t.Fatalf("ClaimRefund error: %v", err)
	}
	if resp.Amount != 1950_000000 {
		t.Fatalf("expected 1950000000, got %d", resp.Amount)
	}
}

// TestClaimRefundWithoutReceipts: a claimant holding fewer units than
// requested is rejected before anything burns.
func TestClaimRefundWithoutReceipts(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()
	c.State = domain.StateFinalizedRefundable
	p := &domain.Product{CampaignID: "c1", ProductID: 7, SoldCount: 4, NetRaised: 3900_000000}

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil)
	repo.EXPECT().GetProduct(mock.Anything, "c1", int64(7)).Return(p, nil)
	receipts.EXPECT().BalanceOf(mock.Anything, domain.Address("alice"), "c1", int64(7)).Return(0, nil)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	_, err := uc.ClaimRefund(context.Background(), port.RefundReq{
		CampaignID: "c1", Claimant: "alice", ProductID: 7, Quantity: 2,
	})
	if !errors.Is(err, domain.ErrInsufficientReceipts) {
		t.Fatalf("expected ErrInsufficientReceipts, got %v", err)
	}
}

// TestClaimRefundOnSuccessCampaign: no refund path exists after a successful
// finalization.
func TestClaimRefundOnSuccessCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()
	c.State = domain.StateFinalizedSuccess
	p := &domain.Product{CampaignID: "c1", ProductID: 7, SoldCount: 4, NetRaised: 3900_000000}

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil)
	repo.EXPECT().GetProduct(mock.Anything, "c1", int64(7)).Return(p, nil)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	_, err := uc.ClaimRefund(context.Background(), port.RefundReq{
		CampaignID: "c1", Claimant: "alice", ProductID: 7, Quantity: 1,
	})
	if !errors.Is(err, domain.ErrNotRefundable) {
		t.Fatalf("expected ErrNotRefundable, got %v", err)
	}
}

func TestUpdateFeeRange(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	if err := uc.UpdateFee(context.Background(), "c1", "factory-owner", 10001); !errors.Is(err, domain.ErrInvalidFee) {
		t.Fatalf("expected ErrInvalidFee, got %v", err)
	}
	if err := uc.UpdateFee(context.Background(), "c1", "factory-owner", -1); !errors.Is(err, domain.ErrInvalidFee) {
		t.Fatalf("expected ErrInvalidFee, got %v", err)
	}
}

// TestTriggerBeforeDeadline: the trigger fails closed when the deadline has
// not been reached, regardless of what a prior CheckReady said.
func TestTriggerBeforeDeadline(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	uc.now = func() time.Time { return c.Deadline.Add(-time.Minute) }

	if err := uc.Trigger(context.Background(), "c1", nil); !errors.Is(err, domain.ErrDeadlineNotReached) {
		t.Fatalf("expected ErrDeadlineNotReached, got %v", err)
	}
}

// TestTriggerFinalizes: past the deadline the trigger finalizes with the
// automation actor identity.
func TestTriggerFinalizes(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()
	c.TotalRaised = 500_000000 // below target, refundable branch

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil)
	repo.EXPECT().
		Finalize(mock.Anything, "c1", AutomationActor, mock.AnythingOfType("time.Time")).
		Return(&port.FinalizeResult{Outcome: domain.StateFinalizedRefundable, Released: 0}, nil)

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	uc.now = func() time.Time { return c.Deadline.Add(time.Minute) }

	if err := uc.Trigger(context.Background(), "c1", nil); err != nil {
		t.Fatalf("Trigger error: %v", err)
	}
}

// TestLedgerConservation drives a deposit/finalize/refund sequence through
// a recording repository and checks that total_raised equals the sum of the
// product net_raised ledgers after every step.
func TestLedgerConservation(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()
	c.MinimumTarget = 10_000_000000 // will not be met
	products := map[int64]*domain.Product{
		1: {CampaignID: "c1", ProductID: 1, Price: 100_000000, Active: true},
		2: {CampaignID: "c1", ProductID: 2, Price: 250_000000, Active: true},
	}
	held := map[string]int64{}
	key := func(holder domain.Address, pid int64) string {
		return fmt.Sprintf("%s/%d", holder, pid)
	}

	repo.EXPECT().GetCampaign(mock.Anything, "c1").
		RunAndReturn(func(context.Context, string) (*domain.Campaign, error) {
			cp := *c
			return &cp, nil
		})
	repo.EXPECT().GetProduct(mock.Anything, "c1", mock.AnythingOfType("int64")).
		RunAndReturn(func(_ context.Context, _ string, pid int64) (*domain.Product, error) {
			cp := *products[pid]
			return &cp, nil
		})
	repo.EXPECT().ApplyDeposit(mock.Anything, mock.AnythingOfType("port.DepositRecord")).
		RunAndReturn(func(_ context.Context, rec port.DepositRecord) error {
			p := products[rec.ProductID]
			p.SoldCount += rec.Quantity
			p.NetRaised += rec.Net
			c.TotalRaised += rec.Net
			return nil
		})
	repo.EXPECT().Finalize(mock.Anything, "c1", domain.Address("factory-owner"), mock.AnythingOfType("time.Time")).
		RunAndReturn(func(_ context.Context, _ string, _ domain.Address, now time.Time) (*port.FinalizeResult, error) {
			outcome, err := c.FinalizeOutcome(now)
			if err != nil {
				return nil, err
			}
			c.State = outcome
			return &port.FinalizeResult{Outcome: outcome}, nil
		})
	repo.EXPECT().ApplyRefund(mock.Anything, mock.AnythingOfType("port.RefundRecord")).
		RunAndReturn(func(_ context.Context, rec port.RefundRecord) error {
			p := products[rec.ProductID]
			p.SoldCount -= rec.Quantity
			p.NetRaised -= rec.Amount
			c.TotalRaised -= rec.Amount
			return nil
		})

	medium.EXPECT().
		TransferFrom(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.AnythingOfType("int64")).
		Return(nil)
	medium.EXPECT().
		Transfer(mock.Anything, mock.Anything, mock.Anything, mock.AnythingOfType("int64")).
		Return(nil)
	receipts.EXPECT().
		Mint(mock.Anything, "c1", mock.Anything, mock.AnythingOfType("int64"), mock.AnythingOfType("int64")).
		RunAndReturn(func(_ context.Context, _ string, to domain.Address, pid, qty int64) error {
			held[key(to, pid)] += qty
			return nil
		})
	receipts.EXPECT().
		Burn(mock.Anything, "c1", mock.Anything, mock.AnythingOfType("int64"), mock.AnythingOfType("int64")).
		RunAndReturn(func(_ context.Context, _ string, from domain.Address, pid, qty int64) error {
			held[key(from, pid)] -= qty
			return nil
		})
	receipts.EXPECT().
		BalanceOf(mock.Anything, mock.Anything, "c1", mock.AnythingOfType("int64")).
		RunAndReturn(func(_ context.Context, holder domain.Address, _ string, pid int64) (int64, error) {
			return held[key(holder, pid)], nil
		})

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())
	uc.now = func() time.Time { return c.Deadline.Add(time.Hour) }

	conserved := func(step string) {
		t.Helper()
		var sum int64
		for _, p := range products {
			sum += p.NetRaised
		}
		if c.TotalRaised != sum {
			t.Fatalf("%s: total_raised %d != sum of product net_raised %d", step, c.TotalRaised, sum)
		}
	}

	deposits := []port.DepositReq{
		{CampaignID: "c1", Depositor: "alice", ProductID: 1, Quantity: 3},
		{CampaignID: "c1", Depositor: "bob", ProductID: 2, Quantity: 2},
		{CampaignID: "c1", Depositor: "alice", ProductID: 2, Quantity: 1},
	}
	for _, req := range deposits {
		if _, err := uc.Deposit(context.Background(), req); err != nil {
			t.Fatalf("Deposit error: %v", err)
		}
		conserved("deposit")
	}

	resp, err := uc.Finalize(context.Background(), "c1", "factory-owner")
	if err != nil {
		t.Fatalf("Finalize error: %v", err)
	}
	if resp.Outcome != domain.StateFinalizedRefundable {
		t.Fatalf("expected refundable outcome, got %s", resp.Outcome)
	}
	conserved("finalize")

	refunds := []port.RefundReq{
		{CampaignID: "c1", Claimant: "alice", ProductID: 1, Quantity: 2},
		{CampaignID: "c1", Claimant: "bob", ProductID: 2, Quantity: 2},
	}
	for _, req := range refunds {
		if _, err := uc.ClaimRefund(context.Background(), req); err != nil {
			t.Fatalf("ClaimRefund error: %v", err)
		}
		conserved("refund")
	}

	// alice still holds one unit of each product: 97_500000 + 243_750000
	if c.TotalRaised != 341_250000 {
		t.Fatalf("expected remaining total 341250000, got %d", c.TotalRaised)
	}
}

func TestCheckReady(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	medium := mocks.NewMockValueTransferMedium(t)
	receipts := mocks.NewMockReceiptLedger(t)

	c := openCampaign()
	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(c, nil).Twice()

	uc := NewCampaignUseCase(repo, medium, receipts, testLogger())

	uc.now = func() time.Time { return c.Deadline.Add(-time.Hour) }
	ready, data, err := uc.CheckReady(context.Background(), "c1", []byte("opaque"))
	if err != nil {
		t.Fatalf("CheckReady error: %v", err)
	}
	if ready {
		t.Fatal("ready before deadline")
	}
	if string(data) != "opaque" {
		t.Fatalf("data not passed through: %q", data)
	}

	uc.now = func() time.Time { return c.Deadline }
	ready, _, err = uc.CheckReady(context.Background(), "c1", nil)
	if err != nil {
		t.Fatalf("CheckReady error: %v", err)
	}
	if !ready {
		t.Fatal("not ready at deadline")
	}
}
