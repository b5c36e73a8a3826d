package domain

import (
	"errors"
	"math"
	"testing"
	"time"
)

// TestFeeSplit ensures fee + net always reconstructs the gross amount and
// the fee rounds down.
func TestFeeSplit(t *testing.T) {
	cases := []struct {
		bps   int32
		gross int64
		fee   int64
	}{
		{250, 2000_000000, 50_000000},
		{250, 1, 0},
		{250, 39, 0},
		{250, 40, 1},
		{500, 1000_000000, 50_000000},
		{0, 1000_000000, 0},
		{10000, 777, 777},
	}
	for _, tc := range cases {
		c := Campaign{FeeBps: tc.bps}
		fee := c.Fee(tc.gross)
		if fee != tc.fee {
			t.Fatalf("fee(%d bps, %d) = %d, want %d", tc.bps, tc.gross, fee, tc.fee)
		}
		if fee+(tc.gross-fee) != tc.gross {
			t.Fatalf("fee %d + net %d != gross %d", fee, tc.gross-fee, tc.gross)
		}
	}
}

func TestValidateDeposit(t *testing.T) {
	c := Campaign{State: StateOpen}
	p := &Product{ProductID: 1, Price: 100, SupplyLimit: 10, SoldCount: 8, Active: true}

	if err := c.ValidateDeposit(p, 2); err != nil {
		t.Fatalf("boundary quantity rejected: %v", err)
	}
	if err := c.ValidateDeposit(p, 3); !errors.Is(err, ErrSupplyExhausted) {
		t.Fatalf("expected ErrSupplyExhausted, got %v", err)
	}
	if err := c.ValidateDeposit(p, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := c.ValidateDeposit(nil, 1); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct for missing product, got %v", err)
	}

	inactive := *p
	inactive.Active = false
	if err := c.ValidateDeposit(&inactive, 1); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct for inactive product, got %v", err)
	}

	unlimited := &Product{ProductID: 2, Price: 100, SupplyLimit: 0, SoldCount: 1 << 40, Active: true}
	if err := c.ValidateDeposit(unlimited, 1000); err != nil {
		t.Fatalf("unlimited supply rejected: %v", err)
	}

	// a quantity that wraps price*quantity past int64 must not pass
	huge := &Product{ProductID: 3, Price: 1_000_000, Active: true}
	if err := c.ValidateDeposit(huge, math.MaxInt64/2+1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for overflowing quantity, got %v", err)
	}
	if err := c.ValidateDeposit(huge, math.MaxInt64/huge.Price); err != nil {
		t.Fatalf("largest non-overflowing quantity rejected: %v", err)
	}

	paused := c
	paused.Paused = true
	if err := paused.ValidateDeposit(p, 1); !errors.Is(err, ErrPaused) {
		t.Fatalf("expected ErrPaused, got %v", err)
	}

	done := c
	done.State = StateFinalizedSuccess
	if err := done.ValidateDeposit(p, 1); !errors.Is(err, ErrFinalized) {
		t.Fatalf("expected ErrFinalized, got %v", err)
	}
}

func TestFinalizeOutcome(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	before := deadline.Add(-time.Hour)
	after := deadline.Add(time.Hour)

	aon := Campaign{Policy: PolicyAllOrNothing, State: StateOpen, Deadline: deadline, MinimumTarget: 1000, TotalRaised: 1000}
	if _, err := aon.FinalizeOutcome(before); !errors.Is(err, ErrDeadlineNotReached) {
		t.Fatalf("all-or-nothing before deadline: got %v", err)
	}
	if out, err := aon.FinalizeOutcome(after); err != nil || out != StateFinalizedSuccess {
		t.Fatalf("target met: got %v %v", out, err)
	}
	if out, err := aon.FinalizeOutcome(deadline); err != nil || out != StateFinalizedSuccess {
		t.Fatalf("exactly at deadline should finalize: got %v %v", out, err)
	}
	aon.TotalRaised = 999
	if out, err := aon.FinalizeOutcome(after); err != nil || out != StateFinalizedRefundable {
		t.Fatalf("target missed: got %v %v", out, err)
	}

	ltl := Campaign{Policy: PolicyLimitless, State: StateOpen, Deadline: deadline}
	if out, err := ltl.FinalizeOutcome(before); err != nil || out != StateFinalizedSuccess {
		t.Fatalf("limitless before deadline: got %v %v", out, err)
	}

	flex := Campaign{Policy: PolicyFlexible, State: StateOpen, Deadline: deadline, MinimumTarget: 1 << 50}
	if _, err := flex.FinalizeOutcome(before); !errors.Is(err, ErrDeadlineNotReached) {
		t.Fatalf("flexible before deadline: got %v", err)
	}
	if out, err := flex.FinalizeOutcome(after); err != nil || out != StateFinalizedSuccess {
		t.Fatalf("flexible ignores target: got %v %v", out, err)
	}

	done := Campaign{Policy: PolicyAllOrNothing, State: StateFinalizedRefundable, Deadline: deadline}
	if _, err := done.FinalizeOutcome(after); !errors.Is(err, ErrFinalized) {
		t.Fatalf("double finalize: got %v", err)
	}

	bad := Campaign{Policy: "crowdloan", State: StateOpen}
	if _, err := bad.FinalizeOutcome(after); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("unknown policy: got %v", err)
	}
}

func TestReadyForAutomation(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	c := Campaign{Policy: PolicyLimitless, State: StateOpen, Deadline: deadline}

	if c.ReadyForAutomation(deadline.Add(-time.Second)) {
		t.Fatal("ready before deadline")
	}
	if !c.ReadyForAutomation(deadline) {
		t.Fatal("not ready at deadline")
	}
	c.State = StateFinalizedSuccess
	if c.ReadyForAutomation(deadline.Add(time.Hour)) {
		t.Fatal("ready after finalization")
	}
}

func TestRefundForUnits(t *testing.T) {
	p := &Product{ProductID: 1, SoldCount: 4, NetRaised: 3900_000000}

	open := Campaign{State: StateOpen}
	if _, err := open.RefundForUnits(p, 1); !errors.Is(err, ErrNotFinalized) {
		t.Fatalf("open campaign: got %v", err)
	}
	success := Campaign{State: StateFinalizedSuccess}
	if _, err := success.RefundForUnits(p, 1); !errors.Is(err, ErrNotRefundable) {
		t.Fatalf("success campaign: got %v", err)
	}

	c := Campaign{State: StateFinalizedRefundable}
	amount, err := c.RefundForUnits(p, 2)
	if err != nil {
		t.Fatalf("RefundForUnits error: %v", err)
	}
	if amount != 1950_000000 {
		t.Fatalf("expected 1950000000, got %d", amount)
	}
	if _, err = c.RefundForUnits(p, 5); !errors.Is(err, ErrInsufficientReceipts) {
		t.Fatalf("over-claim: got %v", err)
	}
	if _, err = c.RefundForUnits(p, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity: got %v", err)
	}
	if _, err = c.RefundForUnits(&Product{SoldCount: 0, NetRaised: 100}, 1); !errors.Is(err, ErrInsufficientReceipts) {
		t.Fatalf("nothing sold: got %v", err)
	}
}

func TestValidateProducts(t *testing.T) {
	if err := ValidateProducts(nil); !errors.Is(err, ErrEmptyProducts) {
		t.Fatalf("empty list: got %v", err)
	}
	dup := []ProductConfig{{ProductID: 1, Price: 10}, {ProductID: 1, Price: 20}}
	if err := ValidateProducts(dup); !errors.Is(err, ErrDuplicateProduct) {
		t.Fatalf("duplicate id: got %v", err)
	}
	free := []ProductConfig{{ProductID: 1, Price: 0}}
	if err := ValidateProducts(free); !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("zero price: got %v", err)
	}
	ok := []ProductConfig{{ProductID: 1, Price: 10, SupplyLimit: 5}, {ProductID: 2, Price: 20}}
	if err := ValidateProducts(ok); err != nil {
		t.Fatalf("valid list rejected: %v", err)
	}
}
