package domain

import (
	"math"
	"time"
)

// Address identifies a wallet or contract account on the value-transfer
// medium. The engine treats it as opaque.
type Address string

// FundingPolicy determines how a campaign may be finalized and whether a
// refund path exists afterwards.
type FundingPolicy string

const (
	// PolicyAllOrNothing releases funds only if the minimum target was
	// reached by the deadline; otherwise deposits become refundable.
	PolicyAllOrNothing FundingPolicy = "all_or_nothing"
	// PolicyLimitless lets the owner release funds at any time. No refund
	// path ever exists.
	PolicyLimitless FundingPolicy = "limitless"
	// PolicyFlexible releases funds at the deadline regardless of target.
	// The minimum target is informational only.
	PolicyFlexible FundingPolicy = "flexible"
)

// CampaignState is the explicit finalization state. The two finalized
// states are terminal.
type CampaignState string

const (
	StateOpen                CampaignState = "open"
	StateFinalizedSuccess    CampaignState = "finalized_success"
	StateFinalizedRefundable CampaignState = "finalized_refundable"
)

// FeeDenominator is the basis-point divisor for fee computation.
const FeeDenominator = 10000

// Campaign is one fundraising effort. Amounts are stored in integer units
// (e.g. micro-dollars for a 6-decimal stable token).
type Campaign struct {
	ID             string
	Policy         FundingPolicy
	State          CampaignState
	Deadline       time.Time
	MinimumTarget  int64
	FeeBps         int32
	Paused         bool
	TotalRaised    int64
	Owner          Address
	Beneficiary    Address
	FeeWallet      Address
	Implementation string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CustodyAddress is the account on the value-transfer medium that holds the
// campaign's escrowed funds.
func (c *Campaign) CustodyAddress() Address {
	return Address("campaign:" + c.ID)
}

// Fee returns floor(gross * FeeBps / 10000). The remainder stays in the net
// amount, so fee + net == gross exactly.
func (c *Campaign) Fee(gross int64) int64 {
	return gross * int64(c.FeeBps) / FeeDenominator
}

// Finalized reports whether the campaign reached a terminal state.
func (c *Campaign) Finalized() bool {
	return c.State != StateOpen
}

// ValidateDeposit checks every precondition of a deposit against the
// campaign and the product. It does not mutate anything.
func (c *Campaign) ValidateDeposit(p *Product, quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if c.Finalized() {
		return ErrFinalized
	}
	if c.Paused {
		return ErrPaused
	}
	if p == nil || !p.Active {
		return ErrUnknownProduct
	}
	// price*quantity must fit in int64
	if p.Price > 0 && quantity > math.MaxInt64/p.Price {
		return ErrInvalidQuantity
	}
	if p.SupplyLimit > 0 && p.SoldCount+quantity > p.SupplyLimit {
		return ErrSupplyExhausted
	}
	return nil
}

// FinalizeOutcome resolves the terminal state the campaign would enter if
// finalized now, or an error if finalization is not currently allowed.
func (c *Campaign) FinalizeOutcome(now time.Time) (CampaignState, error) {
	if c.Finalized() {
		return c.State, ErrFinalized
	}
	switch c.Policy {
	case PolicyAllOrNothing:
		if now.Before(c.Deadline) {
			return StateOpen, ErrDeadlineNotReached
		}
		if c.TotalRaised >= c.MinimumTarget {
			return StateFinalizedSuccess, nil
		}
		return StateFinalizedRefundable, nil
	case PolicyLimitless:
		// Owner's discretion, no deadline gate.
		return StateFinalizedSuccess, nil
	case PolicyFlexible:
		if now.Before(c.Deadline) {
			return StateOpen, ErrDeadlineNotReached
		}
		return StateFinalizedSuccess, nil
	default:
		return StateOpen, ErrUnknownPolicy
	}
}

// ReadyForAutomation reports whether the periodic trigger may finalize the
// campaign now. Automation only acts on the deadline, never on the
// owner-discretion path of the limitless policy.
func (c *Campaign) ReadyForAutomation(now time.Time) bool {
	if c.Finalized() {
		return false
	}
	return !now.Before(c.Deadline)
}

// RefundForUnits computes the amount owed for returning quantity receipt
// units of the product. Entitlement derives from the recorded net ledger,
// not the current price: amount = quantity * (netRaised / soldCount).
// Only defined in the refundable terminal state.
func (c *Campaign) RefundForUnits(p *Product, quantity int64) (int64, error) {
	if c.State != StateFinalizedRefundable {
		if c.State == StateOpen {
			return 0, ErrNotFinalized
		}
		return 0, ErrNotRefundable
	}
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	if p == nil {
		return 0, ErrUnknownProduct
	}
	if p.SoldCount <= 0 || quantity > p.SoldCount {
		return 0, ErrInsufficientReceipts
	}
	perUnit := p.NetRaised / p.SoldCount
	return perUnit * quantity, nil
}
