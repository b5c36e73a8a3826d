package domain

import "time"

// EventKind names an observable campaign event.
type EventKind string

const (
	EventDeposit         EventKind = "deposit"
	EventFundsReleased   EventKind = "funds_released"
	EventFeeUpdated      EventKind = "fee_updated"
	EventDeadlineUpdated EventKind = "deadline_updated"
	EventFinalized       EventKind = "finalized"
	EventRefund          EventKind = "refund"
	EventCampaignCreated EventKind = "campaign_created"
	EventProductAdded    EventKind = "product_added"
	EventProductRemoved  EventKind = "product_removed"
	EventPriceUpdated    EventKind = "price_updated"
	EventPaused          EventKind = "paused"
	EventUnpaused        EventKind = "unpaused"
)

// Event is an append-only record of something observable that happened to a
// campaign. Amount and Fee carry event-specific values (gross and fee for a
// deposit, released total for funds_released, refunded amount for a refund).
type Event struct {
	ID         string
	CampaignID string
	Kind       EventKind
	Actor      Address
	ProductID  *int64
	Amount     int64
	Fee        int64
	CreatedAt  time.Time
}
