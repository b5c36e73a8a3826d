package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fundvault/internal/core/domain"
	"fundvault/internal/core/port"
)

// AutomationActor is the caller identity recorded for finalizations
// performed by the periodic trigger.
const AutomationActor = domain.Address("automation")

// CampaignUseCase implements the escrow engine: deposit settlement,
// policy-driven finalization, refund claims and catalog administration. It
// orchestrates the repository and the two external collaborators. Multi-step
// effects are made atomic with an explicit compensation stack: if any
// collaborator call fails, every already-applied step is unwound in reverse
// order, so value never leaves a depositor without a matching ledger credit.
type CampaignUseCase struct {
	repo     port.CampaignRepository
	medium   port.ValueTransferMedium
	receipts port.ReceiptLedger
	logger   *slog.Logger

	// now is injectable for deadline tests.
	now func() time.Time
}

// NewCampaignUseCase creates the usecase with the provided ports.
func NewCampaignUseCase(repo port.CampaignRepository, medium port.ValueTransferMedium, receipts port.ReceiptLedger, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{
		repo:     repo,
		medium:   medium,
		receipts: receipts,
		logger:   logger,
		now:      time.Now,
	}
}

// compensations is a LIFO stack of undo actions. unwind runs them in
// reverse order on a context detached from the caller's cancellation, so a
// timed-out request still rolls back fully.
type compensations []func(context.Context) error

func (cs compensations) unwind(ctx context.Context, logger *slog.Logger) {
	ctx = context.WithoutCancel(ctx)
	for i := len(cs) - 1; i >= 0; i-- {
		if err := cs[i](ctx); err != nil {
			logger.Error("compensation failed", slog.Any("error", err))
		}
	}
}

// Approve sets the caller's allowance for the campaign's custody address,
// the authorization Deposit's pull path consumes.
func (u *CampaignUseCase) Approve(ctx context.Context, campaignID string, caller domain.Address, amount int64) error {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return port.ErrCampaignNotFound
	}
	return u.medium.Approve(ctx, caller, c.CustodyAddress(), amount)
}

// Deposit settles one purchase: pull gross from the depositor, credit the
// net to the product ledger, mint receipts and forward the fee. The steps
// form one indivisible unit; any failure unwinds the earlier steps.
func (u *CampaignUseCase) Deposit(ctx context.Context, req port.DepositReq) (*port.DepositResp, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	c, err := u.repo.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	p, err := u.repo.GetProduct(ctx, req.CampaignID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if err = c.ValidateDeposit(p, req.Quantity); err != nil {
		return nil, err
	}

	gross := p.Price * req.Quantity
	fee := c.Fee(gross)
	net := gross - fee
	custody := c.CustodyAddress()
	rec := port.DepositRecord{
		EventID:    uuid.NewString(),
		CampaignID: c.ID,
		Depositor:  req.Depositor,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Gross:      gross,
		Fee:        fee,
		Net:        net,
	}

	var undo compensations

	// Pull the gross amount into custody.
	if err = u.medium.TransferFrom(ctx, custody, req.Depositor, custody, gross); err != nil {
		return nil, fmt.Errorf("pull deposit: %w", err)
	}
	undo = append(undo, func(ctx context.Context) error {
		return u.medium.Transfer(ctx, custody, req.Depositor, gross)
	})

	// Credit the ledgers. The repository re-validates paused/finalized and
	// the supply limit under a row lock.
	if err = u.repo.ApplyDeposit(ctx, rec); err != nil {
		undo.unwind(ctx, u.logger)
		return nil, err
	}
	undo = append(undo, func(ctx context.Context) error {
		return u.repo.ReverseDeposit(ctx, rec)
	})

	if err = u.receipts.Mint(ctx, c.ID, req.Depositor, req.ProductID, req.Quantity); err != nil {
		undo.unwind(ctx, u.logger)
		return nil, fmt.Errorf("mint receipts: %w", err)
	}
	undo = append(undo, func(ctx context.Context) error {
		return u.receipts.Burn(ctx, c.ID, req.Depositor, req.ProductID, req.Quantity)
	})

	if fee > 0 {
		if err = u.medium.Transfer(ctx, custody, c.FeeWallet, fee); err != nil {
			undo.unwind(ctx, u.logger)
			return nil, fmt.Errorf("forward fee: %w", err)
		}
	}

	u.logger.Info("deposit accepted",
		slog.String("campaign_id", c.ID),
		slog.String("depositor", string(req.Depositor)),
		slog.Int64("gross", gross),
		slog.Int64("fee", fee),
	)
	return &port.DepositResp{Gross: gross, Fee: fee, Net: net}, nil
}

// Finalize resolves the campaign to its terminal state. Only the owner may
// call it directly; the automation path goes through Trigger.
func (u *CampaignUseCase) Finalize(ctx context.Context, campaignID string, caller domain.Address) (*port.FinalizeResp, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	if caller != c.Owner {
		return nil, domain.ErrNotOwner
	}
	return u.finalize(ctx, c, caller)
}

// finalize commits the state transition, then pays out on the success
// branch. A failed payout reverts the transition so a retry stays possible.
func (u *CampaignUseCase) finalize(ctx context.Context, c *domain.Campaign, actor domain.Address) (*port.FinalizeResp, error) {
	res, err := u.repo.Finalize(ctx, c.ID, actor, u.now())
	if err != nil {
		return nil, err
	}
	if res.Outcome == domain.StateFinalizedSuccess && res.Released > 0 {
		if err = u.medium.Transfer(ctx, c.CustodyAddress(), c.Beneficiary, res.Released); err != nil {
			rctx := context.WithoutCancel(ctx)
			if rerr := u.repo.RevertFinalize(rctx, c.ID, res.Released); rerr != nil {
				u.logger.Error("revert finalize failed", slog.Any("error", rerr))
			}
			return nil, fmt.Errorf("release funds: %w", err)
		}
	}
	u.logger.Info("campaign finalized",
		slog.String("campaign_id", c.ID),
		slog.String("outcome", string(res.Outcome)),
		slog.Int64("released", res.Released),
	)
	return &port.FinalizeResp{Outcome: res.Outcome, Released: res.Released}, nil
}

// ClaimRefund returns a depositor's net entitlement for quantity receipt
// units. The burn happens before any value moves, so a second claim for the
// same units can never succeed.
func (u *CampaignUseCase) ClaimRefund(ctx context.Context, req port.RefundReq) (*port.RefundResp, error) {
	c, err := u.repo.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	p, err := u.repo.GetProduct(ctx, req.CampaignID, req.ProductID)
	if err != nil {
		return nil, err
	}
	amount, err := c.RefundForUnits(p, req.Quantity)
	if err != nil {
		return nil, err
	}
	held, err := u.receipts.BalanceOf(ctx, req.Claimant, c.ID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if held < req.Quantity {
		return nil, domain.ErrInsufficientReceipts
	}

	rec := port.RefundRecord{
		EventID:    uuid.NewString(),
		CampaignID: c.ID,
		Claimant:   req.Claimant,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Amount:     amount,
	}

	var undo compensations

	if err = u.receipts.Burn(ctx, c.ID, req.Claimant, req.ProductID, req.Quantity); err != nil {
		return nil, fmt.Errorf("burn receipts: %w", err)
	}
	undo = append(undo, func(ctx context.Context) error {
		return u.receipts.Mint(ctx, c.ID, req.Claimant, req.ProductID, req.Quantity)
	})

	if err = u.repo.ApplyRefund(ctx, rec); err != nil {
		undo.unwind(ctx, u.logger)
		return nil, err
	}
	undo = append(undo, func(ctx context.Context) error {
		return u.repo.ReverseRefund(ctx, rec)
	})

	if err = u.medium.Transfer(ctx, c.CustodyAddress(), req.Claimant, amount); err != nil {
		undo.unwind(ctx, u.logger)
		return nil, fmt.Errorf("pay refund: %w", err)
	}

	u.logger.Info("refund claimed",
		slog.String("campaign_id", c.ID),
		slog.String("claimant", string(req.Claimant)),
		slog.Int64("product_id", req.ProductID),
		slog.Int64("amount", amount),
	)
	return &port.RefundResp{Amount: amount}, nil
}

// ownerGated loads the campaign and checks the caller against its owner.
func (u *CampaignUseCase) ownerGated(ctx context.Context, campaignID string, caller domain.Address) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	if caller != c.Owner {
		return nil, domain.ErrNotOwner
	}
	return c, nil
}

// Pause blocks deposits. Finalize and refunds are unaffected.
func (u *CampaignUseCase) Pause(ctx context.Context, campaignID string, caller domain.Address) error {
	if _, err := u.ownerGated(ctx, campaignID, caller); err != nil {
		return err
	}
	return u.repo.SetPaused(ctx, campaignID, true, caller)
}

func (u *CampaignUseCase) Unpause(ctx context.Context, campaignID string, caller domain.Address) error {
	if _, err := u.ownerGated(ctx, campaignID, caller); err != nil {
		return err
	}
	return u.repo.SetPaused(ctx, campaignID, false, caller)
}

// UpdateFee changes the rate applied to future deposits. Settled deposits
// keep their recorded net/fee split.
func (u *CampaignUseCase) UpdateFee(ctx context.Context, campaignID string, caller domain.Address, bps int32) error {
	if bps < 0 || bps > domain.FeeDenominator {
		return domain.ErrInvalidFee
	}
	if _, err := u.ownerGated(ctx, campaignID, caller); err != nil {
		return err
	}
	return u.repo.UpdateFee(ctx, campaignID, bps, caller)
}

func (u *CampaignUseCase) UpdateDeadline(ctx context.Context, campaignID string, caller domain.Address, deadline time.Time) error {
	c, err := u.ownerGated(ctx, campaignID, caller)
	if err != nil {
		return err
	}
	if c.Finalized() {
		return domain.ErrFinalized
	}
	return u.repo.UpdateDeadline(ctx, campaignID, deadline, caller)
}

func (u *CampaignUseCase) AddProduct(ctx context.Context, campaignID string, caller domain.Address, cfg domain.ProductConfig) error {
	if cfg.Price <= 0 || cfg.SupplyLimit < 0 {
		return domain.ErrInvalidProduct
	}
	c, err := u.ownerGated(ctx, campaignID, caller)
	if err != nil {
		return err
	}
	if c.Finalized() {
		return domain.ErrFinalized
	}
	return u.repo.AddProduct(ctx, campaignID, cfg, caller)
}

// RemoveProduct ends future purchasability. Units already sold keep their
// ledger entries and remain refundable.
func (u *CampaignUseCase) RemoveProduct(ctx context.Context, campaignID string, caller domain.Address, productID int64) error {
	c, err := u.ownerGated(ctx, campaignID, caller)
	if err != nil {
		return err
	}
	if c.Finalized() {
		return domain.ErrFinalized
	}
	return u.repo.RemoveProduct(ctx, campaignID, productID, caller)
}

// UpdateProductPrice affects future purchases only; prior depositors'
// entitlement derives from recorded net amounts, never the current price.
func (u *CampaignUseCase) UpdateProductPrice(ctx context.Context, campaignID string, caller domain.Address, productID, price int64) error {
	if price <= 0 {
		return domain.ErrInvalidProduct
	}
	c, err := u.ownerGated(ctx, campaignID, caller)
	if err != nil {
		return err
	}
	if c.Finalized() {
		return domain.ErrFinalized
	}
	return u.repo.UpdateProductPrice(ctx, campaignID, productID, price, caller)
}

// GetCampaign returns the campaign with its product catalog.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, campaignID string) (*port.CampaignView, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	products, err := u.repo.ListProducts(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	view := campaignView(c)
	view.Products = products
	return view, nil
}

func (u *CampaignUseCase) ListEvents(ctx context.Context, campaignID string, limit int) ([]domain.Event, error) {
	return u.repo.ListEvents(ctx, campaignID, limit)
}

// CheckReady is the read-only readiness probe of the automation contract.
// The opaque data is passed through untouched.
func (u *CampaignUseCase) CheckReady(ctx context.Context, campaignID string, data []byte) (bool, []byte, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return false, nil, err
	}
	if c == nil {
		return false, nil, port.ErrCampaignNotFound
	}
	return c.ReadyForAutomation(u.now()), data, nil
}

// Trigger re-validates readiness and finalizes. It never trusts a prior
// CheckReady result; the repository re-resolves the outcome under a row
// lock, so a concurrent finalize makes this call fail closed.
func (u *CampaignUseCase) Trigger(ctx context.Context, campaignID string, _ []byte) error {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return port.ErrCampaignNotFound
	}
	if c.Finalized() {
		return domain.ErrFinalized
	}
	if !c.ReadyForAutomation(u.now()) {
		return domain.ErrDeadlineNotReached
	}
	_, err = u.finalize(ctx, c, AutomationActor)
	return err
}

func campaignView(c *domain.Campaign) *port.CampaignView {
	return &port.CampaignView{
		ID:             c.ID,
		Policy:         c.Policy,
		State:          c.State,
		Deadline:       c.Deadline,
		MinimumTarget:  c.MinimumTarget,
		FeeBps:         c.FeeBps,
		Paused:         c.Paused,
		TotalRaised:    c.TotalRaised,
		Owner:          c.Owner,
		Beneficiary:    c.Beneficiary,
		FeeWallet:      c.FeeWallet,
		Implementation: c.Implementation,
	}
}
