package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundvault/internal/core/domain"
	"fundvault/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
// Every mutating method runs in a serializable transaction and re-validates
// preconditions against rows locked with FOR UPDATE, so two concurrent
// operations against the same campaign cannot both observe the same
// pre-state.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, funding_policy, state, deadline, minimum_target, fee_bps, paused, total_raised, owner, beneficiary, fee_wallet, implementation_ref, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Policy,
		&c.State,
		&c.Deadline,
		&c.MinimumTarget,
		&c.FeeBps,
		&c.Paused,
		&c.TotalRaised,
		&c.Owner,
		&c.Beneficiary,
		&c.FeeWallet,
		&c.Implementation,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const productColumns = `campaign_id, product_id, price, supply_limit, sold_count, net_raised, active`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.CampaignID, &p.ProductID, &p.Price, &p.SupplyLimit, &p.SoldCount, &p.NetRaised, &p.Active)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetCampaign returns the campaign by id, or nil when absent.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetProduct returns the product row regardless of active flag, or nil.
// Inactive products stay readable so refund entitlement stays computable.
func (r *CampaignRepository) GetProduct(ctx context.Context, campaignID string, productID int64) (*domain.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE campaign_id = $1 AND product_id = $2`, campaignID, productID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *CampaignRepository) ListProducts(ctx context.Context, campaignID string) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE campaign_id = $1 ORDER BY product_id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		p, err := scanProduct(row)
		if err != nil {
			return domain.Product{}, err
		}
		return *p, nil
	})
}

func (r *CampaignRepository) ListEvents(ctx context.Context, campaignID string, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, campaign_id, kind, actor, product_id, amount, fee, created_at
		 FROM campaign_events WHERE campaign_id = $1 ORDER BY created_at DESC, id LIMIT $2`, campaignID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var ev domain.Event
		err := row.Scan(&ev.ID, &ev.CampaignID, &ev.Kind, &ev.Actor, &ev.ProductID, &ev.Amount, &ev.Fee, &ev.CreatedAt)
		return ev, err
	})
}

// ListOpenPastDeadline returns open campaigns whose deadline has passed.
func (r *CampaignRepository) ListOpenPastDeadline(ctx context.Context, now time.Time) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE state = $1 AND deadline <= $2 ORDER BY deadline`,
		domain.StateOpen, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// begin starts a serializable transaction and returns a finish closure that
// rolls back on error and commits otherwise.
func (r *CampaignRepository) begin(ctx context.Context) (pgx.Tx, func(*error), error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, nil, err
	}
	finish := func(errp *error) {
		if *errp != nil {
			_ = tx.Rollback(ctx)
		} else {
			*errp = tx.Commit(ctx)
		}
	}
	return tx, finish, nil
}

func lockCampaign(ctx context.Context, tx pgx.Tx, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	return c, err
}

func lockProduct(ctx context.Context, tx pgx.Tx, campaignID string, productID int64) (*domain.Product, error) {
	p, err := scanProduct(tx.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE campaign_id = $1 AND product_id = $2 FOR UPDATE`, campaignID, productID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUnknownProduct
	}
	return p, err
}

func insertEvent(ctx context.Context, tx pgx.Tx, ev domain.Event) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO campaign_events (id, campaign_id, kind, actor, product_id, amount, fee, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		ev.ID, ev.CampaignID, ev.Kind, ev.Actor, ev.ProductID, ev.Amount, ev.Fee, ev.CreatedAt)
	return err
}

// ApplyDeposit credits the product and campaign ledgers after re-validating
// the deposit preconditions under row locks.
func (r *CampaignRepository) ApplyDeposit(ctx context.Context, rec port.DepositRecord) (err error) {
	tx, finish, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { finish(&err) }()

	c, err := lockCampaign(ctx, tx, rec.CampaignID)
	if err != nil {
		return err
	}
	p, err := lockProduct(ctx, tx, rec.CampaignID, rec.ProductID)
	if err != nil {
		return err
	}
	if err = c.ValidateDeposit(p, rec.Quantity); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE products SET sold_count = sold_count + $1, net_raised = net_raised + $2
		 WHERE campaign_id = $3 AND product_id = $4`,
		rec.Quantity, rec.Net, rec.CampaignID, rec.ProductID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE campaigns SET total_raised = total_raised + $1, updated_at = now() WHERE id = $2`,
		rec.Net, rec.CampaignID)
	if err != nil {
		return err
	}
	pid := rec.ProductID
	return insertEvent(ctx, tx, domain.Event{
		ID:         rec.EventID,
		CampaignID: rec.CampaignID,
		Kind:       domain.EventDeposit,
		Actor:      rec.Depositor,
		ProductID:  &pid,
		Amount:     rec.Gross,
		Fee:        rec.Fee,
	})
}

// ReverseDeposit undoes ApplyDeposit, deleting its event.
func (r *CampaignRepository) ReverseDeposit(ctx context.Context, rec port.DepositRecord) (err error) {
	tx, finish, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { finish(&err) }()

	if _, err = lockCampaign(ctx, tx, rec.CampaignID); err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE products SET sold_count = sold_count - $1, net_raised = net_raised - $2
		 WHERE campaign_id = $3 AND product_id = $4`,
		rec.Quantity, rec.Net, rec.CampaignID, rec.ProductID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE campaigns SET total_raised = total_raised - $1, updated_at = now() WHERE id = $2`,
		rec.Net, rec.CampaignID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `DELETE FROM campaign_events WHERE id = $1`, rec.EventID)
	return err
}

// Finalize re-resolves the outcome under the row lock and commits the
// one-way transition. On the success branch total_raised moves out of
// custody bookkeeping and both finalized and funds_released events are
// recorded.
func (r *CampaignRepository) Finalize(ctx context.Context, campaignID string, actor domain.Address, now time.Time) (res *port.FinalizeResult, err error) {
	tx, finish, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { finish(&err) }()

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return nil, err
	}
	outcome, err := c.FinalizeOutcome(now)
	if err != nil {
		return nil, err
	}

	var released int64
	if outcome == domain.StateFinalizedSuccess {
		released = c.TotalRaised
		_, err = tx.Exec(ctx,
			`UPDATE campaigns SET state = $1, total_raised = 0, updated_at = now() WHERE id = $2`,
			outcome, campaignID)
	} else {
		_, err = tx.Exec(ctx,
			`UPDATE campaigns SET state = $1, updated_at = now() WHERE id = $2`,
			outcome, campaignID)
	}
	if err != nil {
		return nil, err
	}

	if err = insertEvent(ctx, tx, domain.Event{
		CampaignID: campaignID,
		Kind:       domain.EventFinalized,
		Actor:      actor,
		Amount:     released,
	}); err != nil {
		return nil, err
	}
	if released > 0 {
		if err = insertEvent(ctx, tx, domain.Event{
			CampaignID: campaignID,
			Kind:       domain.EventFundsReleased,
			Actor:      actor,
			Amount:     released,
		}); err != nil {
			return nil, err
		}
	}
	return &port.FinalizeResult{Outcome: outcome, Released: released}, nil
}

// RevertFinalize restores the open state after a failed payout. The
// finalize events are removed; since finalization happens at most once,
// only the reverted transition can have produced them.
func (r *CampaignRepository) RevertFinalize(ctx context.Context, campaignID string, released int64) (err error) {
	tx, finish, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { finish(&err) }()

	_, err = tx.Exec(ctx,
		`UPDATE campaigns SET state = $1, total_raised = $2, updated_at = now() WHERE id = $3`,
		domain.StateOpen, released, campaignID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`DELETE FROM campaign_events WHERE campaign_id = $1 AND kind = ANY($2)`,
		campaignID, []string{string(domain.EventFinalized), string(domain.EventFundsReleased)})
	return err
}

// ApplyRefund debits the ledgers after re-validating the refundable state
// and the remaining entitlement under row locks.
func (r *CampaignRepository) ApplyRefund(ctx context.Context, rec port.RefundRecord) (err error) {
	tx, finish, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { finish(&err) }()

	c, err := lockCampaign(ctx, tx, rec.CampaignID)
	if err != nil {
		return err
	}
	if c.State != domain.StateFinalizedRefundable {
		return domain.ErrNotRefundable
	}
	p, err := lockProduct(ctx, tx, rec.CampaignID, rec.ProductID)
	if err != nil {
		return err
	}
	if p.SoldCount < rec.Quantity || p.NetRaised < rec.Amount {
		return domain.ErrInsufficientReceipts
	}

	_, err = tx.Exec(ctx,
		`UPDATE products SET sold_count = sold_count - $1, net_raised = net_raised - $2
		 WHERE campaign_id = $3 AND product_id = $4`,
		rec.Quantity, rec.Amount, rec.CampaignID, rec.ProductID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE campaigns SET total_raised = total_raised - $1, updated_at = now() WHERE id = $2`,
		rec.Amount, rec.CampaignID)
	if err != nil {
		return err
	}
	pid := rec.ProductID
	return insertEvent(ctx, tx, domain.Event{
		ID:         rec.EventID,
		CampaignID: rec.CampaignID,
		Kind:       domain.EventRefund,
		Actor:      rec.Claimant,
		ProductID:  &pid,
		Amount:     rec.Amount,
	})
}

// ReverseRefund undoes ApplyRefund, deleting its event.
func (r *CampaignRepository) ReverseRefund(ctx context.Context, rec port.RefundRecord) (err error) {
	tx, finish, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { finish(&err) }()

	if _, err = lockCampaign(ctx, tx, rec.CampaignID); err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE products SET sold_count = sold_count + $1, net_raised = net_raised + $2
		 WHERE campaign_id = $3 AND product_id = $4`,
		rec.Quantity, rec.Amount, rec.CampaignID, rec.ProductID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE campaigns SET total_raised = total_raised + $1, updated_at = now() WHERE id = $2`,
		rec.Amount, rec.CampaignID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `DELETE FROM campaign_events WHERE id = $1`, rec.EventID)
	return err
}

func (r *CampaignRepository) SetPaused(ctx context.Context, campaignID string, paused bool, actor domain.Address) (err error) {
	tx, finish, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { finish(&err) }()

	if _, err = lockCampaign(ctx, tx, campaignID); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET paused = $1, updated_at = now() WHERE id = $2`, paused, campaignID)
	if err != nil {
		return err
	}
	kind := domain.EventPaused
	if !paused {
		kind = domain.EventUnpaused
	}
	return insertEvent(ctx, tx, domain.Event{CampaignID: campaignID, Kind: kind, Actor: actor})
}

func (r *CampaignRepository) UpdateFee(ctx context.Context, campaignID string, bps int32, actor domain.Address) (err error) {
	tx, finish, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { finish(&err) }()

	if _, err = lockCampaign(ctx, tx, campaignID); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET fee_bps = $1, updated_at = now() WHERE id = $2`, bps, campaignID)
	if err != nil {
		return err
	}
	return insertEvent(ctx, tx, domain.Event{CampaignID: campaignID, Kind: domain.EventFeeUpdated, Actor: actor, Amount: int64(bps)})
}

// UpdateDeadline rejects the change once the campaign is finalized; the
// deadline is frozen permanently in a terminal state.
func (r *CampaignRepository) UpdateDeadline(ctx context.Context, campaignID string, deadline time.Time, actor domain.Address) (err error) {
	tx, finish, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { finish(&err) }()

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return err
	}
	if c.Finalized() {
		return domain.ErrFinalized
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET deadline = $1, updated_at = now() WHERE id = $2`, deadline, campaignID)
	if err != nil {
		return err
	}
	return insertEvent(ctx, tx, domain.Event{CampaignID: campaignID, Kind: domain.EventDeadlineUpdated, Actor: actor, Amount: deadline.Unix()})
}

func (r *CampaignRepository) AddProduct(ctx context.Context, campaignID string, cfg domain.ProductConfig, actor domain.Address) (err error) {
	tx, finish, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { finish(&err) }()

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return err
	}
	if c.Finalized() {
		return domain.ErrFinalized
	}
	tag, err := tx.Exec(ctx,
		`INSERT INTO products (campaign_id, product_id, price, supply_limit, sold_count, net_raised, active)
		 VALUES ($1,$2,$3,$4,0,0,true) ON CONFLICT (campaign_id, product_id) DO NOTHING`,
		campaignID, cfg.ProductID, cfg.Price, cfg.SupplyLimit)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrProductExists
	}
	pid := cfg.ProductID
	return insertEvent(ctx, tx, domain.Event{CampaignID: campaignID, Kind: domain.EventProductAdded, Actor: actor, ProductID: &pid, Amount: cfg.Price})
}

// RemoveProduct deactivates the product; sold_count and net_raised rows are
// kept so already-sold units stay refundable.
func (r *CampaignRepository) RemoveProduct(ctx context.Context, campaignID string, productID int64, actor domain.Address) (err error) {
	tx, finish, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { finish(&err) }()

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return err
	}
	if c.Finalized() {
		return domain.ErrFinalized
	}
	tag, err := tx.Exec(ctx,
		`UPDATE products SET active = false WHERE campaign_id = $1 AND product_id = $2 AND active`,
		campaignID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUnknownProduct
	}
	pid := productID
	return insertEvent(ctx, tx, domain.Event{CampaignID: campaignID, Kind: domain.EventProductRemoved, Actor: actor, ProductID: &pid})
}

func (r *CampaignRepository) UpdateProductPrice(ctx context.Context, campaignID string, productID, price int64, actor domain.Address) (err error) {
	tx, finish, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { finish(&err) }()

	c, err := lockCampaign(ctx, tx, campaignID)
	if err != nil {
		return err
	}
	if c.Finalized() {
		return domain.ErrFinalized
	}
	tag, err := tx.Exec(ctx,
		`UPDATE products SET price = $1 WHERE campaign_id = $2 AND product_id = $3 AND active`,
		price, campaignID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUnknownProduct
	}
	pid := productID
	return insertEvent(ctx, tx, domain.Event{CampaignID: campaignID, Kind: domain.EventPriceUpdated, Actor: actor, ProductID: &pid, Amount: price})
}
