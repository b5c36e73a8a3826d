package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundvault/internal/core/domain"
)

// FactoryRepository implements port.FactoryRepository using pgxpool.
type FactoryRepository struct {
	pool *pgxpool.Pool
}

// NewFactoryRepository returns a new repository instance.
func NewFactoryRepository(pool *pgxpool.Pool) *FactoryRepository {
	return &FactoryRepository{pool: pool}
}

// CreateCampaign inserts the campaign, its products and the created event
// in one serializable transaction. The creator's special-fee override is
// consumed with DELETE ... RETURNING inside the same transaction, so two
// concurrent creations cannot both apply it.
func (r *FactoryRepository) CreateCampaign(ctx context.Context, creator domain.Address, c domain.Campaign, products []domain.ProductConfig) (created *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var overrideBps int32
	err = tx.QueryRow(ctx, `DELETE FROM special_fees WHERE creator = $1 RETURNING fee_bps`, creator).Scan(&overrideBps)
	switch {
	case err == nil:
		c.FeeBps = overrideBps
	case errors.Is(err, pgx.ErrNoRows):
		// keep the default carried in c
	default:
		return nil, err
	}

	err = tx.QueryRow(ctx, `SELECT ref FROM implementations WHERE current ORDER BY created_at DESC LIMIT 1`).Scan(&c.Implementation)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO campaigns (id, funding_policy, state, deadline, minimum_target, fee_bps, paused, total_raised, owner, beneficiary, fee_wallet, implementation_ref, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,false,0,$7,$8,$9,$10,$11,$11)`,
		c.ID, c.Policy, domain.StateOpen, c.Deadline, c.MinimumTarget, c.FeeBps, c.Owner, c.Beneficiary, c.FeeWallet, c.Implementation, c.CreatedAt)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		_, err = tx.Exec(ctx,
			`INSERT INTO products (campaign_id, product_id, price, supply_limit, sold_count, net_raised, active)
			 VALUES ($1,$2,$3,$4,0,0,true)`,
			c.ID, p.ProductID, p.Price, p.SupplyLimit)
		if err != nil {
			return nil, err
		}
	}

	if err = insertEvent(ctx, tx, domain.Event{
		CampaignID: c.ID,
		Kind:       domain.EventCampaignCreated,
		Actor:      creator,
	}); err != nil {
		return nil, err
	}

	c.State = domain.StateOpen
	return &c, nil
}

// SetSpecialFee stores or replaces the creator's pending override.
func (r *FactoryRepository) SetSpecialFee(ctx context.Context, creator domain.Address, bps int32) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO special_fees (creator, fee_bps) VALUES ($1, $2)
		 ON CONFLICT (creator) DO UPDATE SET fee_bps = EXCLUDED.fee_bps`,
		creator, bps)
	return err
}

// GetSpecialFee returns nil when no override is pending.
func (r *FactoryRepository) GetSpecialFee(ctx context.Context, creator domain.Address) (*int32, error) {
	var bps int32
	err := r.pool.QueryRow(ctx, `SELECT fee_bps FROM special_fees WHERE creator = $1`, creator).Scan(&bps)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bps, nil
}

// SetImplementation records the ref and points the factory at it.
func (r *FactoryRepository) SetImplementation(ctx context.Context, ref string) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `UPDATE implementations SET current = false WHERE current`); err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO implementations (ref, current, created_at) VALUES ($1, true, now())
		 ON CONFLICT (ref) DO UPDATE SET current = true`,
		ref)
	return err
}

func (r *FactoryRepository) CurrentImplementation(ctx context.Context) (string, error) {
	var ref string
	err := r.pool.QueryRow(ctx, `SELECT ref FROM implementations WHERE current ORDER BY created_at DESC LIMIT 1`).Scan(&ref)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return ref, err
}

func (r *FactoryRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC`)
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
