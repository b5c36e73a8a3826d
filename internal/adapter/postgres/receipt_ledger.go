package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundvault/internal/core/domain"
	"fundvault/internal/core/port"
)

// ReceiptLedger implements port.ReceiptLedger on PostgreSQL: a
// per-(holder, campaign, product) receipt balance table and an
// authorization set of campaigns allowed to mint.
type ReceiptLedger struct {
	pool *pgxpool.Pool
}

// NewReceiptLedger returns a new ledger instance.
func NewReceiptLedger(pool *pgxpool.Pool) *ReceiptLedger {
	return &ReceiptLedger{pool: pool}
}

// GrantMinter authorizes the campaign to mint its receipts.
func (l *ReceiptLedger) GrantMinter(ctx context.Context, campaignID string) error {
	_, err := l.pool.Exec(ctx,
		`INSERT INTO minters (campaign_id) VALUES ($1) ON CONFLICT DO NOTHING`, campaignID)
	return err
}

// Mint issues quantity receipt units of the product to the holder. Fails
// with ErrNotMinter when the campaign was never authorized.
func (l *ReceiptLedger) Mint(ctx context.Context, campaignID string, to domain.Address, productID, quantity int64) (err error) {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
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

	var exists bool
	if err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM minters WHERE campaign_id = $1)`, campaignID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return port.ErrNotMinter
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO receipt_balances (holder, campaign_id, product_id, units) VALUES ($1,$2,$3,$4)
		 ON CONFLICT (holder, campaign_id, product_id) DO UPDATE SET units = receipt_balances.units + EXCLUDED.units`,
		to, campaignID, productID, quantity)
	return err
}

// Burn destroys quantity receipt units held by the holder. The burn is
// irreversible from the holder's perspective; entitlement only decreases.
func (l *ReceiptLedger) Burn(ctx context.Context, campaignID string, from domain.Address, productID, quantity int64) (err error) {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
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

	var units int64
	err = tx.QueryRow(ctx,
		`SELECT units FROM receipt_balances WHERE holder = $1 AND campaign_id = $2 AND product_id = $3 FOR UPDATE`,
		from, campaignID, productID).Scan(&units)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && units < quantity) {
		return domain.ErrInsufficientReceipts
	}
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE receipt_balances SET units = units - $1 WHERE holder = $2 AND campaign_id = $3 AND product_id = $4`,
		quantity, from, campaignID, productID)
	return err
}

// BalanceOf returns the holder's receipt units, zero when none.
func (l *ReceiptLedger) BalanceOf(ctx context.Context, holder domain.Address, campaignID string, productID int64) (int64, error) {
	var units int64
	err := l.pool.QueryRow(ctx,
		`SELECT units FROM receipt_balances WHERE holder = $1 AND campaign_id = $2 AND product_id = $3`,
		holder, campaignID, productID).Scan(&units)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return units, err
}
