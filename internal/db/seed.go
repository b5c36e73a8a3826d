package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: funded depositor accounts on the token ledger and
// one open all-or-nothing campaign with two products, its custody account
// pre-approved by each depositor. Amounts use 6-decimal integer units.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	const unit = int64(1_000_000)

	depositors := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		depositors = append(depositors, fmt.Sprintf("depositor-%d", i))
	}
	for _, addr := range depositors {
		_, err := db.Exec(ctx,
			`INSERT INTO token_balances (address, amount) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			addr, 10_000*unit)
		if err != nil {
			return err
		}
	}

	campaignID := uuid.NewString()
	deadline := time.Now().AddDate(0, 0, 30)
	_, err := db.Exec(ctx,
		`INSERT INTO campaigns
    (id, funding_policy, state, deadline, minimum_target, fee_bps, paused, total_raised, owner, beneficiary, fee_wallet, implementation_ref, created_at, updated_at)
VALUES ($1,'all_or_nothing','open',$2,$3,250,false,0,'factory-owner','demo-beneficiary','demo-fee-wallet','v1',now(),now()) ON CONFLICT DO NOTHING`,
		campaignID, deadline, 1000*unit)
	if err != nil {
		return err
	}
	for pid, price := range map[int64]int64{1: 100 * unit, 2: 200 * unit} {
		_, err = db.Exec(ctx,
			`INSERT INTO products (campaign_id, product_id, price, supply_limit, sold_count, net_raised, active)
VALUES ($1,$2,$3,0,0,0,true) ON CONFLICT DO NOTHING`,
			campaignID, pid, price)
		if err != nil {
			return err
		}
	}
	_, err = db.Exec(ctx,
		`INSERT INTO minters (campaign_id) VALUES ($1) ON CONFLICT DO NOTHING`, campaignID)
	if err != nil {
		return err
	}

	custody := "campaign:" + campaignID
	for _, addr := range depositors {
		_, err = db.Exec(ctx,
			`INSERT INTO token_allowances (owner, spender, amount) VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`,
			addr, custody, 10_000*unit)
		if err != nil {
			return err
		}
	}
	return nil
}
