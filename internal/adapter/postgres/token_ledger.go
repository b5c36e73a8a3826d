package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundvault/internal/core/domain"
	"fundvault/internal/core/port"
)

// TokenLedger implements port.ValueTransferMedium on PostgreSQL: a
// stable-value balance table plus an (owner, spender) allowance table with
// pull-based transferFrom semantics. Transfers lock both balance rows and
// never leave a negative balance.
type TokenLedger struct {
	pool *pgxpool.Pool
}

// NewTokenLedger returns a new ledger instance.
func NewTokenLedger(pool *pgxpool.Pool) *TokenLedger {
	return &TokenLedger{pool: pool}
}

// Approve sets the spender's allowance on the owner's balance.
func (l *TokenLedger) Approve(ctx context.Context, owner, spender domain.Address, amount int64) error {
	if amount < 0 {
		return port.ErrInsufficientAllowance
	}
	_, err := l.pool.Exec(ctx,
		`INSERT INTO token_allowances (owner, spender, amount) VALUES ($1,$2,$3)
		 ON CONFLICT (owner, spender) DO UPDATE SET amount = EXCLUDED.amount`,
		owner, spender, amount)
	return err
}

// TransferFrom moves amount from the owner to the destination on the
// spender's authority, consuming allowance. All three row mutations commit
// or none do.
func (l *TokenLedger) TransferFrom(ctx context.Context, spender, from, to domain.Address, amount int64) (err error) {
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

	var allowance int64
	err = tx.QueryRow(ctx,
		`SELECT amount FROM token_allowances WHERE owner = $1 AND spender = $2 FOR UPDATE`,
		from, spender).Scan(&allowance)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && allowance < amount) {
		return port.ErrInsufficientAllowance
	}
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx,
		`UPDATE token_allowances SET amount = amount - $1 WHERE owner = $2 AND spender = $3`,
		amount, from, spender); err != nil {
		return err
	}
	return l.move(ctx, tx, from, to, amount)
}

// Transfer moves amount directly from one account to another.
func (l *TokenLedger) Transfer(ctx context.Context, from, to domain.Address, amount int64) (err error) {
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
	return l.move(ctx, tx, from, to, amount)
}

func (l *TokenLedger) move(ctx context.Context, tx pgx.Tx, from, to domain.Address, amount int64) error {
	if amount < 0 {
		return port.ErrInsufficientFunds
	}
	var balance int64
	err := tx.QueryRow(ctx, `SELECT amount FROM token_balances WHERE address = $1 FOR UPDATE`, from).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && balance < amount) {
		return port.ErrInsufficientFunds
	}
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `UPDATE token_balances SET amount = amount - $1 WHERE address = $2`, amount, from); err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO token_balances (address, amount) VALUES ($1,$2)
		 ON CONFLICT (address) DO UPDATE SET amount = token_balances.amount + EXCLUDED.amount`,
		to, amount)
	return err
}

// BalanceOf returns the account balance, zero for unknown accounts.
func (l *TokenLedger) BalanceOf(ctx context.Context, addr domain.Address) (int64, error) {
	var balance int64
	err := l.pool.QueryRow(ctx, `SELECT amount FROM token_balances WHERE address = $1`, addr).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return balance, err
}
