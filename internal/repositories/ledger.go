package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/auth"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// LedgerRepository keeps pegged currency supply, token balances, allowances
// and native balances in Postgres. Multi-statement operations run in the
// transaction carried by ctx, or in their own.
type LedgerRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
	runner   *TxRunner
	roles    *RoleRepository
}

// NewLedgerRepository creates a new LedgerRepository. Mint and burn rights
// are read from roles.
func NewLedgerRepository(db *sqlx.DB, runner *TxRunner, roles *RoleRepository) *LedgerRepository {
	return &LedgerRepository{db: db, txGetter: GetTxFromContext, runner: runner, roles: roles}
}

// Mint creates amount of currency for to. The operator must hold the minter
// role on the currency.
func (r *LedgerRepository) Mint(ctx context.Context, operator, currency, to common.Address, amount *uint256.Int) error {
	return r.runner.WithinTx(ctx, func(ctx context.Context) error {
		if err := r.requireRole(ctx, currency, auth.MinterRole, operator); err != nil {
			return err
		}
		return r.credit(ctx, currency, to, amount)
	})
}

// BurnFrom destroys amount of currency held by from, spending the allowance
// from granted to operator. The operator must hold the burner role.
func (r *LedgerRepository) BurnFrom(ctx context.Context, operator, currency, from common.Address, amount *uint256.Int) error {
	return r.runner.WithinTx(ctx, func(ctx context.Context) error {
		if err := r.requireRole(ctx, currency, auth.BurnerRole, operator); err != nil {
			return err
		}
		if err := r.spendAllowance(ctx, currency, from, operator, amount); err != nil {
			return err
		}
		if err := r.debit(ctx, currency, from, amount); err != nil {
			return err
		}

		query := `
			UPDATE token_supply SET supply = supply - $2::NUMERIC
			WHERE token = $1 AND supply >= $2::NUMERIC
		`
		n, err := r.update(ctx, query, addressText(currency), amount.Dec())
		if err != nil {
			return err
		}
		if n == 0 && !amount.IsZero() {
			return models.ErrInsufficientSupply
		}
		return nil
	})
}

// TotalSupply returns the supply of currency.
func (r *LedgerRepository) TotalSupply(ctx context.Context, currency common.Address) (*uint256.Int, error) {
	const query = `SELECT supply::TEXT FROM token_supply WHERE token = $1`
	return r.amount(ctx, query, addressText(currency))
}

// TransferFrom moves amount of token from one account to another on behalf
// of spender, consuming the allowance from granted to spender.
func (r *LedgerRepository) TransferFrom(ctx context.Context, spender, token, from, to common.Address, amount *uint256.Int) error {
	return r.runner.WithinTx(ctx, func(ctx context.Context) error {
		if err := r.spendAllowance(ctx, token, from, spender, amount); err != nil {
			return err
		}
		return r.move(ctx, token, from, to, amount)
	})
}

// Transfer moves amount of token held by from to another account.
func (r *LedgerRepository) Transfer(ctx context.Context, token, from, to common.Address, amount *uint256.Int) error {
	return r.runner.WithinTx(ctx, func(ctx context.Context) error {
		return r.move(ctx, token, from, to, amount)
	})
}

// Approve sets the allowance owner grants to spender.
func (r *LedgerRepository) Approve(ctx context.Context, token, owner, spender common.Address, amount *uint256.Int) error {
	query := `
		INSERT INTO token_allowances (token, owner, spender, amount)
		VALUES ($1, $2, $3, $4::NUMERIC)
		ON CONFLICT (token, owner, spender)
		DO UPDATE SET amount = EXCLUDED.amount
	`
	_, err := r.update(ctx, query, addressText(token), addressText(owner), addressText(spender), amount.Dec())
	return err
}

// Allowance returns what owner allows spender to pull.
func (r *LedgerRepository) Allowance(ctx context.Context, token, owner, spender common.Address) (*uint256.Int, error) {
	const query = `
		SELECT amount::TEXT FROM token_allowances
		WHERE token = $1 AND owner = $2 AND spender = $3
	`
	return r.amount(ctx, query, addressText(token), addressText(owner), addressText(spender))
}

// BalanceOf returns the token balance of account.
func (r *LedgerRepository) BalanceOf(ctx context.Context, token, account common.Address) (*uint256.Int, error) {
	const query = `SELECT balance::TEXT FROM token_balances WHERE token = $1 AND account = $2`
	return r.amount(ctx, query, addressText(token), addressText(account))
}

// NativeBalance returns the native coin balance of account.
func (r *LedgerRepository) NativeBalance(ctx context.Context, account common.Address) (*uint256.Int, error) {
	const query = `SELECT balance::TEXT FROM native_balances WHERE account = $1`
	return r.amount(ctx, query, addressText(account))
}

// SendNative moves native coin. Accounts flagged with RejectNative refuse it.
func (r *LedgerRepository) SendNative(ctx context.Context, from, to common.Address, amount *uint256.Int) error {
	return r.runner.WithinTx(ctx, func(ctx context.Context) error {
		const rejectQuery = `SELECT COALESCE((SELECT rejects_native FROM native_balances WHERE account = $1), FALSE)`
		var rejects bool
		err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rejects, rejectQuery, addressText(to))
		logger.Log.Infow(
			"query", rejectQuery,
			"args", []any{addressText(to)},
			"result", rejects,
			"error", err,
		)
		if err != nil {
			return err
		}
		if rejects {
			return models.ErrNativeRejected
		}
		if amount.IsZero() {
			return nil
		}

		debit := `
			UPDATE native_balances SET balance = balance - $2::NUMERIC
			WHERE account = $1 AND balance >= $2::NUMERIC
		`
		n, err := r.update(ctx, debit, addressText(from), amount.Dec())
		if err != nil {
			return err
		}
		if n == 0 {
			return models.ErrInsufficientBalance
		}

		credit := `
			INSERT INTO native_balances (account, balance)
			VALUES ($1, $2::NUMERIC)
			ON CONFLICT (account)
			DO UPDATE SET balance = native_balances.balance + EXCLUDED.balance
		`
		_, err = r.update(ctx, credit, addressText(to), amount.Dec())
		return err
	})
}

// Credit issues amount of token to account outside any role check, raising
// the token supply. It is used to seed balances.
func (r *LedgerRepository) Credit(ctx context.Context, token, account common.Address, amount *uint256.Int) error {
	return r.runner.WithinTx(ctx, func(ctx context.Context) error {
		return r.credit(ctx, token, account, amount)
	})
}

// SetNativeBalance overwrites the native balance of account.
func (r *LedgerRepository) SetNativeBalance(ctx context.Context, account common.Address, amount *uint256.Int) error {
	query := `
		INSERT INTO native_balances (account, balance)
		VALUES ($1, $2::NUMERIC)
		ON CONFLICT (account)
		DO UPDATE SET balance = EXCLUDED.balance
	`
	_, err := r.update(ctx, query, addressText(account), amount.Dec())
	return err
}

// RejectNative makes account refuse incoming native transfers.
func (r *LedgerRepository) RejectNative(ctx context.Context, account common.Address, reject bool) error {
	query := `
		INSERT INTO native_balances (account, rejects_native)
		VALUES ($1, $2)
		ON CONFLICT (account)
		DO UPDATE SET rejects_native = EXCLUDED.rejects_native
	`
	_, err := r.update(ctx, query, addressText(account), reject)
	return err
}

func (r *LedgerRepository) requireRole(ctx context.Context, scope common.Address, role auth.Role, account common.Address) error {
	ok, err := r.roles.HasRole(ctx, scope, role.ID, account)
	if err != nil {
		return err
	}
	if !ok {
		return &auth.MissingRoleError{Account: account, Role: role}
	}
	return nil
}

func (r *LedgerRepository) credit(ctx context.Context, token, to common.Address, amount *uint256.Int) error {
	supply := `
		INSERT INTO token_supply (token, supply)
		VALUES ($1, $2::NUMERIC)
		ON CONFLICT (token)
		DO UPDATE SET supply = token_supply.supply + EXCLUDED.supply
	`
	if _, err := r.update(ctx, supply, addressText(token), amount.Dec()); err != nil {
		return err
	}

	balance := `
		INSERT INTO token_balances (token, account, balance)
		VALUES ($1, $2, $3::NUMERIC)
		ON CONFLICT (token, account)
		DO UPDATE SET balance = token_balances.balance + EXCLUDED.balance
	`
	_, err := r.update(ctx, balance, addressText(token), addressText(to), amount.Dec())
	return err
}

func (r *LedgerRepository) debit(ctx context.Context, token, from common.Address, amount *uint256.Int) error {
	if amount.IsZero() {
		return nil
	}
	query := `
		UPDATE token_balances SET balance = balance - $3::NUMERIC
		WHERE token = $1 AND account = $2 AND balance >= $3::NUMERIC
	`
	n, err := r.update(ctx, query, addressText(token), addressText(from), amount.Dec())
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrInsufficientBalance
	}
	return nil
}

func (r *LedgerRepository) move(ctx context.Context, token, from, to common.Address, amount *uint256.Int) error {
	if err := r.debit(ctx, token, from, amount); err != nil {
		return err
	}
	query := `
		INSERT INTO token_balances (token, account, balance)
		VALUES ($1, $2, $3::NUMERIC)
		ON CONFLICT (token, account)
		DO UPDATE SET balance = token_balances.balance + EXCLUDED.balance
	`
	_, err := r.update(ctx, query, addressText(token), addressText(to), amount.Dec())
	return err
}

func (r *LedgerRepository) spendAllowance(ctx context.Context, token, owner, spender common.Address, amount *uint256.Int) error {
	if amount.IsZero() {
		return nil
	}
	query := `
		UPDATE token_allowances SET amount = amount - $4::NUMERIC
		WHERE token = $1 AND owner = $2 AND spender = $3 AND amount >= $4::NUMERIC
	`
	n, err := r.update(ctx, query, addressText(token), addressText(owner), addressText(spender), amount.Dec())
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrInsufficientAllowance
	}
	return nil
}

// update runs a write statement and returns the affected row count.
func (r *LedgerRepository) update(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, amountError(err)
}

// amount reads a single NUMERIC column. A missing row is zero.
func (r *LedgerRepository) amount(ctx context.Context, query string, args ...any) (*uint256.Int, error) {
	var value string
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &value, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", value,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return new(uint256.Int), nil
	}
	if err != nil {
		return nil, err
	}
	return parseAmount(value)
}
