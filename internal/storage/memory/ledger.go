package memory

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/auth"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// Mint creates amount of currency for to. The operator must hold the minter
// role on the currency.
func (s *Store) Mint(ctx context.Context, operator, currency, to common.Address, amount *uint256.Int) error {
	return s.write(ctx, func(st *state) error {
		if !st.hasRole(currency, auth.MinterRole.ID, operator) {
			return &auth.MissingRoleError{Account: operator, Role: auth.MinterRole}
		}
		return st.credit(currency, to, amount)
	})
}

// BurnFrom destroys amount of currency held by from, spending the allowance
// from granted to operator. The operator must hold the burner role.
func (s *Store) BurnFrom(ctx context.Context, operator, currency, from common.Address, amount *uint256.Int) error {
	return s.write(ctx, func(st *state) error {
		if !st.hasRole(currency, auth.BurnerRole.ID, operator) {
			return &auth.MissingRoleError{Account: operator, Role: auth.BurnerRole}
		}

		ak := allowance{token: currency, owner: from, spender: operator}
		allowed := amountOf(st.allowances, ak)
		if allowed.Lt(amount) {
			return models.ErrInsufficientAllowance
		}
		hk := holding{token: currency, account: from}
		balance := amountOf(st.balances, hk)
		if balance.Lt(amount) {
			return models.ErrInsufficientBalance
		}
		supply := amountOf(st.supply, currency)
		if supply.Lt(amount) {
			return models.ErrInsufficientSupply
		}

		st.allowances[ak] = allowed.Sub(allowed, amount)
		st.balances[hk] = balance.Sub(balance, amount)
		st.supply[currency] = supply.Sub(supply, amount)
		return nil
	})
}

// TotalSupply returns the supply of currency.
func (s *Store) TotalSupply(ctx context.Context, currency common.Address) (*uint256.Int, error) {
	var supply *uint256.Int
	s.read(ctx, func(st *state) {
		supply = amountOf(st.supply, currency)
	})
	return supply, nil
}

// TransferFrom moves amount of token from one account to another on behalf
// of spender, consuming the allowance from granted to spender.
func (s *Store) TransferFrom(ctx context.Context, spender, token, from, to common.Address, amount *uint256.Int) error {
	return s.write(ctx, func(st *state) error {
		ak := allowance{token: token, owner: from, spender: spender}
		allowed := amountOf(st.allowances, ak)
		if allowed.Lt(amount) {
			return models.ErrInsufficientAllowance
		}
		if err := st.move(token, from, to, amount); err != nil {
			return err
		}
		st.allowances[ak] = allowed.Sub(allowed, amount)
		return nil
	})
}

// Transfer moves amount of token held by from to another account.
func (s *Store) Transfer(ctx context.Context, token, from, to common.Address, amount *uint256.Int) error {
	return s.write(ctx, func(st *state) error {
		return st.move(token, from, to, amount)
	})
}

// Approve sets the allowance owner grants to spender.
func (s *Store) Approve(ctx context.Context, token, owner, spender common.Address, amount *uint256.Int) error {
	return s.write(ctx, func(st *state) error {
		st.allowances[allowance{token: token, owner: owner, spender: spender}] = amount.Clone()
		return nil
	})
}

// Allowance returns what owner allows spender to pull.
func (s *Store) Allowance(ctx context.Context, token, owner, spender common.Address) (*uint256.Int, error) {
	var allowed *uint256.Int
	s.read(ctx, func(st *state) {
		allowed = amountOf(st.allowances, allowance{token: token, owner: owner, spender: spender})
	})
	return allowed, nil
}

// BalanceOf returns the token balance of account.
func (s *Store) BalanceOf(ctx context.Context, token, account common.Address) (*uint256.Int, error) {
	var balance *uint256.Int
	s.read(ctx, func(st *state) {
		balance = amountOf(st.balances, holding{token: token, account: account})
	})
	return balance, nil
}

// NativeBalance returns the native coin balance of account.
func (s *Store) NativeBalance(ctx context.Context, account common.Address) (*uint256.Int, error) {
	var balance *uint256.Int
	s.read(ctx, func(st *state) {
		balance = amountOf(st.native, account)
	})
	return balance, nil
}

// SendNative moves native coin. Recipients flagged with RejectNative refuse it.
func (s *Store) SendNative(ctx context.Context, from, to common.Address, amount *uint256.Int) error {
	return s.write(ctx, func(st *state) error {
		if st.rejects[to] {
			return models.ErrNativeRejected
		}
		balance := amountOf(st.native, from)
		if balance.Lt(amount) {
			return models.ErrInsufficientBalance
		}
		if from == to {
			return nil
		}
		received, overflow := new(uint256.Int).AddOverflow(amountOf(st.native, to), amount)
		if overflow {
			return models.ErrAmountOverflow
		}
		st.native[from] = balance.Sub(balance, amount)
		st.native[to] = received
		return nil
	})
}

// Credit issues amount of token to account outside any role check. It raises
// the token supply as well and is meant for seeding balances.
func (s *Store) Credit(ctx context.Context, token, account common.Address, amount *uint256.Int) error {
	return s.write(ctx, func(st *state) error {
		return st.credit(token, account, amount)
	})
}

// SetNativeBalance overwrites the native balance of account.
func (s *Store) SetNativeBalance(ctx context.Context, account common.Address, amount *uint256.Int) error {
	return s.write(ctx, func(st *state) error {
		st.native[account] = amount.Clone()
		return nil
	})
}

// RejectNative makes account refuse incoming native transfers.
func (s *Store) RejectNative(ctx context.Context, account common.Address, reject bool) error {
	return s.write(ctx, func(st *state) error {
		if reject {
			st.rejects[account] = true
		} else {
			delete(st.rejects, account)
		}
		return nil
	})
}

func (st *state) credit(token, to common.Address, amount *uint256.Int) error {
	supply, overflow := new(uint256.Int).AddOverflow(amountOf(st.supply, token), amount)
	if overflow {
		return models.ErrAmountOverflow
	}
	hk := holding{token: token, account: to}
	balance, overflow := new(uint256.Int).AddOverflow(amountOf(st.balances, hk), amount)
	if overflow {
		return models.ErrAmountOverflow
	}
	st.supply[token] = supply
	st.balances[hk] = balance
	return nil
}

func (st *state) move(token, from, to common.Address, amount *uint256.Int) error {
	fk := holding{token: token, account: from}
	balance := amountOf(st.balances, fk)
	if balance.Lt(amount) {
		return models.ErrInsufficientBalance
	}
	if from == to {
		return nil
	}
	tk := holding{token: token, account: to}
	received, overflow := new(uint256.Int).AddOverflow(amountOf(st.balances, tk), amount)
	if overflow {
		return models.ErrAmountOverflow
	}
	st.balances[fk] = balance.Sub(balance, amount)
	st.balances[tk] = received
	return nil
}
