// Package memory provides an in-process implementation of the ledger,
// registry, role and operator stores.
package memory

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

type holding struct {
	token   common.Address
	account common.Address
}

type allowance struct {
	token   common.Address
	owner   common.Address
	spender common.Address
}

type grant struct {
	scope   common.Address
	role    common.Hash
	account common.Address
}

type state struct {
	supply     map[common.Address]*uint256.Int
	balances   map[holding]*uint256.Int
	allowances map[allowance]*uint256.Int
	native     map[common.Address]*uint256.Int
	rejects    map[common.Address]bool
	grants     map[grant]struct{}
	currencies map[common.Address]models.Currency
}

func newState() state {
	return state{
		supply:     make(map[common.Address]*uint256.Int),
		balances:   make(map[holding]*uint256.Int),
		allowances: make(map[allowance]*uint256.Int),
		native:     make(map[common.Address]*uint256.Int),
		rejects:    make(map[common.Address]bool),
		grants:     make(map[grant]struct{}),
		currencies: make(map[common.Address]models.Currency),
	}
}

// clone copies every map. Amount pointers are never mutated in place, so
// sharing them between snapshots is safe.
func (st state) clone() state {
	c := newState()
	for k, v := range st.supply {
		c.supply[k] = v
	}
	for k, v := range st.balances {
		c.balances[k] = v
	}
	for k, v := range st.allowances {
		c.allowances[k] = v
	}
	for k, v := range st.native {
		c.native[k] = v
	}
	for k, v := range st.rejects {
		c.rejects[k] = v
	}
	for k := range st.grants {
		c.grants[k] = struct{}{}
	}
	for k, v := range st.currencies {
		c.currencies[k] = v
	}
	return c
}

// Store keeps all state in memory. Calls are serialized by txMu; WithinTx
// holds it for the whole unit and restores a snapshot on failure.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	state     state
	operators map[string]models.OperatorDB
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		state:     newState(),
		operators: make(map[string]models.OperatorDB),
	}
}

type txKey struct{}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// WithinTx runs fn as one atomic unit. Nested calls join the outer unit.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.state.clone()
	s.mu.RUnlock()

	committed := false
	defer func() {
		if !committed {
			s.mu.Lock()
			s.state = snapshot
			s.mu.Unlock()
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		logger.Log.Infow("memory transaction rolled back", "error", err)
		return err
	}
	committed = true
	return nil
}

func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if !s.inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}

func (s *Store) read(ctx context.Context, fn func(st *state)) {
	if !s.inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

func amountOf[K comparable](m map[K]*uint256.Int, k K) *uint256.Int {
	if v, ok := m[k]; ok {
		return v.Clone()
	}
	return new(uint256.Int)
}

func (st *state) hasRole(scope common.Address, role common.Hash, account common.Address) bool {
	_, ok := st.grants[grant{scope: scope, role: role, account: account}]
	return ok
}

// Grant gives account the role within scope.
func (s *Store) Grant(ctx context.Context, scope common.Address, role common.Hash, account common.Address) error {
	return s.write(ctx, func(st *state) error {
		st.grants[grant{scope: scope, role: role, account: account}] = struct{}{}
		return nil
	})
}

// Revoke removes the role from account within scope.
func (s *Store) Revoke(ctx context.Context, scope common.Address, role common.Hash, account common.Address) error {
	return s.write(ctx, func(st *state) error {
		delete(st.grants, grant{scope: scope, role: role, account: account})
		return nil
	})
}

// HasRole reports whether account holds role within scope.
func (s *Store) HasRole(ctx context.Context, scope common.Address, role common.Hash, account common.Address) (bool, error) {
	var ok bool
	s.read(ctx, func(st *state) {
		ok = st.hasRole(scope, role, account)
	})
	return ok, nil
}

// ListRoles returns the roles account holds within scope, ordered by id.
func (s *Store) ListRoles(ctx context.Context, scope, account common.Address) ([]common.Hash, error) {
	var roles []common.Hash
	s.read(ctx, func(st *state) {
		for g := range st.grants {
			if g.scope == scope && g.account == account {
				roles = append(roles, g.role)
			}
		}
	})
	sort.Slice(roles, func(i, j int) bool {
		return bytes.Compare(roles[i][:], roles[j][:]) < 0
	})
	return roles, nil
}
