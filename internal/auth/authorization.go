package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrMissingRole matches every MissingRoleError through errors.Is.
var ErrMissingRole = errors.New("missing role")

// MissingRoleError is returned when an account lacks a required role.
type MissingRoleError struct {
	Account common.Address
	Role    Role
}

func (e *MissingRoleError) Error() string {
	return fmt.Sprintf("account %s is missing role %s", strings.ToLower(e.Account.Hex()), e.Role.ID.Hex())
}

func (e *MissingRoleError) Is(target error) bool {
	return target == ErrMissingRole
}

// Authorization is the caller identity together with the roles it holds.
type Authorization struct {
	caller common.Address
	roles  map[common.Hash]struct{}
}

// NewAuthorization builds an authorization for caller holding roles.
func NewAuthorization(caller common.Address, roles ...Role) *Authorization {
	ids := make([]common.Hash, 0, len(roles))
	for _, r := range roles {
		ids = append(ids, r.ID)
	}
	return newAuthorization(caller, ids)
}

func newAuthorization(caller common.Address, ids []common.Hash) *Authorization {
	a := &Authorization{caller: caller, roles: make(map[common.Hash]struct{}, len(ids))}
	for _, id := range ids {
		a.roles[id] = struct{}{}
	}
	return a
}

// Caller returns the acting address.
func (a *Authorization) Caller() common.Address {
	if a == nil {
		return common.Address{}
	}
	return a.caller
}

// Has reports whether the caller holds r.
func (a *Authorization) Has(r Role) bool {
	if a == nil {
		return false
	}
	_, ok := a.roles[r.ID]
	return ok
}

// Require returns a MissingRoleError unless the caller holds r.
func (a *Authorization) Require(r Role) error {
	if a.Has(r) {
		return nil
	}
	return &MissingRoleError{Account: a.Caller(), Role: r}
}

type contextKey struct{}

var authorizationKey = contextKey{}

// WithAuthorization stores a in ctx.
func WithAuthorization(ctx context.Context, a *Authorization) context.Context {
	return context.WithValue(ctx, authorizationKey, a)
}

// FromContext returns the authorization stored in ctx, or nil.
func FromContext(ctx context.Context) *Authorization {
	a, _ := ctx.Value(authorizationKey).(*Authorization)
	return a
}
