package auth

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
)

// GrantReader lists the role grants an account holds within a scope.
type GrantReader interface {
	ListRoles(ctx context.Context, scope, account common.Address) ([]common.Hash, error)
}

// Authorizer resolves platform-scoped grants into an Authorization.
type Authorizer struct {
	grants GrantReader
	scope  common.Address
}

// NewAuthorizer creates an Authorizer reading grants of the given scope.
func NewAuthorizer(grants GrantReader, scope common.Address) *Authorizer {
	return &Authorizer{grants: grants, scope: scope}
}

// Authorize loads the roles held by caller.
func (a *Authorizer) Authorize(ctx context.Context, caller common.Address) (*Authorization, error) {
	ids, err := a.grants.ListRoles(ctx, a.scope, caller)
	if err != nil {
		logger.Log.Errorw("failed to load role grants", "caller", caller.Hex(), "error", err)
		return nil, err
	}
	return newAuthorization(caller, ids), nil
}
