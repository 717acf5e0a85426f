package repositories

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
)

// RoleRepository stores role grants. A grant is scoped to the platform or to
// a single currency.
type RoleRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RoleRepository {
	return &RoleRepository{db: db, txGetter: txGetter}
}

// Grant gives account the role within scope. Granting twice is a no-op.
func (r *RoleRepository) Grant(ctx context.Context, scope common.Address, role common.Hash, account common.Address) error {
	query := `
		INSERT INTO role_grants (scope, role, account, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (scope, role, account) DO NOTHING
	`
	return r.exec(ctx, query, addressText(scope), role.Hex(), addressText(account))
}

// Revoke removes the grant if present.
func (r *RoleRepository) Revoke(ctx context.Context, scope common.Address, role common.Hash, account common.Address) error {
	query := `
		DELETE FROM role_grants
		WHERE scope = $1 AND role = $2 AND account = $3
	`
	return r.exec(ctx, query, addressText(scope), role.Hex(), addressText(account))
}

func (r *RoleRepository) exec(ctx context.Context, query string, args ...any) error {
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

	return err
}

// HasRole reports whether account holds role within scope.
func (r *RoleRepository) HasRole(ctx context.Context, scope common.Address, role common.Hash, account common.Address) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM role_grants
			WHERE scope = $1 AND role = $2 AND account = $3
		)
	`
	args := []any{addressText(scope), role.Hex(), addressText(account)}

	var ok bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &ok, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", ok,
		"error", err,
	)

	return ok, err
}

// ListRoles returns the roles account holds within scope, ordered by id.
func (r *RoleRepository) ListRoles(ctx context.Context, scope, account common.Address) ([]common.Hash, error) {
	const query = `
		SELECT role FROM role_grants
		WHERE scope = $1 AND account = $2
		ORDER BY role
	`
	args := []any{addressText(scope), addressText(account)}

	var ids []string
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ids, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", ids,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	roles := make([]common.Hash, 0, len(ids))
	for _, id := range ids {
		roles = append(roles, common.HexToHash(id))
	}
	return roles, nil
}
