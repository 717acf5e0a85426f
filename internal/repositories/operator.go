package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

type OperatorReadRepository struct {
	db *sqlx.DB
}

func NewOperatorReadRepository(db *sqlx.DB) *OperatorReadRepository {
	return &OperatorReadRepository{db: db}
}

// GetByUsername returns the operator named username, or nil if there is none.
func (r *OperatorReadRepository) GetByUsername(ctx context.Context, username string) (*models.OperatorDB, error) {
	const query = `
		SELECT operator_id, username, address, password_hash, created_at, updated_at
		FROM operators
		WHERE username = $1
	`

	var operator models.OperatorDB
	err := r.db.GetContext(ctx, &operator, query, username)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", operator.OperatorID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &operator, nil
}

type OperatorWriteRepository struct {
	db *sqlx.DB
}

func NewOperatorWriteRepository(db *sqlx.DB) *OperatorWriteRepository {
	return &OperatorWriteRepository{db: db}
}

// Save creates the operator. Addresses are stored lowercase.
func (r *OperatorWriteRepository) Save(ctx context.Context, username, passwordHash, address string) error {
	query := `
		INSERT INTO operators (username, address, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (username) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    address = EXCLUDED.address,
		    updated_at = NOW()
	`
	args := []any{username, strings.ToLower(address), passwordHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line, without the password hash
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args[:2],
		"result", rowsAffected,
		"error", err,
	)

	return err
}
