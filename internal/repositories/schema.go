package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
)

// maxAmount is the largest unsigned 256-bit integer.
const maxAmount = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,
	`CREATE TABLE IF NOT EXISTS currencies (
		address VARCHAR(42) PRIMARY KEY,
		registered BOOLEAN NOT NULL DEFAULT FALSE,
		max_mint_amount NUMERIC(78,0) NOT NULL DEFAULT 0,
		min_supply_floor NUMERIC(78,0) NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS token_supply (
		token VARCHAR(42) PRIMARY KEY,
		supply NUMERIC(78,0) NOT NULL DEFAULT 0 ` + amount("supply") + `
	)`,
	`CREATE TABLE IF NOT EXISTS token_balances (
		token VARCHAR(42) NOT NULL,
		account VARCHAR(42) NOT NULL,
		balance NUMERIC(78,0) NOT NULL DEFAULT 0 ` + amount("balance") + `,
		PRIMARY KEY (token, account)
	)`,
	`CREATE TABLE IF NOT EXISTS token_allowances (
		token VARCHAR(42) NOT NULL,
		owner VARCHAR(42) NOT NULL,
		spender VARCHAR(42) NOT NULL,
		amount NUMERIC(78,0) NOT NULL DEFAULT 0 ` + amount("amount") + `,
		PRIMARY KEY (token, owner, spender)
	)`,
	`CREATE TABLE IF NOT EXISTS native_balances (
		account VARCHAR(42) PRIMARY KEY,
		balance NUMERIC(78,0) NOT NULL DEFAULT 0 ` + amount("balance") + `,
		rejects_native BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS role_grants (
		scope VARCHAR(42) NOT NULL,
		role VARCHAR(66) NOT NULL,
		account VARCHAR(42) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		PRIMARY KEY (scope, role, account)
	)`,
	`CREATE TABLE IF NOT EXISTS operators (
		operator_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(50) NOT NULL UNIQUE,
		address VARCHAR(42) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
}

func amount(column string) string {
	return fmt.Sprintf("CHECK (%[1]s >= 0 AND %[1]s <= %[2]s)", column, maxAmount)
}

// Migrate creates the tables used by the repositories if they do not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		_, err := db.ExecContext(ctx, stmt)
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(stmt), " "),
			"error", err,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
