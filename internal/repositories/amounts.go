package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// checkViolation is the SQLSTATE of a failed CHECK constraint.
const checkViolation = "23514"

// addressText is the stored form of an address: lowercase hex with 0x prefix.
func addressText(a common.Address) string {
	return strings.ToLower(a.Hex())
}

func parseAmount(s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", s, err)
	}
	return v, nil
}

// amountError turns a violated amount range check into ErrAmountOverflow.
func amountError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == checkViolation {
		return models.ErrAmountOverflow
	}
	return err
}
