package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// CurrencyRepository persists the currency registry.
type CurrencyRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewCurrencyRepository creates a new CurrencyRepository.
func NewCurrencyRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CurrencyRepository {
	return &CurrencyRepository{db: db, txGetter: txGetter}
}

// Save overwrites the registry entry of currency.Address.
func (r *CurrencyRepository) Save(ctx context.Context, currency models.Currency) error {
	query := `
		INSERT INTO currencies (address, registered, max_mint_amount, min_supply_floor, updated_at)
		VALUES ($1, $2, $3::NUMERIC, $4::NUMERIC, NOW())
		ON CONFLICT (address)
		DO UPDATE SET registered = EXCLUDED.registered,
		              max_mint_amount = EXCLUDED.max_mint_amount,
		              min_supply_floor = EXCLUDED.min_supply_floor,
		              updated_at = NOW()
	`
	args := []any{
		addressText(currency.Address),
		currency.Registered,
		models.AmountOrZero(currency.MaxMintAmount).Dec(),
		models.AmountOrZero(currency.MinSupplyFloor).Dec(),
	}

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

// GetByAddress returns the registry entry of address, or nil if there is none.
func (r *CurrencyRepository) GetByAddress(ctx context.Context, address common.Address) (*models.Currency, error) {
	const query = `
		SELECT address, registered, max_mint_amount::TEXT AS max_mint_amount,
		       min_supply_floor::TEXT AS min_supply_floor, updated_at
		FROM currencies
		WHERE address = $1
	`

	var row models.CurrencyDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, addressText(address))

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{addressText(address)},
		"result", row,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return currencyFromRow(row)
}

// List returns all registry entries ordered by address.
func (r *CurrencyRepository) List(ctx context.Context) ([]models.Currency, error) {
	const query = `
		SELECT address, registered, max_mint_amount::TEXT AS max_mint_amount,
		       min_supply_floor::TEXT AS min_supply_floor, updated_at
		FROM currencies
		ORDER BY address
	`

	var rows []models.CurrencyDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	list := make([]models.Currency, 0, len(rows))
	for _, row := range rows {
		c, err := currencyFromRow(row)
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	return list, nil
}

func currencyFromRow(row models.CurrencyDB) (*models.Currency, error) {
	maxMint, err := parseAmount(row.MaxMintAmount)
	if err != nil {
		return nil, err
	}
	minFloor, err := parseAmount(row.MinSupplyFloor)
	if err != nil {
		return nil, err
	}
	return &models.Currency{
		Address:        common.HexToAddress(row.Address),
		Registered:     row.Registered,
		MaxMintAmount:  maxMint,
		MinSupplyFloor: minFloor,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}
