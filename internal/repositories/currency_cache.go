package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// CurrencyCacheRepository caches registry entries in Redis as JSON.
type CurrencyCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewCurrencyCacheRepository creates a new CurrencyCacheRepository. A zero
// expiration keeps entries until overwritten.
func NewCurrencyCacheRepository(client *redis.Client, expiration time.Duration) *CurrencyCacheRepository {
	return &CurrencyCacheRepository{client: client, exp: expiration}
}

type cachedCurrency struct {
	Address        string    `json:"address"`
	Registered     bool      `json:"registered"`
	MaxMintAmount  string    `json:"max_mint_amount"`
	MinSupplyFloor string    `json:"min_supply_floor"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func currencyKey(address common.Address) string {
	return fmt.Sprintf("currency:%s", addressText(address))
}

// Get returns the cached entry of address, or an error wrapping ErrCacheMiss.
func (r *CurrencyCacheRepository) Get(ctx context.Context, address common.Address) (*models.Currency, error) {
	key := currencyKey(address)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Infow("cache miss", "key", key)
		return nil, fmt.Errorf("currency %s %w", address.Hex(), ErrCacheMiss)
	}
	if err != nil {
		logger.Log.Errorw("failed to read cache", "key", key, "error", err)
		return nil, err
	}

	var cached cachedCurrency
	if err := json.Unmarshal(val, &cached); err != nil {
		logger.Log.Errorw("failed to decode cached currency", "key", key, "error", err)
		return nil, err
	}

	maxMint, err := uint256.FromDecimal(cached.MaxMintAmount)
	if err != nil {
		return nil, err
	}
	minFloor, err := uint256.FromDecimal(cached.MinSupplyFloor)
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("cache hit", "key", key)
	return &models.Currency{
		Address:        common.HexToAddress(cached.Address),
		Registered:     cached.Registered,
		MaxMintAmount:  maxMint,
		MinSupplyFloor: minFloor,
		UpdatedAt:      cached.UpdatedAt,
	}, nil
}

// Set stores currency under its address.
func (r *CurrencyCacheRepository) Set(ctx context.Context, currency models.Currency) error {
	key := currencyKey(currency.Address)

	data, err := json.Marshal(cachedCurrency{
		Address:        addressText(currency.Address),
		Registered:     currency.Registered,
		MaxMintAmount:  models.AmountOrZero(currency.MaxMintAmount).Dec(),
		MinSupplyFloor: models.AmountOrZero(currency.MinSupplyFloor).Dec(),
		UpdatedAt:      currency.UpdatedAt,
	})
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow(
		"key", key,
		"value", string(data),
		"error", err,
	)
	return err
}
