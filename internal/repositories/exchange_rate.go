package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
)

// ErrCacheMiss is returned by cache repositories for absent or expired keys.
var ErrCacheMiss = errors.New("not found in cache")

// ExchangeRateCacheRepository provides cached exchange rates using Redis
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewExchangeRateCacheRepository creates a new repository instance with optional TTL
func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func exchangeRateKey(fromCurrency, toCurrency string) string {
	return fmt.Sprintf("exchange_rate:%s:%s", strings.ToUpper(fromCurrency), strings.ToUpper(toCurrency))
}

// GetExchangeRateForCurrency fetches a cached exchange rate between two currency symbols
func (r *ExchangeRateCacheRepository) GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float32, error) {
	key := exchangeRateKey(fromCurrency, toCurrency)

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logger.Log.Infow("cache miss", "key", key)
		return 0, fmt.Errorf("exchange rate %s->%s %w", fromCurrency, toCurrency, ErrCacheMiss)
	}
	if err != nil {
		logger.Log.Errorw("failed to read cache", "key", key, "error", err)
		return 0, err
	}

	rate, err := strconv.ParseFloat(val, 32)
	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", rate,
		"error", err,
	)
	if err != nil {
		return 0, err
	}

	return float32(rate), nil
}

// SetExchangeRateForCurrency caches a rate in Redis with expiration
func (r *ExchangeRateCacheRepository) SetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string, rate float32) error {
	key := exchangeRateKey(fromCurrency, toCurrency)
	value := strconv.FormatFloat(float64(rate), 'g', -1, 32)
	err := r.client.Set(ctx, key, value, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", value,
		"error", err,
	)

	return err
}
