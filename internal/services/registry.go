package services

//go:generate mockgen -source=registry.go -destination=registry_mock_test.go -package=services

import (
	"context"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/auth"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/metrics"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// CurrencyWriter persists registry entries.
type CurrencyWriter interface {
	Save(ctx context.Context, currency models.Currency) error // Overwrites the entry of currency.Address
}

// CurrencyReader reads registry entries.
type CurrencyReader interface {
	GetByAddress(ctx context.Context, address common.Address) (*models.Currency, error) // Returns nil when absent
	List(ctx context.Context) ([]models.Currency, error)                                // Returns all entries
}

// CurrencyCache caches registry entries.
type CurrencyCache interface {
	Get(ctx context.Context, address common.Address) (*models.Currency, error) // Returns an error on a miss
	Set(ctx context.Context, currency models.Currency) error
}

// RegistryService manages per-currency configuration.
type RegistryService struct {
	writer      CurrencyWriter
	reader      CurrencyReader
	cache       CurrencyCache
	kafkaWriter KafkaWriter
}

// NewRegistryService creates a new RegistryService. cache and kafkaWriter may be nil.
func NewRegistryService(
	writer CurrencyWriter,
	reader CurrencyReader,
	cache CurrencyCache,
	kafkaWriter KafkaWriter,
) *RegistryService {
	return &RegistryService{
		writer:      writer,
		reader:      reader,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// SetCurrency overwrites the configuration of currency. Requires the maintainer role.
func (s *RegistryService) SetCurrency(
	ctx context.Context,
	authz *auth.Authorization,
	currency common.Address,
	registered bool,
	maxMintAmount, minSupplyFloor *uint256.Int,
) (*models.Currency, error) {
	if err := authz.Require(auth.MaintainerRole); err != nil {
		logger.Log.Errorw("set currency denied", "caller", authz.Caller().Hex(), "error", err)
		return nil, err
	}
	if currency == (common.Address{}) {
		return nil, zeroValue(FieldCurrency)
	}

	entry := models.Currency{
		Address:        currency,
		Registered:     registered,
		MaxMintAmount:  models.AmountOrZero(maxMintAmount),
		MinSupplyFloor: models.AmountOrZero(minSupplyFloor),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := s.writer.Save(ctx, entry); err != nil {
		logger.Log.Errorw("failed to save currency", "currency", currency.Hex(), "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, entry); err != nil {
			logger.Log.Errorw("failed to cache currency", "currency", currency.Hex(), "error", err)
		}
	}

	metrics.Registry().ObserveUpdate(registered)
	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventCurrencyUpdated, authz.Caller().Hex(), map[string]string{
		"currency":         currency.Hex(),
		"registered":       strconv.FormatBool(registered),
		"max_mint_amount":  entry.MaxMintAmount.Dec(),
		"min_supply_floor": entry.MinSupplyFloor.Dec(),
	}))

	return &entry, nil
}

// Lookup returns the entry of currency, or nil if it was never registered.
func (s *RegistryService) Lookup(ctx context.Context, currency common.Address) (*models.Currency, error) {
	if s.cache != nil {
		if entry, err := s.cache.Get(ctx, currency); err == nil && entry != nil {
			return entry, nil
		}
	}

	entry, err := s.reader.GetByAddress(ctx, currency)
	if err != nil {
		logger.Log.Errorw("failed to read currency", "currency", currency.Hex(), "error", err)
		return nil, err
	}

	if entry != nil && s.cache != nil {
		if err := s.cache.Set(ctx, *entry); err != nil {
			logger.Log.Errorw("failed to cache currency", "currency", currency.Hex(), "error", err)
		}
	}
	return entry, nil
}

// List returns all registry entries.
func (s *RegistryService) List(ctx context.Context) ([]models.Currency, error) {
	list, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list currencies", "error", err)
		return nil, err
	}
	return list, nil
}

// IsRegistered reports whether currency is registered and enabled.
func (s *RegistryService) IsRegistered(ctx context.Context, currency common.Address) (bool, error) {
	entry, err := s.Lookup(ctx, currency)
	if err != nil {
		return false, err
	}
	return entry.Eligible(), nil
}

// MaxMintAmount returns the per operation mint cap of currency.
func (s *RegistryService) MaxMintAmount(ctx context.Context, currency common.Address) (*uint256.Int, error) {
	entry, err := s.Lookup(ctx, currency)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return new(uint256.Int), nil
	}
	return entry.MaxMintAmount, nil
}

// MinSupplyFloor returns the post-burn supply floor of currency.
func (s *RegistryService) MinSupplyFloor(ctx context.Context, currency common.Address) (*uint256.Int, error) {
	entry, err := s.Lookup(ctx, currency)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return new(uint256.Int), nil
	}
	return entry.MinSupplyFloor, nil
}
