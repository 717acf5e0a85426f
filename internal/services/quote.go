package services

//go:generate mockgen -source=quote.go -destination=quote_mock_test.go -package=services

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// ErrInvalidRate is returned when the exchanger reports a non-positive rate.
var ErrInvalidRate = errors.New("invalid exchange rate")

// rateScale is the fixed-point precision used to apply float rates.
const rateScale = 100_000_000

// ExchangeRateReader fetches current exchange rates from an external service
type ExchangeRateReader interface {
	GetExchangeRates(ctx context.Context) (map[string]float32, error)
	GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float32, error)
}

// ExchangeRateCache caches exchange rates
type ExchangeRateCache interface {
	GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float32, error)
	SetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string, rate float32) error
}

// QuoteService prices a target amount for a pair of currency symbols.
type QuoteService struct {
	reader ExchangeRateReader
	cache  ExchangeRateCache
}

// NewQuoteService creates a new QuoteService. cache may be nil.
func NewQuoteService(reader ExchangeRateReader, cache ExchangeRateCache) *QuoteService {
	return &QuoteService{reader: reader, cache: cache}
}

// Rates returns all rates known to the exchanger.
func (s *QuoteService) Rates(ctx context.Context) (map[string]float32, error) {
	rates, err := s.reader.GetExchangeRates(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get exchange rates", "error", err)
		return nil, err
	}
	return rates, nil
}

// Quote converts amount of from into to.
func (s *QuoteService) Quote(ctx context.Context, from, to string, amount *uint256.Int) (*models.Quote, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)

	rate, err := s.rate(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if rate <= 0 || math.IsNaN(float64(rate)) || math.IsInf(float64(rate), 0) {
		logger.Log.Errorw("exchanger returned invalid rate", "from", from, "to", to, "rate", rate)
		return nil, ErrInvalidRate
	}

	amount = models.AmountOrZero(amount)
	scaled := uint256.NewInt(uint64(math.Round(float64(rate) * rateScale)))
	target, overflow := new(uint256.Int).MulDivOverflow(amount, scaled, uint256.NewInt(rateScale))
	if overflow {
		return nil, models.ErrAmountOverflow
	}

	return &models.Quote{
		From:         from,
		To:           to,
		Rate:         rate,
		Amount:       amount.Clone(),
		TargetAmount: target,
	}, nil
}

func (s *QuoteService) rate(ctx context.Context, from, to string) (float32, error) {
	if from == to {
		return 1, nil
	}

	if s.cache != nil {
		if rate, err := s.cache.GetExchangeRateForCurrency(ctx, from, to); err == nil {
			return rate, nil
		}
	}

	rate, err := s.reader.GetExchangeRateForCurrency(ctx, from, to)
	if err != nil {
		logger.Log.Errorw("failed to get exchange rate", "from", from, "to", to, "error", err)
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.SetExchangeRateForCurrency(ctx, from, to, rate); err != nil {
			logger.Log.Errorw("failed to cache exchange rate", "from", from, "to", to, "rate", rate, "error", err)
		}
	}
	return rate, nil
}
