package facades

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// ExchangeRatesGRPCFacade reads fiat exchange rates from the exchanger service.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetExchangeRates returns all rates keyed by upper-case currency symbol.
// Non-positive rates are dropped.
func (f *ExchangeRatesGRPCFacade) GetExchangeRates(ctx context.Context) (map[string]float32, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, err
	}

	rates := make(map[string]float32, len(resp.Rates))
	for symbol, rate := range resp.Rates {
		if rate <= 0 {
			logger.Log.Warnw("dropping non-positive exchange rate", "currency", symbol, "rate", rate)
			continue
		}
		rates[strings.ToUpper(symbol)] = rate
	}

	return rates, nil
}

// GetExchangeRateForCurrency fetches the rate that converts one unit of
// fromCurrency into toCurrency.
func (f *ExchangeRatesGRPCFacade) GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float32, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: strings.ToUpper(fromCurrency),
		ToCurrency:   strings.ToUpper(toCurrency),
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate for currency via gRPC",
			"from", req.FromCurrency, "to", req.ToCurrency, "error", err)
		return 0, err
	}

	return resp.Rate, nil
}
