package handlers

import (
	"context"
	"net/http"

	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// ExchangeRater lists the exchanger's rates.
type ExchangeRater interface {
	Rates(ctx context.Context) (map[string]float32, error)
}

// Quoter converts an amount between fiat symbols.
type Quoter interface {
	Quote(ctx context.Context, from, to string, amount *uint256.Int) (*models.Quote, error)
}

// RatesResponse represents the exchanger's rates
// swagger:model RatesResponse
type RatesResponse struct {
	Rates map[string]float32 `json:"rates"`
}

// QuoteResponse represents an indicative conversion
// swagger:model QuoteResponse
type QuoteResponse struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	Rate         float32 `json:"rate"`
	Amount       string  `json:"amount"`
	TargetAmount string  `json:"target_amount"`
}

// NewGetRatesHandler returns an HTTP handler for fetching exchange rates.
// @Summary Get exchange rates
// @Description Fetches current rates for all supported fiat symbols
// @Tags quotes
// @Produce json
// @Success 200 {object} handlers.RatesResponse "Exchange rates"
// @Failure 500 {object} handlers.ErrorResponse "Failed to retrieve exchange rates"
// @Router /rates [get]
// @Security BearerAuth
func NewGetRatesHandler(svc ExchangeRater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates, err := svc.Rates(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, RatesResponse{Rates: rates})
	}
}

// NewQuoteHandler returns an HTTP handler pricing a pegged swap.
// @Summary Quote a swap
// @Description Converts amount of the from symbol into the to symbol at the exchanger's rate
// @Tags quotes
// @Produce json
// @Param from query string true "Origin fiat symbol" default(USD)
// @Param to query string true "Target fiat symbol" default(MXN)
// @Param amount query string true "Decimal amount" default(1000000)
// @Success 200 {object} handlers.QuoteResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 502 {object} handlers.ErrorResponse "Invalid rate"
// @Router /quotes [get]
// @Security BearerAuth
func NewQuoteHandler(svc Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from, to := q.Get("from"), q.Get("to")
		if from == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "missing symbol", Field: "from"})
			return
		}
		if to == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "missing symbol", Field: "to"})
			return
		}
		amount, err := parseAmount("amount", q.Get("amount"))
		if err != nil {
			writeError(w, err)
			return
		}

		quote, err := svc.Quote(r.Context(), from, to, amount)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, QuoteResponse{
			From:         quote.From,
			To:           quote.To,
			Rate:         quote.Rate,
			Amount:       amountString(quote.Amount),
			TargetAmount: amountString(quote.TargetAmount),
		})
	}
}
