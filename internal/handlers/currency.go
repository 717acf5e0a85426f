package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/auth"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// CurrencySetter configures registry entries.
type CurrencySetter interface {
	SetCurrency(ctx context.Context, authz *auth.Authorization, currency common.Address, registered bool, maxMintAmount, minSupplyFloor *uint256.Int) (*models.Currency, error)
}

// CurrencyLister lists registry entries.
type CurrencyLister interface {
	List(ctx context.Context) ([]models.Currency, error)
}

// SetCurrencyRequest represents the JSON body for a registry update
// swagger:model SetCurrencyRequest
type SetCurrencyRequest struct {
	// Whether mint and burn legs may run against the currency
	// required: true
	Registered bool `json:"registered"`

	// Largest amount a single mint leg may create, decimal
	// default: 1000000000
	MaxMintAmount string `json:"max_mint_amount"`

	// Supply that a burn leg must leave behind, decimal
	// default: 0
	MinSupplyFloor string `json:"min_supply_floor"`
}

// CurrencyResponse represents a registry entry
// swagger:model CurrencyResponse
type CurrencyResponse struct {
	Address        string    `json:"address"`
	Registered     bool      `json:"registered"`
	MaxMintAmount  string    `json:"max_mint_amount"`
	MinSupplyFloor string    `json:"min_supply_floor"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CurrenciesResponse represents the registry listing
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

func newCurrencyResponse(c models.Currency) CurrencyResponse {
	return CurrencyResponse{
		Address:        c.Address.Hex(),
		Registered:     c.Registered,
		MaxMintAmount:  amountString(c.MaxMintAmount),
		MinSupplyFloor: amountString(c.MinSupplyFloor),
		UpdatedAt:      c.UpdatedAt,
	}
}

// NewSetCurrencyHandler returns an HTTP handler that overwrites a registry entry.
// @Summary Configure a pegged currency
// @Description Registers, updates or disables a currency. Requires MAINTAINER_ROLE.
// @Tags currencies
// @Accept json
// @Produce json
// @Param address path string true "Currency address"
// @Param setCurrencyRequest body handlers.SetCurrencyRequest true "Registry entry"
// @Success 200 {object} handlers.CurrencyResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /currencies/{address} [put]
// @Security BearerAuth
func NewSetCurrencyHandler(svc CurrencySetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currency, err := parseAddress("address", chi.URLParam(r, "address"))
		if err != nil {
			writeError(w, err)
			return
		}

		var req SetCurrencyRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		maxMint, err := parseAmount("max_mint_amount", req.MaxMintAmount)
		if err != nil {
			writeError(w, err)
			return
		}
		minFloor, err := parseAmount("min_supply_floor", req.MinSupplyFloor)
		if err != nil {
			writeError(w, err)
			return
		}

		entry, err := svc.SetCurrency(r.Context(), auth.FromContext(r.Context()), currency, req.Registered, maxMint, minFloor)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newCurrencyResponse(*entry))
	}
}

// NewListCurrenciesHandler returns an HTTP handler listing the registry.
// @Summary List pegged currencies
// @Tags currencies
// @Produce json
// @Success 200 {object} handlers.CurrenciesResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /currencies [get]
// @Security BearerAuth
func NewListCurrenciesHandler(svc CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		resp := CurrenciesResponse{Currencies: make([]CurrencyResponse, 0, len(entries))}
		for _, c := range entries {
			resp.Currencies = append(resp.Currencies, newCurrencyResponse(c))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
