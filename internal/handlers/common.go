package handlers

//go:generate mockgen -destination=handlers_mock_test.go -package=handlers . Registerer,Loginer,CurrencySetter,CurrencyLister,StablecoinSwapper,DefiSwapper,Swapper,StablecoinToDefiSwapper,DefiToStablecoinSwapper,Rescuer,Pauser,ExchangeRater,Quoter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/auth"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/facades"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/services"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: zero value input
	Error string `json:"error"`

	// Offending request field, when the error names one
	Field string `json:"field,omitempty"`

	// Currency that violated its mint or burn boundary
	Currency string `json:"currency,omitempty"`

	// Amount of the violating leg, as a decimal string
	Amount string `json:"amount,omitempty"`
}

// InvalidFieldError is returned when a request field cannot be parsed.
type InvalidFieldError struct {
	Field string
	Err   error
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *InvalidFieldError) Unwrap() error { return e.Err }

var errInvalidBody = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto a status code and an ErrorResponse body.
func writeError(w http.ResponseWriter, err error) {
	var (
		invalid  *InvalidFieldError
		zero     *services.ZeroValueInputError
		boundary *services.InvalidMintBurnBoundaryError
	)

	switch {
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: invalid.Field})
	case errors.Is(err, errInvalidBody):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.As(err, &zero):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: services.ErrZeroValueInput.Error(), Field: zero.Field})
	case errors.Is(err, services.ErrFeeCurrencyMismatch):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: services.FieldFeeCurrency})
	case errors.As(err, &boundary):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:    services.ErrInvalidMintBurnBoundary.Error(),
			Currency: boundary.Currency.Hex(),
			Amount:   models.AmountOrZero(boundary.Amount).Dec(),
		})
	case errors.Is(err, auth.ErrMissingRole):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrPaused), errors.Is(err, services.ErrNotPaused):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrSendFailed),
		errors.Is(err, services.ErrBuyBackNotConfigured),
		errors.Is(err, models.ErrInsufficientBalance),
		errors.Is(err, models.ErrInsufficientAllowance),
		errors.Is(err, models.ErrInsufficientSupply),
		errors.Is(err, models.ErrAmountOverflow),
		errors.Is(err, models.ErrNativeRejected):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, facades.ErrCallReverted), errors.Is(err, services.ErrInvalidRate):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}

// Empty strings decode to zero values so the services report missing fields.

func parseAddress(field, s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, &InvalidFieldError{Field: field, Err: errors.New("not a hex address")}
	}
	return common.HexToAddress(s), nil
}

func parseAmount(field, s string) (*uint256.Int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, &InvalidFieldError{Field: field, Err: err}
	}
	return v, nil
}

func parseBytes(field, s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, &InvalidFieldError{Field: field, Err: err}
	}
	return b, nil
}

func parseAsset(field, s string) (models.Asset, error) {
	if s == "" {
		return models.Asset{}, nil
	}
	a, err := models.ParseAsset(s)
	if err != nil {
		return models.Asset{}, &InvalidFieldError{Field: field, Err: err}
	}
	return a, nil
}

func amountString(v *uint256.Int) string {
	return models.AmountOrZero(v).Dec()
}
