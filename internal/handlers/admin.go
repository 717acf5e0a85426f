package handlers

import (
	"context"
	"net/http"

	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/auth"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
)

// Rescuer sends stray platform funds to the caller.
type Rescuer interface {
	RescueCrypto(ctx context.Context, authz *auth.Authorization, asset models.Asset, amount *uint256.Int) error
}

// Pauser toggles the swap circuit breaker.
type Pauser interface {
	Pause(ctx context.Context, authz *auth.Authorization) error
	Unpause(ctx context.Context, authz *auth.Authorization) error
	Paused() bool
}

// RescueRequest represents the JSON body of a rescue
// swagger:model RescueRequest
type RescueRequest struct {
	// "native" or a token address
	// required: true
	// default: native
	Asset string `json:"asset"`

	// Decimal amount
	// required: true
	// default: 1000
	Amount string `json:"amount"`
}

// RescueResponse represents a completed rescue
// swagger:model RescueResponse
type RescueResponse struct {
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
	To     string `json:"to"`
}

// PauseResponse reports the circuit breaker state
// swagger:model PauseResponse
type PauseResponse struct {
	Paused bool `json:"paused"`
}

// NewRescueHandler returns an HTTP handler that rescues platform funds.
// @Summary Rescue stray funds
// @Description Sends native coin or tokens held by the platform to the caller. Works while paused. Requires SUPPORT_ROLE.
// @Tags admin
// @Accept json
// @Produce json
// @Param rescueRequest body handlers.RescueRequest true "Rescue request"
// @Success 200 {object} handlers.RescueResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 422 {object} handlers.ErrorResponse "Send failed"
// @Router /rescue [post]
// @Security BearerAuth
func NewRescueHandler(svc Rescuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RescueRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		asset, err := parseAsset("asset", req.Asset)
		if err != nil {
			writeError(w, err)
			return
		}
		amount, err := parseAmount("amount", req.Amount)
		if err != nil {
			writeError(w, err)
			return
		}

		authz := auth.FromContext(r.Context())
		if err := svc.RescueCrypto(r.Context(), authz, asset, amount); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, RescueResponse{
			Asset:  asset.String(),
			Amount: amountString(amount),
			To:     authz.Caller().Hex(),
		})
	}
}

// NewPauseHandler returns an HTTP handler that pauses swaps.
// @Summary Pause swaps
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.PauseResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Already paused"
// @Router /pause [post]
// @Security BearerAuth
func NewPauseHandler(svc Pauser) http.HandlerFunc {
	return newToggleHandler(svc, svc.Pause)
}

// NewUnpauseHandler returns an HTTP handler that resumes swaps.
// @Summary Unpause swaps
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.PauseResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Not paused"
// @Router /unpause [post]
// @Security BearerAuth
func NewUnpauseHandler(svc Pauser) http.HandlerFunc {
	return newToggleHandler(svc, svc.Unpause)
}

// NewPausedHandler returns an HTTP handler reporting the pause state.
// @Summary Pause state
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.PauseResponse
// @Router /paused [get]
func NewPausedHandler(svc Pauser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, PauseResponse{Paused: svc.Paused()})
	}
}

func newToggleHandler(svc Pauser, toggle func(ctx context.Context, authz *auth.Authorization) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := toggle(r.Context(), auth.FromContext(r.Context())); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, PauseResponse{Paused: svc.Paused()})
	}
}
