package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-pegged-settlement/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, address string) error
}

// RegisterRequest represents the JSON body for operator registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: settlement_bot
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Address the operator acts as
	// required: true
	// default: 0x00000000000000000000000000000000000000a1
	Address string `json:"address"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: Operator registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for operator registration.
// @Summary Register a new operator
// @Description Creates an operator account bound to an address. Password is hashed before storing. Roles are granted separately.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Operator registration request"
// @Success 201 {object} handlers.RegisterResponse "Operator successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Username already exists / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		err := svc.Register(r.Context(), req.Username, req.Password, req.Address)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, RegisterResponse{Message: "Operator registered successfully"})
		case errors.Is(err, services.ErrOperatorAlreadyExists):
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Username already exists"})
		case errors.Is(err, services.ErrInvalidAddress):
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: "address"})
		default:
			writeError(w, err)
		}
	}
}
