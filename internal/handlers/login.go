package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-pegged-settlement/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the JSON body for operator login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: settlement_bot
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for operator login.
// @Summary Operator login
// @Description Authenticate an operator and return a JWT token carrying its address
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, LoginResponse{Token: token})
		case errors.Is(err, services.ErrInvalidCredentials),
			errors.Is(err, services.ErrOperatorDoesNotExist):
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		default:
			writeError(w, err)
		}
	}
}
