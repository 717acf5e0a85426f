package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/auth"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/jwt"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Authorizer resolves the roles held by the token's address.
type Authorizer interface {
	Authorize(ctx context.Context, caller common.Address) (*auth.Authorization, error)
}

// AuthMiddleware returns a middleware that validates the JWT and stores the
// caller's authorization in the request context.
func AuthMiddleware(tokener Tokener, authorizer Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			authz, err := authorizer.Authorize(ctx, claims.Address)
			if err != nil {
				logger.Log.Errorw("failed to resolve roles", "address", claims.Address.Hex(), "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithAuthorization(ctx, authz)))
		})
	}
}
