package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/passvault/internal/errs"
	"github.com/sbilibin2017/passvault/internal/jwt"
	"github.com/sbilibin2017/passvault/internal/logger"
	"github.com/sbilibin2017/passvault/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware rejects requests without a valid bearer token with 401 and
// attaches the decoded identity to the request context otherwise.
// Verification is signature and expiry only; the store is never consulted.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "request_id", RequestIDFromContext(ctx), "err", err)
				writeJSONError(w, http.StatusUnauthorized, authMessage(err))
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "request_id", RequestIDFromContext(ctx), "err", err)
				writeJSONError(w, http.StatusUnauthorized, authMessage(err))
				return
			}

			ctx = WithIdentity(ctx, models.Identity{
				UserID:   claims.UserID,
				Username: claims.Username,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authMessage keeps the no-token / invalid / expired distinction and hides anything else.
func authMessage(err error) string {
	if errs.KindOf(err) == errs.KindAuthentication {
		return err.Error()
	}
	return errs.ErrInvalidToken.Message
}
