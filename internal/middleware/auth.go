package middleware

import (
	"net/http"

	"marketplace-be/internal/auth"
	"marketplace-be/internal/logger"
	"marketplace-be/internal/user"
	"marketplace-be/internal/utils"

	"go.uber.org/zap"
)

type TokenParser interface {
	Parse(token string) (*user.CustomClaims, error)
}

// AuthMiddleware is optional authentication: requests without a token pass
// through anonymously, requests with an invalid or expired token get 401,
// and valid tokens put the user's claims into the request context.
func AuthMiddleware(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Parse(tokenStr)
			if err != nil {
				logger.FromCtx(r.Context()).Info("rejected session token", zap.Error(err))
				utils.WriteJSONMessage(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
