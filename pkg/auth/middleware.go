package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/bridge-transfer/pkg/app/errors"
	apphttp "github.com/chainsafe/bridge-transfer/pkg/app/http"
)

// Middleware rejects requests without a valid bearer token and stores the
// token subject in the request context.
func Middleware(v *JWTValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "missing bearer token"))
				return
			}

			claims, err := v.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Debug("Rejected bearer token", zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid bearer token"))
				return
			}

			ctx := r.Context()
			if sub, err := claims.GetSubject(); err == nil && sub != "" {
				ctx = WithSubject(ctx, sub)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
