package middleware

import (
	"context"
	"net/http"
	"strings"

	"payguard/internal/domain/auth"
	"payguard/internal/transport/http/api"
)

const userKey ctxKey = "user"

// RequireAuth rejects requests without a valid bearer token. An empty secret
// disables enforcement so local development works without provisioning one.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token", GetRequestID(r.Context()))
				return
			}

			ctx := context.WithValue(r.Context(), userKey, *claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (auth.Claims, bool) {
	user, ok := ctx.Value(userKey).(auth.Claims)
	return user, ok
}
