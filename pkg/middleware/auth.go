package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gbvars988/SoilFullStack/pkg/auth"
	"github.com/gbvars988/SoilFullStack/pkg/response"
)

type claimsKey struct{}

// Auth validates the Bearer token and stores the claims in the request
// context for handlers behind it.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		if token == "" {
			response.Fail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Fail(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromCtx returns the JWT claims stored by Auth, or nil.
func ClaimsFromCtx(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims
}
