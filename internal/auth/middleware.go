package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

// userClaimsKey is the context key under which the gate stores verified claims.
const userClaimsKey = contextKey("userClaims")

// ClaimsFromContext returns the claims the gate attached to the request, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(userClaimsKey).(*Claims)
	return claims, ok
}

func reject(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// Gate is the single checkpoint for protected routes: it extracts the session
// token, verifies it, and rejects users whose snapshot is not approved. On an
// invalid token the cookie is cleared so the client stops resending it.
//
// "Not approved" answers with 401, not 403; clients depend on that code.
func Gate(tokens *TokenService, transport *SessionTransport) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := transport.Extract(r)
			if tokenStr == "" {
				reject(w, http.StatusUnauthorized, "Unauthorized: No token provided")
				return
			}

			claims, err := tokens.Verify(tokenStr)
			if err != nil {
				transport.Clear(w)
				reject(w, http.StatusForbidden, "Forbidden: Invalid token")
				return
			}

			if !claims.Approved() {
				reject(w, http.StatusUnauthorized, "Unauthorized: User not approved")
				return
			}

			ctx := context.WithValue(r.Context(), userClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
