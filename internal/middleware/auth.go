// Package middleware holds the HTTP middleware shared by the API modules.
package middleware

import (
	"context"
	"net/http"

	"github.com/dgrijalva/jwt-go"
)

// TokenCookie is the cookie carrying the signed session token.
const TokenCookie = "token"

type contextKey struct{}

var userIDKey contextKey

// UserID returns the authenticated user's id placed in ctx by Protect.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// WithUserID returns ctx carrying id as the authenticated user. Protect uses
// it after token verification; handler tests use it directly.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// Protect returns middleware that requires a valid session token cookie.
// A missing cookie answers 401; a token that fails verification answers 403.
func Protect(jwtSecret string) func(http.Handler) http.Handler {
	secret := []byte(jwtSecret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(TokenCookie)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			claims := &jwt.StandardClaims{}
			token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !token.Valid || claims.Subject == "" {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.Subject)))
		})
	}
}
