package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := &jwt.StandardClaims{Subject: subject, ExpiresAt: expiresAt.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestProtect_ValidTokenThreadsUserID(t *testing.T) {
	token := signToken(t, testSecret, "user-123", time.Now().Add(time.Hour))

	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	rec := httptest.NewRecorder()

	Protect(testSecret)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotID != "user-123" {
		t.Fatalf("UserID in context = %q, want user-123", gotID)
	}
}

func TestProtect_MissingCookieIs401(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without a token")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()

	Protect(testSecret)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestProtect_RejectedTokensAre403(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached with an invalid token")
	})

	cases := map[string]string{
		"garbage":      "not-a-jwt",
		"wrong secret": signToken(t, "other-secret", "user-123", time.Now().Add(time.Hour)),
		"expired":      signToken(t, testSecret, "user-123", time.Now().Add(-time.Hour)),
		"no subject":   signToken(t, testSecret, "", time.Now().Add(time.Hour)),
	}
	for name, value := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: value})
		rec := httptest.NewRecorder()

		Protect(testSecret)(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s: status = %d, want 403", name, rec.Code)
		}
	}
}
