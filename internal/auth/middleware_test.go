package auth_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"quizmaster/internal/auth"
)

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return auth.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.GetUserClaimsFromContext(r.Context())
		if err != nil {
			t.Errorf("claims missing from context: %v", err)
		}
		w.Write([]byte(claims.UserID))
	}))
}

func TestAuthMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("MissingToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/questions", nil)
		rec := httptest.NewRecorder()

		protectedEcho(t).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401 without token, got %d", rec.Code)
		}
	})

	t.Run("TamperedToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testEmail, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/questions", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr[:len(tokenStr)-2]+"xx")
		rec := httptest.NewRecorder()

		protectedEcho(t).ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("Expected 403 for tampered token, got %d", rec.Code)
		}
	})

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testEmail, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/questions", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		rec := httptest.NewRecorder()

		protectedEcho(t).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200 with valid token, got %d", rec.Code)
		}
		if rec.Body.String() != testUserID {
			t.Errorf("Handler saw wrong user id: %s", rec.Body.String())
		}
	})
}
