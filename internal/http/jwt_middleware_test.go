package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"job-portal/internal/service"
)

type recordingRejections struct {
	reasons []string
}

func (r *recordingRejections) RecordTokenRejection(reason string) {
	r.reasons = append(r.reasons, reason)
}

func setupProtectedRouter(verifier TokenVerifier, rejections TokenRejectionRecorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(zap.NewNop(), verifier, rejections), func(c *gin.Context) {
		userID, ok := GetAuthUserID(c)
		ctxUserID, ctxOK := UserIDFromContext(c.Request.Context())
		if !ok || !ctxOK || userID != ctxUserID {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func requestWithAuth(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMiddleware_AllowsValidToken(t *testing.T) {
	tokens := service.NewJWTService("secret", time.Hour)
	token, err := tokens.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec := requestWithAuth(setupProtectedRouter(tokens, nil), "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["user_id"]; got != "u1" {
		t.Fatalf("expected user_id u1 in context, got %v", got)
	}
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	tokens := service.NewJWTService("secret", time.Hour)
	valid, err := tokens.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	foreign, err := service.NewJWTService("other", time.Hour).Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	tampered := valid[:len(valid)-2] + flip(valid[len(valid)-2:])

	cases := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "No token provided"},
		{"wrong scheme", "Token abc", "Invalid token format"},
		{"lowercase scheme", "bearer " + valid, "Invalid token format"},
		{"scheme only", "Bearer", "Invalid token format"},
		{"extra parts", "Bearer " + valid + " extra", "Invalid token format"},
		{"tampered token", "Bearer " + tampered, "Failed to authenticate token"},
		{"foreign secret", "Bearer " + foreign, "Failed to authenticate token"},
		{"garbage token", "Bearer abc", "Failed to authenticate token"},
	}

	r := setupProtectedRouter(tokens, nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := requestWithAuth(r, tc.header)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if got := decodeBody(t, rec)["message"]; got != tc.message {
				t.Fatalf("expected message %q, got %v", tc.message, got)
			}
		})
	}
}

func TestJWTAuthMiddleware_RecordsRejectionReason(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now := issuedAt
	tokens := service.NewJWTService("secret", time.Hour).WithClock(func() time.Time { return now })
	token, err := tokens.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	now = issuedAt.Add(2 * time.Hour)

	rejections := &recordingRejections{}
	rec := requestWithAuth(setupProtectedRouter(tokens, rejections), "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
	if len(rejections.reasons) != 1 || rejections.reasons[0] != "expired" {
		t.Fatalf("expected expired rejection, got %+v", rejections.reasons)
	}
}

func TestJWTAuthMiddleware_NilVerifier(t *testing.T) {
	rec := requestWithAuth(setupProtectedRouter(nil, nil), "Bearer abc")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

// flip cambia los caracteres dados por otros distintos del alfabeto base64url.
func flip(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == 'A' {
			b.WriteRune('B')
		} else {
			b.WriteRune('A')
		}
	}
	return b.String()
}
