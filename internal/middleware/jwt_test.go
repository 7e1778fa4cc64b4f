//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		secret      string
		authHeader  string
		wantStatus  int
		wantSubject string
	}{
		{
			name:        "valid token",
			secret:      testSecret,
			authHeader:  "Bearer {valid}",
			wantStatus:  http.StatusOK,
			wantSubject: "ops@munchbox.test",
		},
		{
			name:       "missing header",
			secret:     testSecret,
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			secret:     testSecret,
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer token",
			secret:     testSecret,
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong signing key",
			secret:     testSecret,
			authHeader: "Bearer {wrong-key}",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			secret:     testSecret,
			authHeader: "Bearer {expired}",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty secret disables validation",
			secret:     "",
			authHeader: "",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(JWTAuth(tt.secret))

			var subject string
			router.GET("/test", func(c *gin.Context) {
				subject = GetSubject(c)
				c.Status(http.StatusOK)
			})

			authHeader := tt.authHeader
			switch authHeader {
			case "Bearer {valid}":
				authHeader = "Bearer " + signToken(t, testSecret, "ops@munchbox.test", time.Now().Add(time.Hour))
			case "Bearer {wrong-key}":
				authHeader = "Bearer " + signToken(t, "other-secret", "ops@munchbox.test", time.Now().Add(time.Hour))
			case "Bearer {expired}":
				authHeader = "Bearer " + signToken(t, testSecret, "ops@munchbox.test", time.Now().Add(-time.Hour))
			}

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if authHeader != "" {
				req.Header.Set("Authorization", authHeader)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantSubject != "" {
				assert.Equal(t, tt.wantSubject, subject)
			}
		})
	}
}

func TestParseToken_RejectsNonHMAC(t *testing.T) {
	// alg=none tokens must be rejected
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "attacker"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(signed, testSecret)
	assert.Error(t, err)
}
