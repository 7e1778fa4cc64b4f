// Package middleware provides JWT authentication middleware.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/munchbox/shipment-service/internal/domain/dto"
	"github.com/munchbox/shipment-service/internal/i18n"
)

const (
	// SubjectKey is the context key holding the authenticated subject.
	SubjectKey = "subject"
)

// JWTAuth returns a middleware that validates HMAC-signed bearer tokens
// issued by the platform's identity service. The token subject is stored in
// the gin context for audit logging. An empty secret disables validation.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyTokenRequired, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		claims, err := ParseToken(tokenString, secret)
		if err != nil {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}

// ParseToken validates an HMAC-signed JWT and returns its registered claims.
func ParseToken(tokenString, secret string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// GetSubject retrieves the authenticated subject from the gin context.
func GetSubject(c *gin.Context) string {
	if subject, exists := c.Get(SubjectKey); exists {
		if s, ok := subject.(string); ok {
			return s
		}
	}
	return ""
}
