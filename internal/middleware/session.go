// Package middleware provides session and owner resolution middleware.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/i18n"
)

const (
	// OwnerIDKey is the gin context key holding the resolved cart owner ID.
	OwnerIDKey = "owner_id"
	// SessionHeader carries the anonymous session identifier.
	SessionHeader = "X-Session-ID"

	userOwnerPrefix  = "user:"
	guestOwnerPrefix = "guest:"
)

// Session returns a middleware that resolves the cart owner for a request.
//
// Resolution order:
//  1. Authorization: Bearer <JWT> — the token subject becomes the owner
//     (authenticated user). An invalid or expired token aborts with 401.
//  2. X-Session-ID header — an anonymous guest session.
//  3. Neither — a fresh session ID is generated and echoed back in the
//     X-Session-ID response header so the client can persist it.
//
// jwtSecret is the HMAC key used to verify bearer tokens. When empty,
// bearer tokens are rejected as if invalid.
func Session(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			subject, err := validateToken(tokenString, jwtSecret)
			if err != nil || subject == "" {
				message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
				errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
					WithRequestID(requestID)
				c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
				return
			}
			c.Set(OwnerIDKey, userOwnerPrefix+subject)
			c.Next()
			return
		}

		if sessionID := c.GetHeader(SessionHeader); sessionID != "" {
			c.Set(OwnerIDKey, guestOwnerPrefix+sessionID)
			c.Next()
			return
		}

		sessionID := uuid.New().String()
		c.Header(SessionHeader, sessionID)
		c.Set(OwnerIDKey, guestOwnerPrefix+sessionID)
		c.Next()
	}
}

// validateToken parses and verifies an HMAC-signed JWT and returns its subject.
func validateToken(tokenString, secret string) (string, error) {
	if tokenString == "" || secret == "" {
		return "", fmt.Errorf("missing token or secret")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid claims")
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	return subject, nil
}

// GetOwnerID returns the owner ID resolved by the Session middleware,
// or an empty string when the middleware has not run.
func GetOwnerID(c *gin.Context) string {
	if ownerID, exists := c.Get(OwnerIDKey); exists {
		if id, ok := ownerID.(string); ok {
			return id
		}
	}
	return ""
}
