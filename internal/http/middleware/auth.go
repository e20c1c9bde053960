package middleware

import (
	"net/http"
	"strings"

	"tourism/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// RequireAuth validates the Bearer token and stores the caller's identity in
// the gin context for handlers and role checks downstream.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		userID, _ := claims["user_id"].(float64)
		role, _ := claims["role"].(string)
		if userID <= 0 || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		c.Set(userIDKey, int64(userID))
		c.Set(userRoleKey, role)
		c.Next()
	}
}

// AuthOptional parses a Bearer token when one is present but never rejects
// the request. Anonymous callers simply get no identity on the context.
func AuthOptional(secret []byte) gin.HandlerFunc {
	required := RequireAuth(secret)
	return func(c *gin.Context) {
		if strings.HasPrefix(c.GetHeader("Authorization"), "Bearer ") {
			required(c)
			return
		}
		c.Next()
	}
}

// GetRequestContext returns the authenticated caller's identity.
func GetRequestContext(c *gin.Context) domain.RequestContext {
	rc := domain.RequestContext{}
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			rc.UserID = id
		}
	}
	rc.Role = c.GetString(userRoleKey)
	return rc
}
