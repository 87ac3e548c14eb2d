package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// ContextUserID is the gin context key holding the authenticated user's UUID.
	ContextUserID = "userID"
	// ContextEmail is the gin context key holding the authenticated user's email.
	ContextEmail = "email"
)

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only. All authentication
// failures share one 401 body, so a caller cannot tell a missing header
// from a forged or expired token.
func AuthRequired(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		if len(key) == 0 {
			// Server misconfiguration (empty signing secret)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		// 1. Get Authorization header; the value must be exactly "Bearer <token>"
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Parse and verify JWT signature; expiration is checked by the parser
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// 3. Extract claims (payload); the subject must be a valid UUID
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(ContextUserID, userID)
		if email, ok := claims["email"].(string); ok {
			c.Set(ContextEmail, email)
		}

		// 4. Pass control to the next handler
		c.Next()
	}
}
