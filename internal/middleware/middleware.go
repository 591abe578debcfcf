package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clinicare/internal/auth"
)

// AuthMiddleware verifies the bearer access token and stores the account
// identity and role flags in the request context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authorization header is required",
				"error":   "Missing authorization token",
			})
			c.Abort()
			return
		}

		// Check if the Authorization header has the correct format (Bearer {token})
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid authorization header format",
				"error":   "Use format: Bearer {token}",
			})
			c.Abort()
			return
		}

		claims, err := tokens.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
			c.Abort()
			return
		}

		// Refresh tokens never authenticate requests
		if claims.TokenType != auth.TokenTypeAccess {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid token type",
				"error":   "An access token is required",
			})
			c.Abort()
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Set("email", claims.Email)
		c.Set("is_admin", claims.IsAdmin)
		c.Set("is_specialist", claims.IsSpecialist)
		c.Next()
	}
}

// RequireAdmin gates vocabulary management. Composed after
// AuthMiddleware, so an unauthenticated request never reaches it.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Forbidden",
				"error":   "Admin privileges are required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSpecialist gates report and prescription creation.
func RequireSpecialist() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_specialist") {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Forbidden",
				"error":   "Specialist privileges are required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
