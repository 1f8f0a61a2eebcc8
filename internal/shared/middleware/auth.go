package middleware

import (
	"net/http"
	"strings"

	"realestate-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the admin Bearer token and puts the claims into
// the request context.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized, no token",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized, invalid authorization header",
			})
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized, token failed",
			})
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("admin_email", claims.Email)
		c.Set("admin_role", claims.Role)

		c.Next()
	}
}

// SuperAdminOnly restricts a route to super-admin accounts. Must run after
// AuthMiddleware.
func SuperAdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("admin_role")
		if role != "super-admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Access denied. Super-admin only.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
