package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shoppos/models"
	"shoppos/utils"
)

// AdminOnlyPaths are the prefixes only an admin can reach. A sales person is
// redirected to the dashboard when they navigate to one of these.
var AdminOnlyPaths = []string{
	"/dashboard/inventory",
	"/dashboard/purchases",
	"/dashboard/reports",
	"/dashboard/settings",
}

func IsAdminOnlyPath(path string) bool {
	for _, p := range AdminOnlyPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Authenticated resolves the session token from the cookie or the
// Authorization header and stores the user's name and role on the context.
// Requests without a valid token are anonymous and get 401.
func Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("token")
		if err != nil {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token not provided"})
				c.Abort()
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := utils.ValidateToken(token)
		if err != nil || !models.ValidRole(claims.Role) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		c.Set("name", claims.Name)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RoleGate enforces the admin-only prefixes per navigation: a sales user
// hitting one is sent back to the dashboard rather than refused.
func RoleGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsAdminOnlyPath(c.Request.URL.Path) && c.GetString("role") != models.RoleAdmin {
			c.Redirect(http.StatusSeeOther, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
