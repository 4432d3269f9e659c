package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"internal-portal-api/config"
	"internal-portal-api/models"
)

type Claims struct {
	UserID      int      `json:"user_id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"display_name"`
	Roles       []string `json:"roles"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates JWT token
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		// Check if user still exists
		var user models.User
		if err := config.DB.Where("user_id = ? AND delete_at IS NULL", claims.UserID).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("displayName", claims.DisplayName)
		c.Set("roles", claims.Roles)

		c.Next()
	}
}

// HasAnyRole reports whether the user's role set intersects the
// allow-list. The check is by role name and case-sensitive: role names
// are controlled values seeded alongside the users table.
func HasAnyRole(userRoles []string, allowed []string) bool {
	for _, role := range userRoles {
		for _, want := range allowed {
			if role == want {
				return true
			}
		}
	}
	return false
}

// RequireAnyRole gates a view behind a static allow-list of role names.
// Access is granted when the intersection is non-empty. The gate is
// presentational: the data-access layer underneath stays role-agnostic.
func RequireAnyRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("roles")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this page"})
			c.Abort()
			return
		}

		roles, ok := value.([]string)
		if !ok || !HasAnyRole(roles, allowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this page"})
			c.Abort()
			return
		}

		c.Next()
	}
}
