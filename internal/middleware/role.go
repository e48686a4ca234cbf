package middleware

import (
	"net/http"

	"github.com/hcanning/uni-eats-filter/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group behind a live role check. The role is
// re-read from the profile store rather than trusted from the token, so a
// revoked admin loses access immediately. A lookup failure denies access
// (fail closed), never grants it.
func RequireRole(store auth.RoleLookup, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			deny(c, "No signed-in user on this request.")
			return
		}

		role, err := store.RoleByID(c.Request.Context(), userID.(string))
		if err != nil {
			deny(c, "Your role could not be verified, so access was not granted.")
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		deny(c, "This area is restricted to cafeteria staff.")
	}
}

func deny(c *gin.Context, description string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"title":       "Access denied",
		"description": description,
		"severity":    "destructive",
	})
}
