package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "gymoffice/internal/pkg/jwt"
	"gymoffice/internal/pkg/response"
)

// Auth verifies the bearer token and puts account_id and role into the
// request context.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Unauthorized", "missing bearer token")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "Unauthorized", "empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unauthorized", "invalid token")
			c.Abort()
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
