package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gallery-backend/internal/shared/response"
	"gallery-backend/pkg/jwt"
)

// AuthCookieName is the session cookie set at login. Its value is the signed
// token itself; presence alone is never enough, the signature and expiry are
// verified on every protected request.
const AuthCookieName = "auth_token"

// Auth gates admin routes. The token is taken from the Authorization header
// first, then from the session cookie.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.Unauthorized(c, "invalid authorization header format")
				c.Abort()
				return
			}
			token = parts[1]
		}

		if token == "" {
			if cookie, err := c.Cookie(AuthCookieName); err == nil {
				token = cookie
			}
		}

		if token == "" {
			response.Unauthorized(c, "missing session token")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired session token")
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Set("adminName", claims.Name)

		c.Next()
	}
}
