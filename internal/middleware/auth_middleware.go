package middleware

import (
	"net/http"
	"strings"

	"orgsite-backend/internal/services"
	"orgsite-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AdminAuthCookie is the cookie carrying the admin session token.
const AdminAuthCookie = "admin_auth"

// AdminAuthMiddleware guards the admin mutation endpoints. The token is
// read from the admin cookie, with a Bearer header fallback for API
// clients.
func AdminAuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractAdminToken(c)
		if err := service.ValidateToken(token); err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// ExtractAdminToken pulls the admin session token from the request.
func ExtractAdminToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AdminAuthCookie); err == nil && cookie != "" {
		return cookie
	}
	return extractBearer(c)
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
