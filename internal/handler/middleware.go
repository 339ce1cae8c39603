package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/miniauth/backend/internal/model"
)

const sessionTokenKey = "session_token"

// AuthTokenMiddleware extracts the session token from the Authorization
// header. The header must split into exactly two fields, "<scheme> <token>";
// a missing or differently shaped header is rejected with 401 like any other
// bad credential. Validation of the token itself happens in the auth service.
func AuthTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		parts := strings.Fields(c.GetHeader("Authorization"))
		if len(parts) != 2 || parts[1] == "" {
			c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
			c.Abort()
			return
		}

		c.Set(sessionTokenKey, parts[1])
		c.Next()
	}
}

// SessionToken returns the raw token extracted by AuthTokenMiddleware, or an
// empty string when the middleware did not run.
func SessionToken(c *gin.Context) string {
	if value, ok := c.Get(sessionTokenKey); ok {
		if token, ok := value.(string); ok {
			return token
		}
	}
	return ""
}

func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
