package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CorsMiddleware applies the permissive CORS policy both backends expose:
// wildcard origin, the standard method set and JSON/auth headers. OPTIONS
// preflight requests are answered with 204 and no body.
func CorsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
