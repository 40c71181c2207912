package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradesift-io/tradesift/internal/shared/constants"
)

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers",
			constants.HeaderContentType+", "+constants.HeaderAuthorization+", "+constants.HeaderXRequestID)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
