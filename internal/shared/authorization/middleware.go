package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/tradesift-io/tradesift/internal/shared/constants"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString(constants.ContextKeyUserType)
		if userType != string(UserTypeAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString(constants.ContextKeyUserType)
		if userType != string(UserTypeCustomer) {
			c.JSON(403, gin.H{
				"error": "customer access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
