package middleware

import (
	"net/http"

	"bookie/utils"

	"github.com/gin-gonic/gin"
)

// UserIdentityMiddleware reads the requesting user's id from the X-User-ID
// header and stores it under "userID". Authentication happens upstream.
func UserIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(utils.UserIDHeader)
		if !utils.ValidID(userID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Message: "Requesting user is not authenticated",
				Details: "missing or malformed " + utils.UserIDHeader + " header",
			})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}
