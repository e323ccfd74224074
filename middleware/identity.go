package middleware

import (
	"strconv"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// IdentityMiddleware resolves the acting user from the X-User-ID header,
// falling back to the demo user when the header is absent. There is no
// authentication; the id only partitions data.
func IdentityMiddleware(demoUserID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := demoUserID

		if raw := c.GetHeader("X-User-ID"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				utils.BadRequest(c, "Invalid X-User-ID header")
				c.Abort()
				return
			}
			userID = parsed
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
