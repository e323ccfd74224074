package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ua "github.com/mileusna/useragent"
)

func RequestTracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		parsedUA := ua.Parse(c.Request.UserAgent())
		c.Set("client_family", clientFamily(parsedUA))

		c.Next()
	}
}

func clientFamily(parsedUA ua.UserAgent) string {
	switch {
	case parsedUA.Bot:
		return "bot"
	case parsedUA.Mobile, parsedUA.Tablet:
		return "mobile"
	case parsedUA.Desktop:
		return "desktop"
	default:
		return "other"
	}
}
