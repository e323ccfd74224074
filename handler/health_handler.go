package handler

import (
	"context"
	"net/http"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	// CheckMongo is set when the mongo backend is active.
	CheckMongo bool
}

func NewHealthHandler(checkMongo bool) *HealthHandler {
	return &HealthHandler{CheckMongo: checkMongo}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	status := gin.H{
		"status":  "ok",
		"storage": "memory",
	}

	if h.CheckMongo {
		status["storage"] = "mongo"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := utils.PingMongo(ctx); err != nil {
			status["status"] = "degraded"
			status["storage_error"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
	}

	c.JSON(http.StatusOK, status)
}
