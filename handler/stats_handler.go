package handler

import (
	"log"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service *usecase.ScreenTimeService
}

func NewStatsHandler(service *usecase.ScreenTimeService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) GetSummary(c *gin.Context) {
	userID := c.GetInt("user_id")

	summary, err := h.service.Summary(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error computing summary stats for user %d: %v", userID, err)
		utils.InternalError(c, "Failed to compute summary statistics")
		return
	}

	utils.Success(c, summary)
}

func (h *StatsHandler) GetWeekly(c *gin.Context) {
	userID := c.GetInt("user_id")

	weekly, err := h.service.Weekly(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error computing weekly stats for user %d: %v", userID, err)
		utils.InternalError(c, "Failed to compute weekly statistics")
		return
	}

	utils.Success(c, weekly)
}
