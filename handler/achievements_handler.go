package handler

import (
	"log"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AchievementsHandler struct {
	service *usecase.ScreenTimeService
}

func NewAchievementsHandler(service *usecase.ScreenTimeService) *AchievementsHandler {
	return &AchievementsHandler{service: service}
}

func (h *AchievementsHandler) GetAchievements(c *gin.Context) {
	userID := c.GetInt("user_id")

	summary, err := h.service.Achievements(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error evaluating achievements for user %d: %v", userID, err)
		utils.InternalError(c, "Failed to evaluate achievements")
		return
	}

	utils.Success(c, summary)
}
