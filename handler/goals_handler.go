package handler

import (
	"errors"

	"main/dto"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type GoalsHandler struct {
	service *usecase.ScreenTimeService
}

func NewGoalsHandler(service *usecase.ScreenTimeService) *GoalsHandler {
	return &GoalsHandler{service: service}
}

func (h *GoalsHandler) GetGoal(c *gin.Context) {
	userID := c.GetInt("user_id")

	goal, err := h.service.GetGoal(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		// No goal yet is a normal state, not an error.
		utils.Success(c, nil)
		return
	}
	if err != nil {
		utils.InternalError(c, "Failed to fetch daily goal")
		return
	}

	utils.Success(c, dto.ToGoalResponse(goal))
}

func (h *GoalsHandler) SaveGoal(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req struct {
		TotalGoal       int    `json:"totalGoal" binding:"required"`
		CategoryLimits  string `json:"categoryLimits" binding:"required"`
		BreakReminders  int    `json:"breakReminders"`
		EnableReminders string `json:"enableReminders"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, "Invalid goal data", err)
		return
	}

	goal, err := h.service.SaveGoal(c.Request.Context(), &model.DailyGoal{
		UserID:          userID,
		TotalGoal:       req.TotalGoal,
		CategoryLimits:  req.CategoryLimits,
		BreakReminders:  req.BreakReminders,
		EnableReminders: req.EnableReminders,
	})
	if err != nil {
		utils.InternalError(c, "Failed to create or update daily goal")
		return
	}

	utils.Success(c, dto.ToGoalResponse(goal))
}
