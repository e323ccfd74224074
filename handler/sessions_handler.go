package handler

import (
	"strconv"
	"time"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type SessionsHandler struct {
	service *usecase.ScreenTimeService
}

func NewSessionsHandler(service *usecase.ScreenTimeService) *SessionsHandler {
	return &SessionsHandler{service: service}
}

func (h *SessionsHandler) GetSessions(c *gin.Context) {
	userID := c.GetInt("user_id")

	sessions, err := h.service.GetSessions(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch screen time sessions")
		return
	}

	utils.Success(c, dto.ToSessionResponses(sessions))
}

func (h *SessionsHandler) GetSessionsByDate(c *gin.Context) {
	userID := c.GetInt("user_id")

	date, err := time.ParseInLocation("2006-01-02", c.Param("date"), time.Local)
	if err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	sessions, err := h.service.GetSessionsByDate(c.Request.Context(), userID, date)
	if err != nil {
		utils.InternalError(c, "Failed to fetch screen time sessions for date")
		return
	}

	utils.Success(c, dto.ToSessionResponses(sessions))
}

func (h *SessionsHandler) CreateSession(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req struct {
		Category string `json:"category" binding:"required"`
		Duration int    `json:"duration" binding:"required"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, "Invalid session data", err)
		return
	}

	session, err := h.service.LogSession(c.Request.Context(), userID, req.Category, req.Duration, req.Notes)
	if err != nil {
		utils.InternalError(c, "Failed to create screen time session")
		return
	}

	utils.Created(c, dto.ToSessionResponse(session))
}

func (h *SessionsHandler) DeleteSession(c *gin.Context) {
	userID := c.GetInt("user_id")

	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid session ID")
		return
	}

	if err := h.service.DeleteSession(c.Request.Context(), userID, sessionID); err != nil {
		utils.InternalError(c, "Failed to delete screen time session")
		return
	}

	utils.Success(c, gin.H{"success": true})
}
