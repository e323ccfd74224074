package dto

import (
	"time"

	"main/model"
	"main/usecase"
)

type SessionResponse struct {
	ID                int       `json:"id"`
	UserID            int       `json:"userId"`
	Category          string    `json:"category"`
	Duration          int       `json:"duration"`
	DurationFormatted string    `json:"durationFormatted"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

func ToSessionResponse(session *model.ScreenTimeSession) *SessionResponse {
	return &SessionResponse{
		ID:                session.SessionID,
		UserID:            session.UserID,
		Category:          session.Category,
		Duration:          session.Duration,
		DurationFormatted: usecase.FormatTime(session.Duration),
		Notes:             session.Notes,
		CreatedAt:         session.CreatedAt,
	}
}

func ToSessionResponses(sessions []*model.ScreenTimeSession) []*SessionResponse {
	responses := make([]*SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		responses = append(responses, ToSessionResponse(s))
	}
	return responses
}
