package dto

import "main/model"

type GoalResponse struct {
	ID              int    `json:"id"`
	UserID          int    `json:"userId"`
	TotalGoal       int    `json:"totalGoal"`
	CategoryLimits  string `json:"categoryLimits"`
	BreakReminders  int    `json:"breakReminders"`
	EnableReminders string `json:"enableReminders"`
}

func ToGoalResponse(goal *model.DailyGoal) *GoalResponse {
	return &GoalResponse{
		ID:              goal.GoalID,
		UserID:          goal.UserID,
		TotalGoal:       goal.TotalGoal,
		CategoryLimits:  goal.CategoryLimits,
		BreakReminders:  goal.BreakReminders,
		EnableReminders: goal.EnableReminders,
	}
}
