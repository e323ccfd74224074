package repository

import (
	"context"
	"errors"

	"main/model"
)

// ErrGoalNotFound is returned when a user has no daily goal record.
var ErrGoalNotFound = errors.New("daily goal not found")

// GoalsRepo stores at most one daily goal record per user.
type GoalsRepo interface {
	// GetUserGoal returns the user's goal or ErrGoalNotFound.
	GetUserGoal(ctx context.Context, userID int) (*model.DailyGoal, error)

	// UpsertGoal overwrites the existing goal's fields keeping its id, or
	// creates a new record with the next id. EnableReminders defaults to
	// "true" when empty on create.
	UpsertGoal(ctx context.Context, goal *model.DailyGoal) error
}
