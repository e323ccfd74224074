package repository

import (
	"context"
	"sync"

	"main/model"
)

// MemoryGoalsRepo keeps daily goals in a process-local map keyed by goal id,
// with at most one record per user.
type MemoryGoalsRepo struct {
	mu     sync.RWMutex
	goals  map[int]*model.DailyGoal
	nextID int
}

func NewMemoryGoalsRepo() *MemoryGoalsRepo {
	return &MemoryGoalsRepo{
		goals:  make(map[int]*model.DailyGoal),
		nextID: 1,
	}
}

func (r *MemoryGoalsRepo) GetUserGoal(ctx context.Context, userID int) (*model.DailyGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.goals {
		if g.UserID == userID {
			copied := *g
			return &copied, nil
		}
	}
	return nil, ErrGoalNotFound
}

func (r *MemoryGoalsRepo) UpsertGoal(ctx context.Context, goal *model.DailyGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.goals {
		if existing.UserID == goal.UserID {
			// Overwrite every field but keep the record's id stable.
			goal.GoalID = id
			if goal.EnableReminders == "" {
				goal.EnableReminders = existing.EnableReminders
			}
			stored := *goal
			r.goals[id] = &stored
			return nil
		}
	}

	goal.GoalID = r.nextID
	r.nextID++
	if goal.EnableReminders == "" {
		goal.EnableReminders = "true"
	}
	stored := *goal
	r.goals[stored.GoalID] = &stored
	return nil
}
