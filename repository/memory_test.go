package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/model"
)

func TestMemorySessionsRepo(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	repo := NewMemorySessionsRepo().WithClock(func() time.Time { return now })

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "create assigns sequential ids and timestamps",
			run: func(t *testing.T) {
				first := &model.ScreenTimeSession{UserID: 1, Category: model.CategoryWork, Duration: 90}
				if err := repo.CreateSession(ctx, first); err != nil {
					t.Fatalf("create failed: %v", err)
				}
				second := &model.ScreenTimeSession{UserID: 1, Category: model.CategoryGames, Duration: 30}
				if err := repo.CreateSession(ctx, second); err != nil {
					t.Fatalf("create failed: %v", err)
				}

				if first.SessionID != 1 || second.SessionID != 2 {
					t.Errorf("ids = %d, %d; want 1, 2", first.SessionID, second.SessionID)
				}
				if !first.CreatedAt.Equal(now) {
					t.Errorf("CreatedAt = %v, want %v", first.CreatedAt, now)
				}
			},
		},
		{
			name: "list scopes by user in insertion order",
			run: func(t *testing.T) {
				other := &model.ScreenTimeSession{UserID: 2, Category: model.CategoryOther, Duration: 10}
				if err := repo.CreateSession(ctx, other); err != nil {
					t.Fatalf("create failed: %v", err)
				}

				sessions, err := repo.GetUserSessions(ctx, 1)
				if err != nil {
					t.Fatalf("list failed: %v", err)
				}
				if len(sessions) != 2 {
					t.Fatalf("expected 2 sessions for user 1, got %d", len(sessions))
				}
				if sessions[0].SessionID != 1 || sessions[1].SessionID != 2 {
					t.Errorf("wrong order: %d, %d", sessions[0].SessionID, sessions[1].SessionID)
				}
			},
		},
		{
			name: "list by date uses the calendar day window",
			run: func(t *testing.T) {
				sessions, err := repo.GetUserSessionsByDate(ctx, 1, now)
				if err != nil {
					t.Fatalf("list by date failed: %v", err)
				}
				if len(sessions) != 2 {
					t.Errorf("expected 2 sessions today, got %d", len(sessions))
				}

				sessions, err = repo.GetUserSessionsByDate(ctx, 1, now.AddDate(0, 0, -1))
				if err != nil {
					t.Fatalf("list by date failed: %v", err)
				}
				if len(sessions) != 0 {
					t.Errorf("expected no sessions yesterday, got %d", len(sessions))
				}
			},
		},
		{
			name: "delete removes and unknown id is a no-op",
			run: func(t *testing.T) {
				if err := repo.DeleteSession(ctx, 1); err != nil {
					t.Fatalf("delete failed: %v", err)
				}
				if err := repo.DeleteSession(ctx, 9999); err != nil {
					t.Errorf("deleting unknown id should be a no-op, got %v", err)
				}

				sessions, err := repo.GetUserSessions(ctx, 1)
				if err != nil {
					t.Fatalf("list failed: %v", err)
				}
				if len(sessions) != 1 || sessions[0].SessionID != 2 {
					t.Errorf("unexpected sessions after delete: %+v", sessions)
				}
			},
		},
		{
			name: "ids are never reused after deletion",
			run: func(t *testing.T) {
				next := &model.ScreenTimeSession{UserID: 1, Category: model.CategoryWork, Duration: 20}
				if err := repo.CreateSession(ctx, next); err != nil {
					t.Fatalf("create failed: %v", err)
				}
				if next.SessionID != 4 {
					t.Errorf("id = %d, want 4", next.SessionID)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func TestMemoryGoalsRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryGoalsRepo()

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "missing goal returns ErrGoalNotFound",
			run: func(t *testing.T) {
				if _, err := repo.GetUserGoal(ctx, 1); !errors.Is(err, ErrGoalNotFound) {
					t.Errorf("expected ErrGoalNotFound, got %v", err)
				}
			},
		},
		{
			name: "create defaults enableReminders to true",
			run: func(t *testing.T) {
				goal := &model.DailyGoal{UserID: 1, TotalGoal: 300, CategoryLimits: "{}", BreakReminders: 30}
				if err := repo.UpsertGoal(ctx, goal); err != nil {
					t.Fatalf("upsert failed: %v", err)
				}
				if goal.GoalID != 1 {
					t.Errorf("id = %d, want 1", goal.GoalID)
				}
				if goal.EnableReminders != "true" {
					t.Errorf("EnableReminders = %q, want \"true\"", goal.EnableReminders)
				}
			},
		},
		{
			name: "upsert overwrites fields keeping the id stable",
			run: func(t *testing.T) {
				updated := &model.DailyGoal{
					UserID:          1,
					TotalGoal:       240,
					CategoryLimits:  `{"Work":480}`,
					BreakReminders:  60,
					EnableReminders: "false",
				}
				if err := repo.UpsertGoal(ctx, updated); err != nil {
					t.Fatalf("upsert failed: %v", err)
				}
				if updated.GoalID != 1 {
					t.Errorf("id changed across upsert: %d", updated.GoalID)
				}

				stored, err := repo.GetUserGoal(ctx, 1)
				if err != nil {
					t.Fatalf("get failed: %v", err)
				}
				if stored.TotalGoal != 240 || stored.EnableReminders != "false" {
					t.Errorf("fields not overwritten: %+v", stored)
				}
			},
		},
		{
			name: "second user gets the next id",
			run: func(t *testing.T) {
				goal := &model.DailyGoal{UserID: 2, TotalGoal: 180, CategoryLimits: "{}", BreakReminders: 15}
				if err := repo.UpsertGoal(ctx, goal); err != nil {
					t.Fatalf("upsert failed: %v", err)
				}
				if goal.GoalID != 2 {
					t.Errorf("id = %d, want 2", goal.GoalID)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}
