package repository

import (
	"context"
	"time"

	"main/model"
)

// SessionsRepo stores screen time sessions. Implementations assign sequential
// integer ids and stamp CreatedAt on insert; sessions are immutable once
// created except for deletion.
type SessionsRepo interface {
	// CreateSession assigns the next id, sets CreatedAt and stores the record.
	CreateSession(ctx context.Context, session *model.ScreenTimeSession) error

	// GetUserSessions returns all sessions for the user in insertion order.
	GetUserSessions(ctx context.Context, userID int) ([]*model.ScreenTimeSession, error)

	// GetUserSessionsByDate returns the user's sessions whose CreatedAt falls
	// within the calendar day of date, in insertion order.
	GetUserSessionsByDate(ctx context.Context, userID int, date time.Time) ([]*model.ScreenTimeSession, error)

	// DeleteSession removes the session if present. Deleting an unknown id
	// is a no-op, not an error.
	DeleteSession(ctx context.Context, sessionID int) error
}
