package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"main/model"
	"main/utils"
)

// MemorySessionsRepo keeps sessions in a process-local map. It is the default
// backend and the one tests run against; ids are sequential and never reused
// within the process lifetime.
type MemorySessionsRepo struct {
	mu       sync.RWMutex
	sessions map[int]*model.ScreenTimeSession
	nextID   int
	now      func() time.Time
}

func NewMemorySessionsRepo() *MemorySessionsRepo {
	return &MemorySessionsRepo{
		sessions: make(map[int]*model.ScreenTimeSession),
		nextID:   1,
		now:      time.Now,
	}
}

// WithClock overrides the clock used for CreatedAt stamps. Tests only.
func (r *MemorySessionsRepo) WithClock(now func() time.Time) *MemorySessionsRepo {
	r.now = now
	return r
}

func (r *MemorySessionsRepo) CreateSession(ctx context.Context, session *model.ScreenTimeSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.SessionID = r.nextID
	r.nextID++
	session.CreatedAt = r.now()

	stored := *session
	r.sessions[stored.SessionID] = &stored

	utils.TrackSessionOperation("create")
	return nil
}

func (r *MemorySessionsRepo) GetUserSessions(ctx context.Context, userID int) ([]*model.ScreenTimeSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*model.ScreenTimeSession, 0)
	for _, s := range r.sessions {
		if s.UserID == userID {
			copied := *s
			sessions = append(sessions, &copied)
		}
	}

	// Map iteration is unordered; sequential ids recover insertion order.
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].SessionID < sessions[j].SessionID
	})
	return sessions, nil
}

func (r *MemorySessionsRepo) GetUserSessionsByDate(ctx context.Context, userID int, date time.Time) ([]*model.ScreenTimeSession, error) {
	sessions, err := r.GetUserSessions(ctx, userID)
	if err != nil {
		return nil, err
	}

	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	matched := make([]*model.ScreenTimeSession, 0)
	for _, s := range sessions {
		if !s.CreatedAt.Before(startOfDay) && s.CreatedAt.Before(endOfDay) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func (r *MemorySessionsRepo) DeleteSession(ctx context.Context, sessionID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	utils.TrackSessionOperation("delete")
	return nil
}
