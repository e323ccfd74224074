package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"main/model"
	"main/repository"
	"main/services"
)

// ScreenTimeService owns session and goal business rules. Derived statistics
// are computed from an immutable snapshot of the user's sessions; the
// optional Redis cache short-circuits repeated snapshot reads and is
// invalidated on every write.
type ScreenTimeService struct {
	sessions    repository.SessionsRepo
	goals       repository.GoalsRepo
	cache       *services.StatsCache
	defaultGoal int
	now         func() time.Time
}

type ScreenTimeServiceConfig struct {
	Sessions repository.SessionsRepo
	Goals    repository.GoalsRepo
	// Cache may be nil; the service then always reads the repository.
	Cache *services.StatsCache
	// DefaultGoal is the daily goal in minutes assumed for users without a
	// goal record.
	DefaultGoal int
}

func NewScreenTimeService(cfg ScreenTimeServiceConfig) *ScreenTimeService {
	defaultGoal := cfg.DefaultGoal
	if defaultGoal <= 0 {
		defaultGoal = model.DefaultDailyGoalMinutes
	}
	return &ScreenTimeService{
		sessions:    cfg.Sessions,
		goals:       cfg.Goals,
		cache:       cfg.Cache,
		defaultGoal: defaultGoal,
		now:         time.Now,
	}
}

// WithClock overrides the service clock. Tests only.
func (svc *ScreenTimeService) WithClock(now func() time.Time) *ScreenTimeService {
	svc.now = now
	return svc
}

// LogSession stores a new session for the user and returns it with its
// assigned id and timestamp.
func (svc *ScreenTimeService) LogSession(ctx context.Context, userID int, category string, duration int, notes string) (*model.ScreenTimeSession, error) {
	if userID <= 0 {
		return nil, errors.New("user ID is required")
	}
	if category == "" {
		return nil, errors.New("category is required")
	}

	session := &model.ScreenTimeSession{
		UserID:   userID,
		Category: category,
		Duration: duration,
		Notes:    notes,
	}
	if err := svc.sessions.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	svc.invalidateCache(ctx, userID)
	return session, nil
}

// GetSessions returns all of the user's sessions, reading through the cache
// when one is configured.
func (svc *ScreenTimeService) GetSessions(ctx context.Context, userID int) ([]*model.ScreenTimeSession, error) {
	if svc.cache != nil {
		cached, err := svc.cache.GetSessions(ctx, userID)
		if err != nil {
			log.Printf("stats cache read failed for user %d: %v", userID, err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	sessions, err := svc.sessions.GetUserSessions(ctx, userID)
	if err != nil {
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetSessions(ctx, userID, sessions); err != nil {
			log.Printf("stats cache write failed for user %d: %v", userID, err)
		}
	}
	return sessions, nil
}

// GetSessionsByDate returns the user's sessions for one calendar day.
func (svc *ScreenTimeService) GetSessionsByDate(ctx context.Context, userID int, date time.Time) ([]*model.ScreenTimeSession, error) {
	return svc.sessions.GetUserSessionsByDate(ctx, userID, date)
}

// DeleteSession removes a session by id. Unknown ids are a no-op.
func (svc *ScreenTimeService) DeleteSession(ctx context.Context, userID, sessionID int) error {
	if err := svc.sessions.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	svc.invalidateCache(ctx, userID)
	return nil
}

// GetGoal returns the user's goal record or repository.ErrGoalNotFound.
func (svc *ScreenTimeService) GetGoal(ctx context.Context, userID int) (*model.DailyGoal, error) {
	return svc.goals.GetUserGoal(ctx, userID)
}

// SaveGoal upserts the user's goal: all fields are overwritten, the record id
// stays stable across calls.
func (svc *ScreenTimeService) SaveGoal(ctx context.Context, goal *model.DailyGoal) (*model.DailyGoal, error) {
	if goal.UserID <= 0 {
		return nil, errors.New("user ID is required")
	}
	if err := svc.goals.UpsertGoal(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// DailyGoalMinutes resolves the user's daily budget, falling back to the
// default when no goal record exists.
func (svc *ScreenTimeService) DailyGoalMinutes(ctx context.Context, userID int) (int, error) {
	goal, err := svc.goals.GetUserGoal(ctx, userID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		return svc.defaultGoal, nil
	}
	if err != nil {
		return 0, err
	}
	if goal.TotalGoal <= 0 {
		return svc.defaultGoal, nil
	}
	return goal.TotalGoal, nil
}

// Summary computes the dashboard statistics for the user.
func (svc *ScreenTimeService) Summary(ctx context.Context, userID int) (*model.SummaryStats, error) {
	sessions, goalMinutes, err := svc.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := ComputeSummaryStats(sessions, goalMinutes, svc.now())
	return &summary, nil
}

// Weekly computes the last-7-days rollup for the user.
func (svc *ScreenTimeService) Weekly(ctx context.Context, userID int) (*model.WeeklyStats, error) {
	sessions, goalMinutes, err := svc.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	weekly := ComputeWeeklyStats(sessions, goalMinutes, svc.now())
	return &weekly, nil
}

// Achievements evaluates the catalogue against the user's current sessions.
func (svc *ScreenTimeService) Achievements(ctx context.Context, userID int) (*model.AchievementSummary, error) {
	sessions, goalMinutes, err := svc.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := SummarizeAchievements(EvaluateAchievements(sessions, goalMinutes, svc.now()))
	return &summary, nil
}

func (svc *ScreenTimeService) snapshot(ctx context.Context, userID int) ([]*model.ScreenTimeSession, int, error) {
	sessions, err := svc.GetSessions(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	goalMinutes, err := svc.DailyGoalMinutes(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return sessions, goalMinutes, nil
}

func (svc *ScreenTimeService) invalidateCache(ctx context.Context, userID int) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx, userID); err != nil {
		log.Printf("stats cache invalidation failed for user %d: %v", userID, err)
	}
}
