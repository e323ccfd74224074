package usecase

import (
	"time"

	"main/model"
	"main/utils"
)

// dailyUsageLimitMinutes is the break_champion threshold: two hours.
const dailyUsageLimitMinutes = 120

type achievementDef struct {
	id          string
	title       string
	description string
	icon        string
	color       string
	maxProgress int
}

// The catalogue is fixed; order here is the catalogue order used by
// recentlyUnlocked.
var achievementCatalogue = []achievementDef{
	{
		id:          model.AchievementFirstLog,
		title:       "Getting Started",
		description: "Log your first screen time session",
		icon:        "clock",
		color:       "#8B5CF6",
		maxProgress: 1,
	},
	{
		id:          model.AchievementGoalKeeper,
		title:       "Goal Keeper",
		description: "Stay under your daily goal",
		icon:        "target",
		color:       "#10B981",
		maxProgress: 1,
	},
	{
		id:          model.AchievementCategoryExplorer,
		title:       "Category Explorer",
		description: "Use all 5 app categories",
		icon:        "award",
		color:       "#F59E0B",
		maxProgress: 5,
	},
	{
		id:          model.AchievementConsistentTracker,
		title:       "Consistent Tracker",
		description: "Log sessions for 7 days straight",
		icon:        "calendar",
		color:       "#3B82F6",
		maxProgress: 7,
	},
	{
		id:          model.AchievementMindfulUser,
		title:       "Mindful User",
		description: "Log 25 total sessions",
		icon:        "trophy",
		color:       "#EF4444",
		maxProgress: 25,
	},
	{
		id:          model.AchievementBreakChampion,
		title:       "Break Champion",
		description: "Keep daily usage under 2 hours",
		icon:        "clock",
		color:       "#06B6D4",
		maxProgress: 1,
	},
}

// CurrentStreak counts consecutive calendar days ending at now that each have
// at least one session. The walk stops at the first gap.
func CurrentStreak(sessions []*model.ScreenTimeSession, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	daysWithSessions := make(map[string]bool)
	for _, s := range sessions {
		daysWithSessions[s.CreatedAt.Format("2006-01-02")] = true
	}

	streak := 0
	for {
		day := now.AddDate(0, 0, -streak).Format("2006-01-02")
		if !daysWithSessions[day] {
			break
		}
		streak++
	}
	return streak
}

// EvaluateAchievements computes unlock state and progress for the full
// catalogue. Zero sessions is an ordinary input: every predicate evaluates
// to locked with zero progress, so there is no separate empty path.
func EvaluateAchievements(sessions []*model.ScreenTimeSession, goalMinutes int, now time.Time) []model.Achievement {
	totalToday := TotalTime(FilterByDay(sessions, now))
	totalSessions := len(sessions)

	categoriesUsed := make(map[string]bool)
	for _, s := range sessions {
		categoriesUsed[s.Category] = true
	}

	streak := CurrentStreak(sessions, now)

	achievements := make([]model.Achievement, 0, len(achievementCatalogue))
	for _, def := range achievementCatalogue {
		var unlocked bool
		var progress int

		switch def.id {
		case model.AchievementFirstLog:
			unlocked = totalSessions >= 1
			progress = min(totalSessions, 1)
		case model.AchievementGoalKeeper:
			unlocked = totalToday > 0 && totalToday <= goalMinutes
			progress = boolProgress(unlocked)
		case model.AchievementCategoryExplorer:
			unlocked = len(categoriesUsed) >= def.maxProgress
			progress = len(categoriesUsed)
		case model.AchievementConsistentTracker:
			unlocked = streak >= def.maxProgress
			progress = streak
		case model.AchievementMindfulUser:
			unlocked = totalSessions >= def.maxProgress
			progress = totalSessions
		case model.AchievementBreakChampion:
			unlocked = totalToday > 0 && totalToday <= dailyUsageLimitMinutes
			progress = boolProgress(unlocked)
		}

		achievements = append(achievements, model.Achievement{
			AchievementID: def.id,
			Title:         def.title,
			Description:   def.description,
			Icon:          def.icon,
			Color:         def.color,
			Unlocked:      unlocked,
			Progress:      progress,
			MaxProgress:   def.maxProgress,
		})
	}

	utils.TrackAchievementEvaluation()
	return achievements
}

// SummarizeAchievements derives the counters and the last 3 unlocked
// achievements in catalogue order.
func SummarizeAchievements(achievements []model.Achievement) model.AchievementSummary {
	unlocked := make([]model.Achievement, 0)
	for _, a := range achievements {
		if a.Unlocked {
			unlocked = append(unlocked, a)
		}
	}

	recent := unlocked
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}

	return model.AchievementSummary{
		Achievements:     achievements,
		UnlockedCount:    len(unlocked),
		TotalCount:       len(achievements),
		RecentlyUnlocked: recent,
	}
}

func boolProgress(ok bool) int {
	if ok {
		return 1
	}
	return 0
}
