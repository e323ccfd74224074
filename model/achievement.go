package model

const (
	AchievementFirstLog          = "first_log"
	AchievementGoalKeeper        = "goal_keeper"
	AchievementCategoryExplorer  = "category_explorer"
	AchievementConsistentTracker = "consistent_tracker"
	AchievementMindfulUser       = "mindful_user"
	AchievementBreakChampion     = "break_champion"
)

// Achievement is derived state, recomputed from the session list on every
// read. It is never persisted.
type Achievement struct {
	AchievementID string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	Color         string `json:"color"`
	Unlocked      bool   `json:"unlocked"`
	Progress      int    `json:"progress"`
	MaxProgress   int    `json:"maxProgress"`
}

// AchievementSummary wraps the full catalogue with its derived counters.
type AchievementSummary struct {
	Achievements     []Achievement `json:"achievements"`
	UnlockedCount    int           `json:"unlockedCount"`
	TotalCount       int           `json:"totalCount"`
	RecentlyUnlocked []Achievement `json:"recentlyUnlocked"`
}
