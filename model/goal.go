package model

// DefaultDailyGoalMinutes is used whenever a user has no goal record yet.
const DefaultDailyGoalMinutes = 360

type DailyGoal struct {
	GoalID          int    `bson:"_id" json:"id"`
	UserID          int    `bson:"user_id" json:"userId"`
	TotalGoal       int    `bson:"total_goal" json:"totalGoal"`             // in minutes
	CategoryLimits  string `bson:"category_limits" json:"categoryLimits"`   // JSON string, category -> minute limit
	BreakReminders  int    `bson:"break_reminders" json:"breakReminders"`   // in minutes
	EnableReminders string `bson:"enable_reminders" json:"enableReminders"` // "true" / "false"
}
