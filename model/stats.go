package model

import "time"

// CategoryTotal aggregates duration and session count for one category.
type CategoryTotal struct {
	Category     string `json:"category"`
	TotalTime    int    `json:"totalTime"` // in minutes
	SessionCount int    `json:"sessionCount"`
}

// DayStats holds one calendar day of the weekly rollup.
type DayStats struct {
	Date         time.Time `json:"date"`
	DayName      string    `json:"dayName"` // "Mon", "Tue", ...
	Total        int       `json:"total"`   // in minutes
	SessionCount int       `json:"sessionCount"`
}

// WeeklyStats is the rollup over the 7 calendar days ending today,
// oldest day first.
type WeeklyStats struct {
	Days          []DayStats `json:"days"`
	WeeklyTotal   int        `json:"weeklyTotal"`
	WeeklyAverage int        `json:"weeklyAverage"`
	ActiveDays    int        `json:"activeDays"`
	GoalDays      int        `json:"goalDays"`
	MaxDayTotal   int        `json:"maxDayTotal"` // floored at 1 for bar rendering
}

// SummaryStats is the dashboard view over all of a user's sessions.
type SummaryStats struct {
	TodayTotal       int             `json:"todayTotal"`
	TodayFormatted   string          `json:"todayFormatted"`
	OverallTotal     int             `json:"overallTotal"`
	OverallFormatted string          `json:"overallFormatted"`
	SessionCount     int             `json:"sessionCount"`
	DailyGoalMinutes int             `json:"dailyGoalMinutes"`
	CategoryTotals   []CategoryTotal `json:"categoryTotals"`
}
