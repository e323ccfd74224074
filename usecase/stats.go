package usecase

import (
	"fmt"
	"sort"
	"time"

	"main/model"
)

// TotalTime sums session durations in minutes. An empty list totals zero.
func TotalTime(sessions []*model.ScreenTimeSession) int {
	total := 0
	for _, s := range sessions {
		total += s.Duration
	}
	return total
}

// CategoryTotals groups sessions by category, summing duration and counting
// sessions. The result is ordered by descending total time; ties keep
// first-seen category order.
func CategoryTotals(sessions []*model.ScreenTimeSession) []model.CategoryTotal {
	index := make(map[string]int)
	totals := make([]model.CategoryTotal, 0)

	for _, s := range sessions {
		if i, ok := index[s.Category]; ok {
			totals[i].TotalTime += s.Duration
			totals[i].SessionCount++
			continue
		}
		index[s.Category] = len(totals)
		totals = append(totals, model.CategoryTotal{
			Category:     s.Category,
			TotalTime:    s.Duration,
			SessionCount: 1,
		})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].TotalTime > totals[j].TotalTime
	})
	return totals
}

// FormatTime renders minutes as "2h 15m", dropping a zero component.
// Zero minutes renders as "0m".
func FormatTime(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}

// FilterByDay returns the sessions whose CreatedAt falls on the same calendar
// day as date, in the session's own location-naive terms.
func FilterByDay(sessions []*model.ScreenTimeSession, date time.Time) []*model.ScreenTimeSession {
	matched := make([]*model.ScreenTimeSession, 0)
	for _, s := range sessions {
		if sameDay(s.CreatedAt, date) {
			matched = append(matched, s)
		}
	}
	return matched
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ComputeWeeklyStats rolls the last 7 calendar days ending at now into the
// weekly view, oldest day first.
func ComputeWeeklyStats(sessions []*model.ScreenTimeSession, goalMinutes int, now time.Time) model.WeeklyStats {
	days := make([]model.DayStats, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		daySessions := FilterByDay(sessions, date)
		days = append(days, model.DayStats{
			Date:         time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
			DayName:      date.Format("Mon"),
			Total:        TotalTime(daySessions),
			SessionCount: len(daySessions),
		})
	}

	stats := model.WeeklyStats{Days: days, MaxDayTotal: 1}
	for _, day := range days {
		stats.WeeklyTotal += day.Total
		if day.Total > 0 {
			stats.ActiveDays++
		}
		if day.Total > 0 && day.Total <= goalMinutes {
			stats.GoalDays++
		}
		if day.Total > stats.MaxDayTotal {
			stats.MaxDayTotal = day.Total
		}
	}
	stats.WeeklyAverage = int(float64(stats.WeeklyTotal)/7 + 0.5)

	return stats
}

// ComputeSummaryStats derives the dashboard view over all sessions.
func ComputeSummaryStats(sessions []*model.ScreenTimeSession, goalMinutes int, now time.Time) model.SummaryStats {
	todayTotal := TotalTime(FilterByDay(sessions, now))
	overallTotal := TotalTime(sessions)

	return model.SummaryStats{
		TodayTotal:       todayTotal,
		TodayFormatted:   FormatTime(todayTotal),
		OverallTotal:     overallTotal,
		OverallFormatted: FormatTime(overallTotal),
		SessionCount:     len(sessions),
		DailyGoalMinutes: goalMinutes,
		CategoryTotals:   CategoryTotals(sessions),
	}
}
