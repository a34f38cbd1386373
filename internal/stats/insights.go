package stats

import (
	"fmt"
	"sort"

	"github.com/azavisha/trailstats/internal/workouts"
)

const maxInsights = 5

var priorityOrder = map[InsightPriority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// GenerateTrainingInsights derives up to 5 contextual messages from
// recent activity patterns, sorted high priority first. The sort is
// stable, so insights of equal priority keep their insertion order.
func (c *Calculator) GenerateTrainingInsights(ws []workouts.Workout) []TrainingInsight {
	if len(ws) == 0 {
		return []TrainingInsight{{
			Type:     InsightTip,
			Priority: PriorityHigh,
			Title:    "Get started",
			Message:  "Log your first workout to start tracking your progress.",
		}}
	}

	var insights []TrainingInsight

	currentStreak, _ := c.CalculateStreaks(ws)
	if currentStreak >= 7 {
		insights = append(insights, TrainingInsight{
			Type:     InsightAchievement,
			Priority: PriorityHigh,
			Title:    "Streak going strong",
			Message:  fmt.Sprintf("You're on a %d-day streak. Keep it up!", currentStreak),
		})
	}

	now := c.NowFunc()
	latest := ws[0].Date
	for _, w := range ws[1:] {
		if w.Date.After(latest) {
			latest = w.Date
		}
	}
	daysSinceLast := daysBetween(startOfDay(latest), startOfDay(now))
	if daysSinceLast >= 7 {
		insights = append(insights, TrainingInsight{
			Type:     InsightWarning,
			Priority: PriorityHigh,
			Title:    "Time to get moving",
			Message:  fmt.Sprintf("It's been %d days since your last workout. Even a short session helps.", daysSinceLast),
		})
	} else if daysSinceLast >= 3 {
		insights = append(insights, TrainingInsight{
			Type:     InsightTip,
			Priority: PriorityMedium,
			Title:    "Don't lose momentum",
			Message:  fmt.Sprintf("Your last workout was %d days ago. A quick session keeps the habit alive.", daysSinceLast),
		})
	}

	if monotonousType, ok := lastTenSameActivity(ws); ok {
		insights = append(insights, TrainingInsight{
			Type:     InsightSuggestion,
			Priority: PriorityMedium,
			Title:    "Mix it up",
			Message:  fmt.Sprintf("Your last 10 workouts were all %s. Cross-training helps prevent plateaus and overuse.", monotonousType),
		})
	}

	weekStart := startOfWeek(now)
	thisWeek := 0
	for _, w := range ws {
		if !w.Date.Before(weekStart) {
			thisWeek++
		}
	}
	if thisWeek >= 3 {
		insights = append(insights, TrainingInsight{
			Type:     InsightAchievement,
			Priority: PriorityMedium,
			Title:    "Great week",
			Message:  fmt.Sprintf("You've logged %d workouts this week already. Nice consistency!", thisWeek),
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return priorityOrder[insights[i].Priority] < priorityOrder[insights[j].Priority]
	})

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// lastTenSameActivity reports whether the 10 most recent workouts all
// share one activity type. Histories shorter than 10 never qualify.
func lastTenSameActivity(ws []workouts.Workout) (workouts.ActivityType, bool) {
	if len(ws) < 10 {
		return "", false
	}

	sorted := make([]workouts.Workout, len(ws))
	copy(sorted, ws)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	activityType := sorted[0].ActivityType
	for _, w := range sorted[1:10] {
		if w.ActivityType != activityType {
			return "", false
		}
	}
	return activityType, true
}
