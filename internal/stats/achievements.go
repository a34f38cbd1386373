package stats

import (
	"math"
	"sort"
	"time"

	"github.com/azavisha/trailstats/internal/workouts"
)

const (
	centuryClubTarget    = 100
	mountainGoatElev     = 10000
	marathonDistance     = 26.2
	weekWarriorStreak    = 7
	ironWillStreak       = 30
	diverseAthleteTarget = 5
)

// CheckAchievements evaluates the fixed 7-item catalog against the
// full history. The unlock date is the date of the chronologically
// first workout after which the condition holds.
func (c *Calculator) CheckAchievements(ws []workouts.Workout) []Achievement {
	sorted := make([]workouts.Workout, len(ws))
	copy(sorted, ws)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	count := len(sorted)
	var totalElevation, maxDistance float64
	distinctTypes := make(map[workouts.ActivityType]struct{})

	var firstStepsAt, centuryAt, goatAt, marathonAt, diverseAt *time.Time
	for i, w := range sorted {
		if i == 0 {
			firstStepsAt = dateOf(w)
		}
		if i+1 == centuryClubTarget {
			centuryAt = dateOf(w)
		}

		totalElevation += w.ElevationGain
		if goatAt == nil && totalElevation >= mountainGoatElev {
			goatAt = dateOf(w)
		}

		if w.Distance > maxDistance {
			maxDistance = w.Distance
		}
		if marathonAt == nil && w.Distance >= marathonDistance {
			marathonAt = dateOf(w)
		}

		distinctTypes[w.ActivityType] = struct{}{}
		if diverseAt == nil && len(distinctTypes) >= diverseAthleteTarget {
			diverseAt = dateOf(w)
		}
	}

	longestStreak, weekWarriorAt, ironWillAt := streakMilestones(sorted)

	return []Achievement{
		achievement(
			"first-steps", "First Steps", "Log your first workout", "👟",
			count >= 1, math.Min(100, float64(count)*100), firstStepsAt,
		),
		achievement(
			"week-warrior", "Week Warrior", "Work out 7 days in a row", "🔥",
			longestStreak >= weekWarriorStreak,
			math.Min(100, float64(longestStreak)/weekWarriorStreak*100), weekWarriorAt,
		),
		achievement(
			"century-club", "Century Club", "Log 100 workouts", "💯",
			count >= centuryClubTarget, math.Min(100, float64(count)), centuryAt,
		),
		achievement(
			"mountain-goat", "Mountain Goat", "Climb 10,000 meters in total", "🏔️",
			totalElevation >= mountainGoatElev,
			math.Min(100, totalElevation/mountainGoatElev*100), goatAt,
		),
		achievement(
			"marathon-ready", "Marathon Ready", "Cover a marathon distance in one workout", "🏃",
			maxDistance >= marathonDistance,
			math.Min(100, maxDistance/marathonDistance*100), marathonAt,
		),
		achievement(
			"iron-will", "Iron Will", "Work out 30 days in a row", "💪",
			longestStreak >= ironWillStreak,
			math.Min(100, float64(longestStreak)/ironWillStreak*100), ironWillAt,
		),
		achievement(
			"diverse-athlete", "Diverse Athlete", "Try 5 different activity types", "🌈",
			len(distinctTypes) >= diverseAthleteTarget,
			math.Min(100, float64(len(distinctTypes))/diverseAthleteTarget*100), diverseAt,
		),
	}
}

func achievement(
	id, title, description, icon string,
	unlocked bool, progress float64, unlockedAt *time.Time,
) Achievement {
	a := Achievement{
		ID:          id,
		Title:       title,
		Description: description,
		Icon:        icon,
		Unlocked:    unlocked,
		Progress:    math.Round(progress),
	}
	if unlocked {
		a.UnlockedAt = unlockedAt
	}
	return a
}

func dateOf(w workouts.Workout) *time.Time {
	d := w.Date
	return &d
}

// streakMilestones walks the unique dates ascending and reports the
// longest streak plus the dates on which a 7-day and a 30-day run
// first completed.
func streakMilestones(sortedAscending []workouts.Workout) (longest int, sevenAt, thirtyAt *time.Time) {
	if len(sortedAscending) == 0 {
		return 0, nil, nil
	}

	var days []time.Time
	seen := make(map[time.Time]struct{})
	for _, w := range sortedAscending {
		day := startOfDay(w.Date)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	longest = 1
	run := 1
	checkMilestones := func(day time.Time) {
		if sevenAt == nil && run >= weekWarriorStreak {
			d := day
			sevenAt = &d
		}
		if thirtyAt == nil && run >= ironWillStreak {
			d := day
			thirtyAt = &d
		}
	}
	checkMilestones(days[0])
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		checkMilestones(days[i])
	}

	return longest, sevenAt, thirtyAt
}
