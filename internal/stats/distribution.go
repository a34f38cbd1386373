package stats

import (
	"sort"

	"github.com/azavisha/trailstats/internal/workouts"
)

// CalculateActivityDistribution groups the workouts by activity type.
// Sorted by count descending; ties keep first-encountered order.
func (c *Calculator) CalculateActivityDistribution(ws []workouts.Workout) []ActivityStats {
	distribution := make([]ActivityStats, 0)
	if len(ws) == 0 {
		return distribution
	}

	index := make(map[workouts.ActivityType]int)
	for _, w := range ws {
		i, ok := index[w.ActivityType]
		if !ok {
			i = len(distribution)
			index[w.ActivityType] = i
			distribution = append(distribution, ActivityStats{ActivityType: w.ActivityType})
		}
		distribution[i].Count++
		distribution[i].TotalDuration += w.DurationMinutes
		distribution[i].TotalDistance += w.Distance
	}

	total := float64(len(ws))
	for i := range distribution {
		distribution[i].Percentage = round1(float64(distribution[i].Count) / total * 100)
	}

	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Count > distribution[j].Count
	})

	return distribution
}

// difficultySeverity orders the distribution buckets; unrecognized
// values keep the zero key and sort first.
var difficultySeverity = map[workouts.Difficulty]int{
	workouts.DifficultyEasy:     1,
	workouts.DifficultyModerate: 2,
	workouts.DifficultyHard:     3,
	workouts.DifficultyExpert:   4,
}

// CalculateDifficultyDistribution groups by difficulty. Workouts
// without a difficulty are excluded entirely, from the counts and from
// the percentage denominator both.
func (c *Calculator) CalculateDifficultyDistribution(ws []workouts.Workout) []DifficultyStats {
	distribution := make([]DifficultyStats, 0)

	index := make(map[workouts.Difficulty]int)
	durationSums := make(map[workouts.Difficulty]float64)
	total := 0
	for _, w := range ws {
		if w.Difficulty == "" {
			continue
		}
		total++
		i, ok := index[w.Difficulty]
		if !ok {
			i = len(distribution)
			index[w.Difficulty] = i
			distribution = append(distribution, DifficultyStats{Difficulty: w.Difficulty})
		}
		distribution[i].Count++
		durationSums[w.Difficulty] += w.DurationMinutes
	}

	if total == 0 {
		return distribution
	}

	for i := range distribution {
		d := distribution[i].Difficulty
		distribution[i].Percentage = round1(float64(distribution[i].Count) / float64(total) * 100)
		distribution[i].AvgDuration = round2(durationSums[d] / float64(distribution[i].Count))
	}

	sort.SliceStable(distribution, func(i, j int) bool {
		return difficultySeverity[distribution[i].Difficulty] < difficultySeverity[distribution[j].Difficulty]
	})

	return distribution
}
