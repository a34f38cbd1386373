package stats

import (
	"math"
	"time"

	"github.com/azavisha/trailstats/internal/workouts"
)

const (
	defaultLoadWindowDays = 30
	recoveryLoadEntries   = 7
)

var difficultyMultipliers = map[workouts.Difficulty]float64{
	workouts.DifficultyEasy:     0.7,
	workouts.DifficultyModerate: 1.0,
	workouts.DifficultyHard:     1.3,
	workouts.DifficultyExpert:   1.6,
}

// CalculateTrainingLoad scores each calendar day in the trailing
// window. Intensity starts at min(100, count*15 + duration/6), gets
// scaled by the average difficulty multiplier of the day's workouts
// when any carry a difficulty, and is re-clamped to 100.
func (c *Calculator) CalculateTrainingLoad(ws []workouts.Workout, days int) []TrainingLoadData {
	if days <= 0 {
		days = defaultLoadWindowDays
	}

	workoutsPerDay := make(map[time.Time][]workouts.Workout)
	for _, w := range ws {
		day := startOfDay(w.Date)
		workoutsPerDay[day] = append(workoutsPerDay[day], w)
	}

	today := startOfDay(c.NowFunc())
	load := make([]TrainingLoadData, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		dayWorkouts := workoutsPerDay[day]

		entry := TrainingLoadData{
			Date:         day,
			WorkoutCount: len(dayWorkouts),
			Level:        LoadRest,
		}
		if len(dayWorkouts) == 0 {
			load = append(load, entry)
			continue
		}

		var totalDuration float64
		var multiplierSum float64
		multiplierCount := 0
		for _, w := range dayWorkouts {
			totalDuration += w.DurationMinutes
			if multiplier, ok := difficultyMultipliers[w.Difficulty]; ok {
				multiplierSum += multiplier
				multiplierCount++
			}
		}

		intensity := math.Min(100, float64(len(dayWorkouts))*15+totalDuration/6)
		if multiplierCount > 0 {
			intensity = math.Min(100, intensity*multiplierSum/float64(multiplierCount))
		}

		entry.IntensityScore = round2(intensity)
		entry.Level = loadLevel(intensity)
		entry.RecoveryNeeded = intensity > 70

		load = append(load, entry)
	}

	return load
}

func loadLevel(intensity float64) LoadLevel {
	switch {
	case intensity < 25:
		return LoadEasy
	case intensity < 50:
		return LoadModerate
	case intensity < 75:
		return LoadHard
	default:
		return LoadExpert
	}
}

// CalculateRecoveryScore condenses a training load window into a
// single 0-100 readiness score: high recent load pushes it down, rest
// days push it back up.
func (c *Calculator) CalculateRecoveryScore(load []TrainingLoadData) RecoveryScore {
	var recentLoad float64
	recent := load
	if len(recent) > recoveryLoadEntries {
		recent = recent[len(recent)-recoveryLoadEntries:]
	}
	if len(recent) > 0 {
		for _, entry := range recent {
			recentLoad += entry.IntensityScore
		}
		recentLoad /= float64(len(recent))
	}

	daysOfRest := 0
	for i := len(load) - 1; i >= 0; i-- {
		if load[i].WorkoutCount > 0 {
			break
		}
		daysOfRest++
	}

	score := 100 - recentLoad*0.5 + float64(daysOfRest)*10
	score = math.Round(math.Max(0, math.Min(100, score)))

	result := RecoveryScore{
		Score:      score,
		RecentLoad: round2(recentLoad),
		DaysOfRest: daysOfRest,
	}

	switch {
	case score < 30:
		result.Status = RecoveryOvertrained
		result.Action = ActionRest
		result.Recommendation = "Your training load is very high. Take a full rest day and prioritize sleep."
	case score < 50:
		result.Status = RecoveryFatigued
		result.Action = ActionLight
		result.Recommendation = "Fatigue is building up. Keep today light - easy movement or stretching only."
	case score < 70:
		result.Status = RecoveryRecovering
		result.Action = ActionModerate
		result.Recommendation = "You're recovering well. A moderate session is fine, but avoid maximum efforts."
	default:
		result.Status = RecoveryRecovered
		result.Action = ActionNormal
		result.Recommendation = "You're well recovered. Train as planned."
	}

	return result
}
