package stats

import (
	"sort"
	"time"

	"github.com/azavisha/trailstats/internal/workouts"
)

// FindPersonalRecords scans for the best single-workout values and the
// busiest week/month. Comparisons are strict, so the earliest workout
// in input order keeps a tied record. Zero/missing values never
// qualify.
func (c *Calculator) FindPersonalRecords(ws []workouts.Workout) PersonalRecords {
	var records PersonalRecords

	for _, w := range ws {
		if w.Distance > 0 && (records.LongestDistance == nil || w.Distance > records.LongestDistance.Value) {
			records.LongestDistance = &RecordEntry{Value: w.Distance, Workout: w}
		}
		if w.DurationMinutes > 0 && (records.LongestDuration == nil || w.DurationMinutes > records.LongestDuration.Value) {
			records.LongestDuration = &RecordEntry{Value: w.DurationMinutes, Workout: w}
		}
		if w.ElevationGain > 0 && (records.MostElevation == nil || w.ElevationGain > records.MostElevation.Value) {
			records.MostElevation = &RecordEntry{Value: w.ElevationGain, Workout: w}
		}
	}

	records.MostWorkoutsInWeek = busiestBucket(ws, startOfWeek)
	records.MostWorkoutsInMonth = busiestBucket(ws, startOfMonth)

	return records
}

func busiestBucket(ws []workouts.Workout, keyFunc func(time.Time) time.Time) *CountRecord {
	counts := make(map[time.Time]int)
	for _, w := range ws {
		counts[keyFunc(w.Date)]++
	}
	if len(counts) == 0 {
		return nil
	}

	// deterministic pick on ties: earliest bucket wins
	keys := make([]time.Time, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Before(keys[j])
	})

	best := &CountRecord{PeriodStart: keys[0], Count: counts[keys[0]]}
	for _, key := range keys[1:] {
		if counts[key] > best.Count {
			best = &CountRecord{PeriodStart: key, Count: counts[key]}
		}
	}
	return best
}
