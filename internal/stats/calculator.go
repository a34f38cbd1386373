package stats

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/azavisha/trailstats/internal/telemetry/tracing"
	"github.com/azavisha/trailstats/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Calculator is the analytics aggregation engine. Every aggregate is
// recomputed from the current record snapshot on each call; nothing is
// cached between invocations.
type Calculator struct {
	ds dataSource

	// NowFunc exists to be replaced in tests
	NowFunc func() time.Time
}

func NewCalculator(ds dataSource) *Calculator {
	return &Calculator{
		ds:      ds,
		NowFunc: time.Now,
	}
}

// CalculateStats fetches the matching workouts and derives the full
// analytics payload. A fetch error is propagated as-is (wrapped); no
// partial results are returned.
func (c *Calculator) CalculateStats(ctx context.Context, req Request) (_ *AnalyticsData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calculator.stats.calculate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", req.UserID))
	span.SetAttributes(attribute.String("time_range", string(req.TimeRange)))

	now := c.NowFunc()
	params := workouts.WorkoutParams{
		UserID:       req.UserID,
		ActivityType: req.ActivityType,
	}

	var from *time.Time
	switch req.TimeRange {
	case TimeRangeWeek:
		f := now.AddDate(0, 0, -7)
		from = &f
	case TimeRangeMonth:
		f := now.AddDate(0, -1, 0)
		from = &f
	case TimeRangeYear:
		f := now.AddDate(-1, 0, 0)
		from = &f
	}
	to := now
	params.From = from
	params.To = &to

	// explicit bounds only narrow the range filter, never widen it
	if req.StartDate != nil && (params.From == nil || req.StartDate.After(*params.From)) {
		params.From = req.StartDate
	}
	if req.EndDate != nil && req.EndDate.Before(*params.To) {
		params.To = req.EndDate
	}

	fetched, err := c.ds.ListWorkouts(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("fetch workouts: %w", err)
	}

	ws := dropInvalidDates(fetched, now)

	return &AnalyticsData{
		Overview:               c.CalculateOverview(ws),
		ActivityDistribution:   c.CalculateActivityDistribution(ws),
		DifficultyDistribution: c.CalculateDifficultyDistribution(ws),
		TimeSeries:             c.CalculateTimeSeries(ws, req.TimeRange),
		PersonalRecords:        c.FindPersonalRecords(ws),
		GeneratedAt:            now,
	}, nil
}

// UserHistory fetches the user's full workout history, with invalid
// dates dropped. Achievements, insights, trends and training load are
// always evaluated over the unfiltered history.
func (c *Calculator) UserHistory(ctx context.Context, userID string) (_ []workouts.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calculator.stats.userhistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	ws, err := c.ds.ListWorkouts(ctx, workouts.WorkoutParams{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("fetch workouts: %w", err)
	}
	return dropInvalidDates(ws, c.NowFunc()), nil
}

// dropInvalidDates excludes records dated in the future or with no
// usable date at all, regardless of what the query layer returned.
func dropInvalidDates(ws []workouts.Workout, now time.Time) []workouts.Workout {
	kept := make([]workouts.Workout, 0, len(ws))
	dropped := 0
	for _, w := range ws {
		if w.Date.IsZero() || w.Date.After(now) {
			dropped++
			continue
		}
		kept = append(kept, w)
	}
	if dropped > 0 {
		log.Warnf("analytics: dropped %d workout(s) with invalid dates", dropped)
	}
	return kept
}

func (c *Calculator) CalculateOverview(ws []workouts.Workout) Overview {
	if len(ws) == 0 {
		return Overview{MostCommonActivity: "None"}
	}

	overview := Overview{
		TotalWorkouts: len(ws),
	}

	var durSum, distSum, elevSum float64
	var durN, distN, elevN int
	activityCounts := make(map[workouts.ActivityType]int)
	mostCommonCount := 0
	for _, w := range ws {
		overview.TotalDuration += w.DurationMinutes
		overview.TotalDistance += w.Distance
		overview.TotalElevation += w.ElevationGain

		// averages run over strictly positive values only
		if w.DurationMinutes > 0 {
			durSum += w.DurationMinutes
			durN++
		}
		if w.Distance > 0 {
			distSum += w.Distance
			distN++
		}
		if w.ElevationGain > 0 {
			elevSum += w.ElevationGain
			elevN++
		}

		activityCounts[w.ActivityType]++
		if activityCounts[w.ActivityType] > mostCommonCount {
			mostCommonCount = activityCounts[w.ActivityType]
			overview.MostCommonActivity = string(w.ActivityType)
		}
	}

	if durN > 0 {
		overview.AvgDuration = round2(durSum / float64(durN))
	}
	if distN > 0 {
		overview.AvgDistance = round2(distSum / float64(distN))
	}
	if elevN > 0 {
		overview.AvgElevation = round2(elevSum / float64(elevN))
	}

	overview.CurrentStreak, overview.LongestStreak = c.CalculateStreaks(ws)

	now := c.NowFunc()
	weekStart := startOfWeek(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	for _, w := range ws {
		if !w.Date.Before(weekStart) {
			overview.WorkoutsThisWeek++
		}
		if !w.Date.Before(monthStart) {
			overview.WorkoutsThisMonth++
		}
		if !w.Date.Before(yearStart) {
			overview.WorkoutsThisYear++
		}
	}

	return overview
}

// CalculateStreaks reduces the workouts to their unique calendar dates
// and walks them most-recent-first. The current streak is nonzero only
// when anchored at today or yesterday; the longest streak scans the
// whole date list independently.
func (c *Calculator) CalculateStreaks(ws []workouts.Workout) (current, longest int) {
	if len(ws) == 0 {
		return 0, 0
	}

	days := uniqueDaysDescending(ws)

	today := startOfDay(c.NowFunc())
	yesterday := today.AddDate(0, 0, -1)
	if days[0].Equal(today) || days[0].Equal(yesterday) {
		current = 1
		for i := 1; i < len(days); i++ {
			if daysBetween(days[i], days[i-1]) != 1 {
				break
			}
			current++
		}
	}

	longest = 1
	run := 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i], days[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return current, longest
}

func uniqueDaysDescending(ws []workouts.Workout) []time.Time {
	daySet := make(map[time.Time]struct{})
	for _, w := range ws {
		daySet[startOfDay(w.Date)] = struct{}{}
	}
	days := make([]time.Time, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})
	return days
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday midnight of the week containing t.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, for a before b. Both
// are expected to be day-truncated; rounding absorbs DST shifts.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
