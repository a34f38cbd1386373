package stats

import (
	"sort"
	"time"

	"github.com/azavisha/trailstats/internal/workouts"
)

// CalculateTimeSeries buckets the workouts by date key: by day for
// week/month ranges, by week for year ranges, by month for "all".
// Points come back sorted ascending by date key.
func (c *Calculator) CalculateTimeSeries(ws []workouts.Workout, timeRange TimeRange) []TimeSeriesPoint {
	bucketKey := func(t time.Time) time.Time {
		switch timeRange {
		case TimeRangeYear:
			return startOfWeek(t)
		case TimeRangeAll:
			return startOfMonth(t)
		default:
			return startOfDay(t)
		}
	}

	buckets := make(map[time.Time]*TimeSeriesPoint)
	for _, w := range ws {
		key := bucketKey(w.Date)
		point, ok := buckets[key]
		if !ok {
			point = &TimeSeriesPoint{
				Date:              key,
				ActivityBreakdown: newActivityBreakdown(),
			}
			buckets[key] = point
		}
		point.Count++
		point.Duration += w.DurationMinutes
		point.Distance += w.Distance
		point.Elevation += w.ElevationGain
		point.ActivityBreakdown[w.ActivityType]++
	}

	points := make([]TimeSeriesPoint, 0, len(buckets))
	for _, point := range buckets {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

// newActivityBreakdown seeds all known activity types with zero so
// every point carries the full enumeration.
func newActivityBreakdown() map[workouts.ActivityType]int {
	breakdown := make(map[workouts.ActivityType]int, 8)
	for _, at := range workouts.AllActivityTypes() {
		breakdown[at] = 0
	}
	return breakdown
}
