package stats

import (
	"math"
	"sort"

	"github.com/azavisha/trailstats/internal/workouts"
)

// CalculatePerformanceTrends fits an ordinary least-squares regression
// over (days since first workout, metric value) pairs and projects the
// next 30 days at 7-day steps. Fewer than 2 data points yields a flat
// zero result.
func (c *Calculator) CalculatePerformanceTrends(ws []workouts.Workout, metric TrendMetric) TrendData {
	trend := TrendData{
		Metric:      metric,
		Direction:   TrendFlat,
		Points:      make([]TrendPoint, 0),
		Predictions: make([]TrendPrediction, 0),
	}

	sorted := make([]workouts.Workout, len(ws))
	copy(sorted, ws)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	type observation struct {
		workout workouts.Workout
		value   float64
	}
	var observations []observation
	for _, w := range sorted {
		value, ok := metricValue(w, metric)
		if !ok {
			continue
		}
		observations = append(observations, observation{workout: w, value: value})
	}

	if len(observations) < 2 {
		return trend
	}

	firstDate := startOfDay(observations[0].workout.Date)
	xs := make([]float64, len(observations))
	ys := make([]float64, len(observations))
	for i, obs := range observations {
		xs[i] = float64(daysBetween(firstDate, startOfDay(obs.workout.Date)))
		ys[i] = obs.value
	}

	slope, intercept := leastSquares(xs, ys)
	trend.Slope = round2(slope)
	trend.RSquared = round2(rSquared(xs, ys, slope, intercept))

	switch {
	case slope > 0.1:
		trend.Direction = TrendUp
	case slope < -0.1:
		trend.Direction = TrendDown
	}

	for i, obs := range observations {
		trend.Points = append(trend.Points, TrendPoint{
			Date:   obs.workout.Date,
			Value:  obs.value,
			Fitted: round2(intercept + slope*xs[i]),
		})
	}

	lastX := xs[len(xs)-1]
	lastDate := startOfDay(observations[len(observations)-1].workout.Date)
	for daysAhead := 7; daysAhead <= 28; daysAhead += 7 {
		predicted := intercept + slope*(lastX+float64(daysAhead))
		trend.Predictions = append(trend.Predictions, TrendPrediction{
			Date:  lastDate.AddDate(0, 0, daysAhead),
			Value: round2(math.Max(0, predicted)),
		})
	}

	return trend
}

// metricValue extracts the regression value for one workout. The
// workouts metric counts every record as 1; the measure metrics skip
// records without a positive value.
func metricValue(w workouts.Workout, metric TrendMetric) (float64, bool) {
	switch metric {
	case TrendMetricWorkouts:
		return 1, true
	case TrendMetricDuration:
		return w.DurationMinutes, w.DurationMinutes > 0
	case TrendMetricDistance:
		return w.Distance, w.Distance > 0
	case TrendMetricElevation:
		return w.ElevationGain, w.ElevationGain > 0
	}
	return 0, false
}

func leastSquares(xs, ys []float64) (slope, intercept float64) {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return 0, sumY / n
	}

	slope = (n*sumXY - sumX*sumY) / denominator
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

func rSquared(xs, ys []float64, slope, intercept float64) float64 {
	var meanY float64
	for _, y := range ys {
		meanY += y
	}
	meanY /= float64(len(ys))

	var ssTotal, ssResidual float64
	for i := range ys {
		fitted := intercept + slope*xs[i]
		ssTotal += (ys[i] - meanY) * (ys[i] - meanY)
		ssResidual += (ys[i] - fitted) * (ys[i] - fitted)
	}

	if ssTotal == 0 {
		return 0
	}
	return 1 - ssResidual/ssTotal
}
