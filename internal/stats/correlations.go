package stats

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/azavisha/trailstats/internal/telemetry/tracing"
	"github.com/azavisha/trailstats/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

const minCorrelationSamples = 3

// CalculateCorrelations computes the Pearson correlation between
// per-day workout duration and same-day wellbeing score. With fewer
// than 3 workouts, 3 wellbeing entries, or 3 date-matched pairs, it
// returns a zero-correlation explanatory result instead.
func (c *Calculator) CalculateCorrelations(ctx context.Context, userID string) (_ *CorrelationData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calculator.stats.correlations")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	ws, err := c.ds.ListWorkouts(ctx, workouts.WorkoutParams{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("fetch workouts: %w", err)
	}
	entries, err := c.ds.ListWellbeing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch wellbeing entries: %w", err)
	}

	if len(ws) < minCorrelationSamples || len(entries) < minCorrelationSamples {
		return insufficientCorrelationData(0), nil
	}

	durationPerDay := make(map[time.Time]float64)
	for _, w := range ws {
		durationPerDay[startOfDay(w.Date)] += w.DurationMinutes
	}

	scoreSumPerDay := make(map[time.Time]float64)
	scoreCountPerDay := make(map[time.Time]int)
	for _, entry := range entries {
		day := startOfDay(entry.CreatedAt)
		scoreSumPerDay[day] += float64(entry.Score)
		scoreCountPerDay[day]++
	}

	var matchedDays []time.Time
	for day := range durationPerDay {
		if scoreCountPerDay[day] > 0 {
			matchedDays = append(matchedDays, day)
		}
	}
	if len(matchedDays) < minCorrelationSamples {
		return insufficientCorrelationData(len(matchedDays)), nil
	}
	sort.Slice(matchedDays, func(i, j int) bool {
		return matchedDays[i].Before(matchedDays[j])
	})

	durations := make([]float64, len(matchedDays))
	scores := make([]float64, len(matchedDays))
	for i, day := range matchedDays {
		durations[i] = durationPerDay[day]
		scores[i] = scoreSumPerDay[day] / float64(scoreCountPerDay[day])
	}

	r := round2(pearson(durations, scores))

	data := &CorrelationData{
		Coefficient: r,
		Strength:    correlationStrength(r),
		Direction:   correlationDirection(r),
		SampleSize:  len(matchedDays),
	}
	data.Insight = correlationInsight(data)
	return data, nil
}

func insufficientCorrelationData(sampleSize int) *CorrelationData {
	return &CorrelationData{
		Coefficient: 0,
		Strength:    CorrelationNone,
		Direction:   "none",
		SampleSize:  sampleSize,
		Insight: "Not enough matched data yet. Log wellbeing scores on at " +
			"least 3 workout days to see how training affects how you feel.",
	}
}

func correlationStrength(r float64) CorrelationStrength {
	switch abs := math.Abs(r); {
	case abs >= 0.7:
		return CorrelationStrong
	case abs >= 0.4:
		return CorrelationModerate
	case abs >= 0.2:
		return CorrelationWeak
	default:
		return CorrelationNone
	}
}

func correlationDirection(r float64) string {
	switch {
	case r > 0.2:
		return "positive"
	case r < -0.2:
		return "negative"
	default:
		return "none"
	}
}

func correlationInsight(data *CorrelationData) string {
	switch data.Direction {
	case "positive":
		return fmt.Sprintf(
			"There is a %s positive link between your workout duration and how you feel: longer training days tend to come with better wellbeing scores (r=%.2f over %d days).",
			data.Strength, data.Coefficient, data.SampleSize,
		)
	case "negative":
		return fmt.Sprintf(
			"There is a %s negative link between your workout duration and how you feel: longer training days tend to come with lower wellbeing scores (r=%.2f over %d days). Consider more recovery.",
			data.Strength, data.Coefficient, data.SampleSize,
		)
	default:
		return fmt.Sprintf(
			"No meaningful link between workout duration and wellbeing shows up in your data yet (r=%.2f over %d days).",
			data.Coefficient, data.SampleSize,
		)
	}
}

func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var covariance, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		covariance += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0
	}
	return covariance / math.Sqrt(varX*varY)
}
