package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/azavisha/trailstats/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const hoursPerWeek = 24 * 7

// CalculateGoalProgress fetches the user's open goals and derives a
// pace projection for each. Goals without a target date get a raw
// progress percentage only.
func (c *Calculator) CalculateGoalProgress(ctx context.Context, userID string) (_ []GoalProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calculator.stats.goalprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	openGoals, err := c.ds.ListOpenGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch open goals: %w", err)
	}

	now := c.NowFunc()
	progressReports := make([]GoalProgress, 0, len(openGoals))
	for _, goal := range openGoals {
		report := GoalProgress{
			GoalID:       goal.ID,
			Title:        goal.Title,
			CurrentValue: goal.CurrentValue,
			TargetValue:  goal.TargetValue,
			Unit:         goal.Unit,
		}
		if goal.TargetValue > 0 {
			report.Progress = round1(math.Min(100, goal.CurrentValue/goal.TargetValue*100))
		}

		if goal.TargetDate != nil {
			c.analyzeGoalPace(&report, goal.CreatedAt, *goal.TargetDate, now)
		}

		progressReports = append(progressReports, report)
	}

	return progressReports, nil
}

func (c *Calculator) analyzeGoalPace(report *GoalProgress, createdAt, targetDate, now time.Time) {
	remaining := math.Max(0, report.TargetValue-report.CurrentValue)
	weeksElapsed := now.Sub(createdAt).Hours() / hoursPerWeek
	weeksRemaining := targetDate.Sub(now).Hours() / hoursPerWeek
	totalWeeks := targetDate.Sub(createdAt).Hours() / hoursPerWeek

	// an overdue goal needs the whole remaining value "this week"
	requiredPace := remaining
	if weeksRemaining > 0 {
		requiredPace = remaining / weeksRemaining
	}

	var currentPace float64
	if weeksElapsed > 0 {
		currentPace = report.CurrentValue / weeksElapsed
	}

	var elapsedFraction float64
	if totalWeeks > 0 {
		elapsedFraction = weeksElapsed / totalWeeks
	}

	onTrack := currentPace >= requiredPace || report.Progress >= elapsedFraction*100

	requiredPaceRounded := round2(requiredPace)
	currentPaceRounded := round2(currentPace)
	report.RequiredPace = &requiredPaceRounded
	report.CurrentPace = &currentPaceRounded
	report.OnTrack = &onTrack

	if remaining == 0 {
		predicted := now
		report.PredictedCompletion = &predicted
	} else if currentPace > 0 {
		weeksToGo := remaining / currentPace
		predicted := now.Add(time.Duration(weeksToGo * hoursPerWeek * float64(time.Hour)))
		report.PredictedCompletion = &predicted
	}
}
