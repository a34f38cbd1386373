package test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/azavisha/trailstats/internal/stats"
	"github.com/azavisha/trailstats/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestStats() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	token := s.doLogin(ctx)

	// 3 workouts on 3 consecutive days, ending today
	seed := []workouts.Workout{
		{
			UserID:          "stats-user",
			ActivityType:    workouts.ActivityRunning,
			Date:            time.Now().Add(-time.Minute),
			DurationMinutes: 60,
			Distance:        10,
			Difficulty:      workouts.DifficultyModerate,
		},
		{
			UserID:          "stats-user",
			ActivityType:    workouts.ActivityRunning,
			Date:            time.Now().AddDate(0, 0, -1),
			DurationMinutes: 30,
			Distance:        5,
			Difficulty:      workouts.DifficultyEasy,
		},
		{
			UserID:          "stats-user",
			ActivityType:    workouts.ActivityHiking,
			Date:            time.Now().AddDate(0, 0, -2),
			DurationMinutes: 120,
			ElevationGain:   600,
			Difficulty:      workouts.DifficultyHard,
		},
	}
	for _, w := range seed {
		workoutJson, err := json.Marshal(w)
		require.NoError(t, err)

		resp, err := s.httpClient.Do(s.request(ctx, "POST", "/workouts", token, workoutJson))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NoError(t, resp.Body.Close())
	}

	getJSON := func(path string, target any) {
		resp, err := s.httpClient.Do(s.request(ctx, "GET", path, token, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		respBytes, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.NoError(t, json.Unmarshal(respBytes, target))
	}

	t.Run("analytics overview", func(t *testing.T) {
		var analytics stats.AnalyticsData
		getJSON("/stats?user_id=stats-user&time_range=all", &analytics)

		assert.Equal(t, 3, analytics.Overview.TotalWorkouts)
		assert.Equal(t, float64(210), analytics.Overview.TotalDuration)
		assert.Equal(t, "running", analytics.Overview.MostCommonActivity)
		assert.Equal(t, 3, analytics.Overview.CurrentStreak)
		assert.NotEmpty(t, analytics.ActivityDistribution)
		assert.NotEmpty(t, analytics.DifficultyDistribution)
		assert.NotEmpty(t, analytics.TimeSeries)
		require.NotNil(t, analytics.PersonalRecords.LongestDistance)
		assert.Equal(t, float64(10), analytics.PersonalRecords.LongestDistance.Value)
	})

	t.Run("analytics filtered by activity", func(t *testing.T) {
		var analytics stats.AnalyticsData
		getJSON("/stats?user_id=stats-user&time_range=all&activity_type=hiking", &analytics)
		assert.Equal(t, 1, analytics.Overview.TotalWorkouts)
		assert.Equal(t, "hiking", analytics.Overview.MostCommonActivity)
	})

	t.Run("achievements", func(t *testing.T) {
		var achievementsResp struct {
			Achievements []stats.Achievement `json:"achievements"`
		}
		getJSON("/stats/achievements?user_id=stats-user", &achievementsResp)
		require.Len(t, achievementsResp.Achievements, 7)

		var firstSteps *stats.Achievement
		for i := range achievementsResp.Achievements {
			if achievementsResp.Achievements[i].ID == "first-steps" {
				firstSteps = &achievementsResp.Achievements[i]
			}
		}
		require.NotNil(t, firstSteps)
		assert.True(t, firstSteps.Unlocked)
	})

	t.Run("insights", func(t *testing.T) {
		var insightsResp struct {
			Insights []stats.TrainingInsight `json:"insights"`
		}
		getJSON("/stats/insights?user_id=stats-user", &insightsResp)
		assert.NotEmpty(t, insightsResp.Insights)
		assert.LessOrEqual(t, len(insightsResp.Insights), 5)
	})

	t.Run("goal progress without goals", func(t *testing.T) {
		var progressResp struct {
			GoalProgress []stats.GoalProgress `json:"goalProgress"`
		}
		getJSON("/stats/goals?user_id=stats-user", &progressResp)
		assert.Empty(t, progressResp.GoalProgress)
	})

	t.Run("trends", func(t *testing.T) {
		var trend stats.TrendData
		getJSON("/stats/trends?user_id=stats-user&metric=duration", &trend)
		assert.Equal(t, stats.TrendMetricDuration, trend.Metric)
		assert.Len(t, trend.Points, 3)
		assert.Len(t, trend.Predictions, 4)
	})

	t.Run("correlations without wellbeing data", func(t *testing.T) {
		var correlations stats.CorrelationData
		getJSON("/stats/correlations?user_id=stats-user", &correlations)
		assert.Equal(t, stats.CorrelationNone, correlations.Strength)
		assert.Equal(t, "none", correlations.Direction)
		assert.NotEmpty(t, correlations.Insight)
	})

	t.Run("training load and recovery", func(t *testing.T) {
		var loadResp struct {
			TrainingLoad []stats.TrainingLoadData `json:"trainingLoad"`
			Recovery     stats.RecoveryScore      `json:"recovery"`
		}
		getJSON("/stats/load?user_id=stats-user&days=7", &loadResp)
		require.Len(t, loadResp.TrainingLoad, 7)

		lastDay := loadResp.TrainingLoad[6]
		assert.Equal(t, 1, lastDay.WorkoutCount)
		assert.True(t, lastDay.IntensityScore > 0)
		assert.NotEmpty(t, loadResp.Recovery.Status)
		assert.NotEmpty(t, loadResp.Recovery.Recommendation)
	})

	t.Run("invalid params", func(t *testing.T) {
		for path, wantCode := range map[string]int{
			"/stats":                                  http.StatusBadRequest, // user id missing
			"/stats?user_id=x&time_range=decade":      http.StatusBadRequest,
			"/stats?user_id=x&activity_type=parkour":  http.StatusBadRequest,
			"/stats/trends?user_id=x&metric=strength": http.StatusBadRequest,
			"/stats/load?user_id=x&days=-1":           http.StatusBadRequest,
		} {
			resp, err := s.httpClient.Do(s.request(ctx, "GET", path, token, nil))
			require.NoError(t, err)
			assert.Equal(t, wantCode, resp.StatusCode, path)
			require.NoError(t, resp.Body.Close())
		}
	})
}
