package stats

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/azavisha/trailstats/internal/telemetry/metrics"
	"github.com/azavisha/trailstats/internal/telemetry/tracing"
	"github.com/azavisha/trailstats/internal/workouts"
	"github.com/azavisha/trailstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	calculator *Calculator
	metrics    *metrics.Manager
}

func NewHandler(calculator *Calculator, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		calculator: calculator,
		metrics:    metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/stats", handler.HandleAnalytics).Methods("GET", "OPTIONS").Name("stats")
	r.HandleFunc("/stats/achievements", handler.HandleAchievements).Methods("GET", "OPTIONS").Name("stats-achievements")
	r.HandleFunc("/stats/insights", handler.HandleInsights).Methods("GET", "OPTIONS").Name("stats-insights")
	r.HandleFunc("/stats/goals", handler.HandleGoalProgress).Methods("GET", "OPTIONS").Name("stats-goal-progress")
	r.HandleFunc("/stats/trends", handler.HandleTrends).Methods("GET", "OPTIONS").Name("stats-trends")
	r.HandleFunc("/stats/correlations", handler.HandleCorrelations).Methods("GET", "OPTIONS").Name("stats-correlations")
	r.HandleFunc("/stats/load", handler.HandleTrainingLoad).Methods("GET", "OPTIONS").Name("stats-training-load")
}

func (handler *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.analytics")
	defer span.End()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	timeRange := TimeRange(r.URL.Query().Get("time_range"))
	if timeRange == "" {
		timeRange = TimeRangeAll
	}
	if !timeRange.IsValid() {
		http.Error(w, "invalid time range (week, month, year or all)", http.StatusBadRequest)
		return
	}

	activityType := activityTypeParam(r)
	if activityType != workouts.ActivityAll && !activityType.IsValid() {
		http.Error(w, "unknown activity type", http.StatusBadRequest)
		return
	}

	req := Request{
		UserID:       userID,
		TimeRange:    timeRange,
		ActivityType: activityType,
	}

	if startStr := r.URL.Query().Get("start_date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			http.Error(w, "invalid start_date format (expected YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		req.StartDate = &start
	}
	if endStr := r.URL.Query().Get("end_date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			http.Error(w, "invalid end_date format (expected YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		// inclusive end bound, so end of that day
		end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999999, end.Location())
		req.EndDate = &end
	}

	calcStart := time.Now()
	analytics, err := handler.calculator.CalculateStats(ctx, req)
	if err != nil {
		log.Errorf("failed to calculate stats for user [%s]: %s", userID, err)
		http.Error(w, "failed to calculate stats", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterStatsCalculations.Inc()
	handler.metrics.HistStatsCalcDuration.Observe(time.Since(calcStart).Seconds())

	handler.writeJSON(w, analytics)
}

func (handler *Handler) HandleAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.achievements")
	defer span.End()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	history, err := handler.calculator.UserHistory(ctx, userID)
	if err != nil {
		log.Errorf("failed to get workout history for user [%s]: %s", userID, err)
		http.Error(w, "failed to check achievements", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, map[string]any{
		"achievements": handler.calculator.CheckAchievements(history),
	})
}

func (handler *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.insights")
	defer span.End()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	history, err := handler.calculator.UserHistory(ctx, userID)
	if err != nil {
		log.Errorf("failed to get workout history for user [%s]: %s", userID, err)
		http.Error(w, "failed to generate insights", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, map[string]any{
		"insights": handler.calculator.GenerateTrainingInsights(history),
	})
}

func (handler *Handler) HandleGoalProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.goalprogress")
	defer span.End()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	progress, err := handler.calculator.CalculateGoalProgress(ctx, userID)
	if err != nil {
		log.Errorf("failed to calculate goal progress for user [%s]: %s", userID, err)
		http.Error(w, "failed to calculate goal progress", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, map[string]any{
		"goalProgress": progress,
	})
}

func (handler *Handler) HandleTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.trends")
	defer span.End()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	metric := TrendMetric(r.URL.Query().Get("metric"))
	if metric == "" {
		metric = TrendMetricWorkouts
	}
	if !metric.IsValid() {
		http.Error(w, "invalid metric (workouts, duration, distance or elevation)", http.StatusBadRequest)
		return
	}

	history, err := handler.calculator.UserHistory(ctx, userID)
	if err != nil {
		log.Errorf("failed to get workout history for user [%s]: %s", userID, err)
		http.Error(w, "failed to calculate trends", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, handler.calculator.CalculatePerformanceTrends(history, metric))
}

func (handler *Handler) HandleCorrelations(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.correlations")
	defer span.End()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	correlations, err := handler.calculator.CalculateCorrelations(ctx, userID)
	if err != nil {
		log.Errorf("failed to calculate correlations for user [%s]: %s", userID, err)
		http.Error(w, "failed to calculate correlations", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, correlations)
}

func (handler *Handler) HandleTrainingLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.trainingload")
	defer span.End()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	days := defaultLoadWindowDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid days parameter (must be positive integer)", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	history, err := handler.calculator.UserHistory(ctx, userID)
	if err != nil {
		log.Errorf("failed to get workout history for user [%s]: %s", userID, err)
		http.Error(w, "failed to calculate training load", http.StatusInternalServerError)
		return
	}

	load := handler.calculator.CalculateTrainingLoad(history, days)
	handler.writeJSON(w, map[string]any{
		"trainingLoad": load,
		"recovery":     handler.calculator.CalculateRecoveryScore(load),
	})
}

func (handler *Handler) writeJSON(w http.ResponseWriter, payload any) {
	responseJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal stats response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, responseJson, http.StatusOK)
}

func activityTypeParam(r *http.Request) workouts.ActivityType {
	if v := r.URL.Query().Get("activity_type"); v != "" {
		return workouts.ActivityType(v)
	}
	return workouts.ActivityAll
}
