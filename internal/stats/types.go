package stats

import (
	"time"

	"github.com/azavisha/trailstats/internal/workouts"
)

type TimeRange string

const (
	TimeRangeWeek  TimeRange = "week"
	TimeRangeMonth TimeRange = "month"
	TimeRangeYear  TimeRange = "year"
	TimeRangeAll   TimeRange = "all"
)

func (tr TimeRange) IsValid() bool {
	switch tr {
	case TimeRangeWeek, TimeRangeMonth, TimeRangeYear, TimeRangeAll:
		return true
	}
	return false
}

// Request describes one analytics calculation: whose workouts, over
// which time range, optionally narrowed to one activity type and/or
// explicit inclusive date bounds layered on top of the range.
type Request struct {
	UserID       string                `json:"userId"`
	TimeRange    TimeRange             `json:"timeRange"`
	ActivityType workouts.ActivityType `json:"activityType"`
	StartDate    *time.Time            `json:"startDate,omitempty"`
	EndDate      *time.Time            `json:"endDate,omitempty"`
}

// AnalyticsData is the full analytics payload, recomputed from scratch
// on every call.
type AnalyticsData struct {
	Overview               Overview          `json:"overview"`
	ActivityDistribution   []ActivityStats   `json:"activityDistribution"`
	DifficultyDistribution []DifficultyStats `json:"difficultyDistribution"`
	TimeSeries             []TimeSeriesPoint `json:"timeSeries"`
	PersonalRecords        PersonalRecords   `json:"personalRecords"`
	GeneratedAt            time.Time         `json:"generatedAt"`
}

type Overview struct {
	TotalWorkouts      int     `json:"totalWorkouts"`
	TotalDuration      float64 `json:"totalDuration"`
	TotalDistance      float64 `json:"totalDistance"`
	TotalElevation     float64 `json:"totalElevation"`
	AvgDuration        float64 `json:"avgDuration"`
	AvgDistance        float64 `json:"avgDistance"`
	AvgElevation       float64 `json:"avgElevation"`
	MostCommonActivity string  `json:"mostCommonActivity"`
	CurrentStreak      int     `json:"currentStreak"`
	LongestStreak      int     `json:"longestStreak"`
	WorkoutsThisWeek   int     `json:"workoutsThisWeek"`
	WorkoutsThisMonth  int     `json:"workoutsThisMonth"`
	WorkoutsThisYear   int     `json:"workoutsThisYear"`
}

type ActivityStats struct {
	ActivityType  workouts.ActivityType `json:"activityType"`
	Count         int                   `json:"count"`
	Percentage    float64               `json:"percentage"`
	TotalDuration float64               `json:"totalDuration"`
	TotalDistance float64               `json:"totalDistance"`
}

type DifficultyStats struct {
	Difficulty  workouts.Difficulty `json:"difficulty"`
	Count       int                 `json:"count"`
	Percentage  float64             `json:"percentage"`
	AvgDuration float64             `json:"avgDuration"`
}

// TimeSeriesPoint is one date bucket: a day for week/month ranges, a
// week for year ranges, a month for "all". ActivityBreakdown always
// carries all 8 known activity types, zero when absent in the bucket.
type TimeSeriesPoint struct {
	Date              time.Time                     `json:"date"`
	Count             int                           `json:"count"`
	Duration          float64                       `json:"duration"`
	Distance          float64                       `json:"distance"`
	Elevation         float64                       `json:"elevation"`
	ActivityBreakdown map[workouts.ActivityType]int `json:"activityBreakdown"`
}

// RecordEntry is a single-workout best, referencing the workout it
// came from.
type RecordEntry struct {
	Value   float64          `json:"value"`
	Workout workouts.Workout `json:"workout"`
}

// CountRecord is a best week/month workout count.
type CountRecord struct {
	Count       int       `json:"count"`
	PeriodStart time.Time `json:"periodStart"`
}

type PersonalRecords struct {
	LongestDistance     *RecordEntry `json:"longestDistance,omitempty"`
	LongestDuration     *RecordEntry `json:"longestDuration,omitempty"`
	MostElevation       *RecordEntry `json:"mostElevation,omitempty"`
	MostWorkoutsInWeek  *CountRecord `json:"mostWorkoutsInWeek,omitempty"`
	MostWorkoutsInMonth *CountRecord `json:"mostWorkoutsInMonth,omitempty"`
}

type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	Progress    float64    `json:"progress"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

type InsightType string

const (
	InsightAchievement InsightType = "achievement"
	InsightWarning     InsightType = "warning"
	InsightSuggestion  InsightType = "suggestion"
	InsightTip         InsightType = "tip"
)

type InsightPriority string

const (
	PriorityHigh   InsightPriority = "high"
	PriorityMedium InsightPriority = "medium"
	PriorityLow    InsightPriority = "low"
)

type TrainingInsight struct {
	Type     InsightType     `json:"type"`
	Priority InsightPriority `json:"priority"`
	Title    string          `json:"title"`
	Message  string          `json:"message"`
}

// GoalProgress pairs a goal with its pace analysis. The pace fields
// are set only for goals with a target date.
type GoalProgress struct {
	GoalID              int        `json:"goalId"`
	Title               string     `json:"title"`
	CurrentValue        float64    `json:"currentValue"`
	TargetValue         float64    `json:"targetValue"`
	Unit                string     `json:"unit,omitempty"`
	Progress            float64    `json:"progress"`
	RequiredPace        *float64   `json:"requiredPace,omitempty"`
	CurrentPace         *float64   `json:"currentPace,omitempty"`
	OnTrack             *bool      `json:"onTrack,omitempty"`
	PredictedCompletion *time.Time `json:"predictedCompletion,omitempty"`
}

type TrendMetric string

const (
	TrendMetricWorkouts  TrendMetric = "workouts"
	TrendMetricDuration  TrendMetric = "duration"
	TrendMetricDistance  TrendMetric = "distance"
	TrendMetricElevation TrendMetric = "elevation"
)

func (tm TrendMetric) IsValid() bool {
	switch tm {
	case TrendMetricWorkouts, TrendMetricDuration, TrendMetricDistance, TrendMetricElevation:
		return true
	}
	return false
}

type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

type TrendPoint struct {
	Date   time.Time `json:"date"`
	Value  float64   `json:"value"`
	Fitted float64   `json:"fitted"`
}

type TrendPrediction struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type TrendData struct {
	Metric      TrendMetric       `json:"metric"`
	Direction   TrendDirection    `json:"direction"`
	Slope       float64           `json:"slope"`
	RSquared    float64           `json:"rSquared"`
	Points      []TrendPoint      `json:"points"`
	Predictions []TrendPrediction `json:"predictions"`
}

type CorrelationStrength string

const (
	CorrelationStrong   CorrelationStrength = "strong"
	CorrelationModerate CorrelationStrength = "moderate"
	CorrelationWeak     CorrelationStrength = "weak"
	CorrelationNone     CorrelationStrength = "none"
)

type CorrelationData struct {
	Coefficient float64             `json:"coefficient"`
	Strength    CorrelationStrength `json:"strength"`
	Direction   string              `json:"direction"`
	SampleSize  int                 `json:"sampleSize"`
	Insight     string              `json:"insight"`
}

type LoadLevel string

const (
	LoadRest     LoadLevel = "rest"
	LoadEasy     LoadLevel = "easy"
	LoadModerate LoadLevel = "moderate"
	LoadHard     LoadLevel = "hard"
	LoadExpert   LoadLevel = "expert"
)

// TrainingLoadData is one calendar day of the trailing load window.
type TrainingLoadData struct {
	Date           time.Time `json:"date"`
	WorkoutCount   int       `json:"workoutCount"`
	IntensityScore float64   `json:"intensityScore"`
	Level          LoadLevel `json:"level"`
	RecoveryNeeded bool      `json:"recoveryNeeded"`
}

type RecoveryStatus string

const (
	RecoveryOvertrained RecoveryStatus = "overtrained"
	RecoveryFatigued    RecoveryStatus = "fatigued"
	RecoveryRecovering  RecoveryStatus = "recovering"
	RecoveryRecovered   RecoveryStatus = "recovered"
)

type RecoveryAction string

const (
	ActionRest     RecoveryAction = "rest"
	ActionLight    RecoveryAction = "light"
	ActionModerate RecoveryAction = "moderate"
	ActionNormal   RecoveryAction = "normal"
)

type RecoveryScore struct {
	Score          float64        `json:"score"`
	RecentLoad     float64        `json:"recentLoad"`
	DaysOfRest     int            `json:"daysOfRest"`
	Status         RecoveryStatus `json:"status"`
	Recommendation string         `json:"recommendation"`
	Action         RecoveryAction `json:"action"`
}
