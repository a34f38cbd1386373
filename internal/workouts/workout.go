package workouts

import "time"

type ActivityType string

const (
	ActivityRunning      ActivityType = "running"
	ActivityClimbing     ActivityType = "climbing"
	ActivityHiking       ActivityType = "hiking"
	ActivitySnowboarding ActivityType = "snowboarding"
	ActivityCycling      ActivityType = "cycling"
	ActivitySwimming     ActivityType = "swimming"
	ActivityYoga         ActivityType = "yoga"
	ActivityStrength     ActivityType = "strength"

	// ActivityAll is the sentinel filter value matching any activity type.
	ActivityAll ActivityType = "all"
)

// AllActivityTypes returns the fixed activity type enumeration, in
// display order. Time series breakdowns carry one entry per member.
func AllActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityRunning,
		ActivityClimbing,
		ActivityHiking,
		ActivitySnowboarding,
		ActivityCycling,
		ActivitySwimming,
		ActivityYoga,
		ActivityStrength,
	}
}

func (at ActivityType) IsValid() bool {
	for _, known := range AllActivityTypes() {
		if at == known {
			return true
		}
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
	DifficultyExpert   Difficulty = "Expert"
)

type Workout struct {
	ID           int          `json:"id"`
	UserID       string       `json:"userId"`
	ActivityType ActivityType `json:"activityType"`
	// Date is the activity date, distinct from CreatedAt
	Date            time.Time  `json:"date"`
	DurationMinutes float64    `json:"durationMinutes,omitempty"`
	Distance        float64    `json:"distance,omitempty"`
	ElevationGain   float64    `json:"elevationGain,omitempty"`
	Difficulty      Difficulty `json:"difficulty,omitempty"`
	Title           string     `json:"title,omitempty"`
	Description     string     `json:"description,omitempty"`
	Location        string     `json:"location,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
