package goals

import "time"

// Goal is a user training goal, e.g. "run 100 km in Q3". TargetDate is
// optional; goals without one are open-ended and get no pace analysis.
type Goal struct {
	ID           int        `json:"id"`
	UserID       string     `json:"userId"`
	Title        string     `json:"title"`
	TargetValue  float64    `json:"targetValue"`
	CurrentValue float64    `json:"currentValue"`
	Unit         string     `json:"unit,omitempty"`
	TargetDate   *time.Time `json:"targetDate,omitempty"`
	IsCompleted  bool       `json:"isCompleted"`
	CreatedAt    time.Time  `json:"createdAt"`
}
