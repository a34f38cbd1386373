package wellbeing

import "time"

// Entry is a single subjective wellbeing check-in, scored 1 (worst) to
// 10 (best). Correlation analysis pairs entries with workouts done on
// the same calendar day.
type Entry struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	Score     int       `json:"score"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	MinScore = 1
	MaxScore = 10
)

func (e Entry) ScoreValid() bool {
	return e.Score >= MinScore && e.Score <= MaxScore
}
