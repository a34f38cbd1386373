package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/azavisha/trailstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutParams filter the workouts returned by ListAll. The zero value
// of a field skips that filter; ActivityAll is equivalent to no activity
// filter. From/To bounds are inclusive.
type WorkoutParams struct {
	UserID       string
	ActivityType ActivityType
	From         *time.Time
	To           *time.Time
}

type ListParams struct {
	WorkoutParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout
				(user_id, activity_type, date, duration_minutes, distance, elevation_gain,
				 difficulty, title, description, location, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id;`,
		workout.UserID, workout.ActivityType, workout.Date,
		workout.DurationMinutes, workout.Distance, workout.ElevationGain,
		workout.Difficulty, workout.Title, workout.Description,
		workout.Location, workout.Notes, workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", id))

	workout.ID = id
	return &workout, nil
}

func (r *Repo) Update(ctx context.Context, workout *Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", workout.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout SET
			activity_type = $1, date = $2, duration_minutes = $3, distance = $4,
			elevation_gain = $5, difficulty = $6, title = $7, description = $8,
			location = $9, notes = $10
		WHERE id = $11 AND user_id = $12;`,
		workout.ActivityType, workout.Date, workout.DurationMinutes, workout.Distance,
		workout.ElevationGain, workout.Difficulty, workout.Title, workout.Description,
		workout.Location, workout.Notes,
		workout.ID, workout.UserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, user_id, activity_type, date, duration_minutes, distance,
			elevation_gain, difficulty, title, description, location, notes, created_at
		FROM workout
		WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	if len(found) != 1 {
		return nil, ErrWorkoutNotFound
	}

	return &found[0], nil
}

// ListAll returns all workouts matching the given filter params,
// sorted by activity date descending.
func (r *Repo) ListAll(ctx context.Context, params WorkoutParams) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", params.UserID))
	span.SetAttributes(attribute.String("activity_type", string(params.ActivityType)))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	activityFilter := string(params.ActivityType)
	if params.ActivityType == ActivityAll {
		activityFilter = ""
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, user_id, activity_type, date, duration_minutes, distance,
			elevation_gain, difficulty, title, description, location, notes, created_at
		FROM workout
			WHERE ($1::text = '' OR user_id = $1)
			AND ($2::text = '' OR activity_type = $2)
			AND ($3::timestamp IS NULL OR date >= $3)
			AND ($4::timestamp IS NULL OR date <= $4)
		ORDER BY date DESC;`,
		params.UserID, activityFilter,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	found, err := r.rows2workouts(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2workouts: %w", err)
	}
	return found, nil
}

// List is like ListAll, but returns the specific PAGE, i.e. is used for pagination.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))
	span.SetAttributes(attribute.String("user_id", params.UserID))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	countAll, err := r.WorkoutsCount(ctx, params.WorkoutParams)
	if err != nil {
		return nil, -1, err
	}

	if countAll <= limit {
		limit = countAll
		offset = 0
	}

	if countAll-offset < limit {
		offset = countAll - limit
	}

	activityFilter := string(params.ActivityType)
	if params.ActivityType == ActivityAll {
		activityFilter = ""
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, user_id, activity_type, date, duration_minutes, distance,
			elevation_gain, difficulty, title, description, location, notes, created_at
		FROM workout
			WHERE ($1::text = '' OR user_id = $1)
			AND ($2::text = '' OR activity_type = $2)
			AND ($5::timestamp IS NULL OR date >= $5)
			AND ($6::timestamp IS NULL OR date <= $6)
		ORDER BY date DESC
		LIMIT $3
		OFFSET $4;`,
		params.UserID, activityFilter,
		limit, offset,
		params.From, params.To,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	found, err := r.rows2workouts(rows)
	if err != nil {
		return nil, -1, err
	}
	return found, countAll, nil
}

func (r *Repo) WorkoutsCount(ctx context.Context, params WorkoutParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	activityFilter := string(params.ActivityType)
	if params.ActivityType == ActivityAll {
		activityFilter = ""
	}

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM workout
			WHERE ($1::text = '' OR user_id = $1)
			AND ($2::text = '' OR activity_type = $2)
			AND ($3::timestamp IS NULL OR date >= $3)
			AND ($4::timestamp IS NULL OR date <= $4);
	`,
		params.UserID, activityFilter,
		params.From, params.To,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get workouts count")
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var found []Workout
	for rows.Next() {
		var w Workout
		var difficulty *string
		var title, description, location, notes *string
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.ActivityType, &w.Date,
			&w.DurationMinutes, &w.Distance, &w.ElevationGain,
			&difficulty, &title, &description, &location, &notes,
			&w.CreatedAt,
		); err != nil {
			return nil, err
		}

		if difficulty != nil {
			w.Difficulty = Difficulty(*difficulty)
		}
		if title != nil {
			w.Title = *title
		}
		if description != nil {
			w.Description = *description
		}
		if location != nil {
			w.Location = *location
		}
		if notes != nil {
			w.Notes = *notes
		}

		found = append(found, w)
	}

	if found == nil {
		found = make([]Workout, 0)
	}

	return found, nil
}
