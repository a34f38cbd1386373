package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/azavisha/trailstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrGoalNotFound = errors.New("goal not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO goal
				(user_id, title, target_value, current_value, unit, target_date, is_completed, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		goal.UserID, goal.Title, goal.TargetValue, goal.CurrentValue,
		goal.Unit, goal.TargetDate, goal.IsCompleted, goal.CreatedAt,
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

	span.SetAttributes(attribute.Int("goal.id", id))

	goal.ID = id
	return &goal, nil
}

func (r *Repo) Update(ctx context.Context, goal *Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", goal.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE goal SET
			title = $1, target_value = $2, current_value = $3, unit = $4,
			target_date = $5, is_completed = $6
		WHERE id = $7 AND user_id = $8;`,
		goal.Title, goal.TargetValue, goal.CurrentValue, goal.Unit,
		goal.TargetDate, goal.IsCompleted,
		goal.ID, goal.UserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM goal WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, user_id, title, target_value, current_value, unit, target_date, is_completed, created_at
		FROM goal
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

	found, err := r.rows2goals(rows)
	if err != nil {
		return nil, err
	}

	if len(found) != 1 {
		return nil, ErrGoalNotFound
	}

	return &found[0], nil
}

// ListAll returns all goals of the given user, newest first.
func (r *Repo) ListAll(ctx context.Context, userID string) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, user_id, title, target_value, current_value, unit, target_date, is_completed, created_at
		FROM goal
			WHERE ($1::text = '' OR user_id = $1)
		ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	found, err := r.rows2goals(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2goals: %w", err)
	}
	return found, nil
}

// ListOpen returns the not-yet-completed goals of the given user. Goal
// progress analysis looks at open goals only.
func (r *Repo) ListOpen(ctx context.Context, userID string) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.listopen")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, user_id, title, target_value, current_value, unit, target_date, is_completed, created_at
		FROM goal
			WHERE ($1::text = '' OR user_id = $1)
			AND is_completed = FALSE
		ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	found, err := r.rows2goals(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2goals: %w", err)
	}
	return found, nil
}

func (r *Repo) rows2goals(rows pgx.Rows) ([]Goal, error) {
	var found []Goal
	for rows.Next() {
		var g Goal
		var unit *string
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.Title, &g.TargetValue, &g.CurrentValue,
			&unit, &g.TargetDate, &g.IsCompleted, &g.CreatedAt,
		); err != nil {
			return nil, err
		}

		if unit != nil {
			g.Unit = *unit
		}

		found = append(found, g)
	}

	if found == nil {
		found = make([]Goal, 0)
	}

	return found, nil
}
