package stats

import (
	"context"

	"github.com/azavisha/trailstats/internal/goals"
	"github.com/azavisha/trailstats/internal/wellbeing"
	"github.com/azavisha/trailstats/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=datasource_mocks_test.go -package=stats_test

// dataSource is the injected data-access collaborator. The calculator
// holds no other state, so the whole core stays testable with
// in-memory fixtures.
type dataSource interface {
	ListWorkouts(ctx context.Context, params workouts.WorkoutParams) ([]workouts.Workout, error)
	ListOpenGoals(ctx context.Context, userID string) ([]goals.Goal, error)
	ListWellbeing(ctx context.Context, userID string) ([]wellbeing.Entry, error)
}

// RepoDataSource backs the calculator with the postgres repos.
type RepoDataSource struct {
	workoutsRepo  *workouts.Repo
	goalsRepo     *goals.Repo
	wellbeingRepo *wellbeing.Repo
}

var _ dataSource = (*RepoDataSource)(nil)

func NewRepoDataSource(
	workoutsRepo *workouts.Repo,
	goalsRepo *goals.Repo,
	wellbeingRepo *wellbeing.Repo,
) *RepoDataSource {
	return &RepoDataSource{
		workoutsRepo:  workoutsRepo,
		goalsRepo:     goalsRepo,
		wellbeingRepo: wellbeingRepo,
	}
}

func (ds *RepoDataSource) ListWorkouts(ctx context.Context, params workouts.WorkoutParams) ([]workouts.Workout, error) {
	return ds.workoutsRepo.ListAll(ctx, params)
}

func (ds *RepoDataSource) ListOpenGoals(ctx context.Context, userID string) ([]goals.Goal, error) {
	return ds.goalsRepo.ListOpen(ctx, userID)
}

func (ds *RepoDataSource) ListWellbeing(ctx context.Context, userID string) ([]wellbeing.Entry, error) {
	return ds.wellbeingRepo.ListAll(ctx, userID)
}
