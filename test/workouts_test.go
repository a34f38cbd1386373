package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/azavisha/trailstats/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestWorkouts() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	token := s.doLogin(ctx)

	newWorkout := workouts.Workout{
		UserID:          "integration-user",
		ActivityType:    workouts.ActivityHiking,
		Date:            time.Now().Add(-time.Minute),
		DurationMinutes: 90,
		Distance:        7.5,
		ElevationGain:   450,
		Difficulty:      workouts.DifficultyModerate,
		Title:           "morning hike",
		Location:        "local hills",
	}
	workoutJson, err := json.Marshal(newWorkout)
	require.NoError(t, err)

	// add
	resp, err := s.httpClient.Do(s.request(ctx, "POST", "/workouts", token, workoutJson))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var added workouts.AddWorkoutResponse
	require.NoError(t, json.Unmarshal(respBytes, &added))
	assert.True(t, added.ID > 0)
	assert.Equal(t, 1, added.CountToday)
	assert.Equal(t, workouts.ActivityHiking, added.ActivityType)

	// get it back
	resp, err = s.httpClient.Do(s.request(ctx, "GET", fmt.Sprintf("/workouts/%d", added.ID), token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var fetched workouts.Workout
	require.NoError(t, json.Unmarshal(respBytes, &fetched))
	assert.Equal(t, added.ID, fetched.ID)
	assert.Equal(t, "morning hike", fetched.Title)
	assert.Equal(t, workouts.DifficultyModerate, fetched.Difficulty)
	assert.Equal(t, 7.5, fetched.Distance)

	// update
	fetched.Title = "morning hike (updated)"
	updatedJson, err := json.Marshal(fetched)
	require.NoError(t, err)

	resp, err = s.httpClient.Do(s.request(ctx, "PUT", "/workouts", token, updatedJson))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	// list
	resp, err = s.httpClient.Do(s.request(ctx, "GET", "/workouts/list/page/1/size/10?user_id=integration-user", token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var listResp workouts.ListResponse
	require.NoError(t, json.Unmarshal(respBytes, &listResp))
	require.Equal(t, 1, listResp.Total)
	assert.Equal(t, "morning hike (updated)", listResp.Workouts[0].Title)

	// delete
	resp, err = s.httpClient.Do(s.request(ctx, "DELETE", fmt.Sprintf("/workouts/%d", added.ID), token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	// gone now
	resp, err = s.httpClient.Do(s.request(ctx, "GET", fmt.Sprintf("/workouts/%d", added.ID), token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}
