package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/azavisha/trailstats/internal/goals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestGoals() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	token := s.doLogin(ctx)

	targetDate := time.Now().AddDate(0, 2, 0)
	newGoal := goals.Goal{
		UserID:      "integration-user",
		Title:       "run 100 km",
		TargetValue: 100,
		Unit:        "km",
		TargetDate:  &targetDate,
	}
	goalJson, err := json.Marshal(newGoal)
	require.NoError(t, err)

	// add
	resp, err := s.httpClient.Do(s.request(ctx, "POST", "/goals", token, goalJson))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var added goals.Goal
	require.NoError(t, json.Unmarshal(respBytes, &added))
	assert.True(t, added.ID > 0)
	assert.False(t, added.IsCompleted)

	// update progress
	added.CurrentValue = 42
	updatedJson, err := json.Marshal(added)
	require.NoError(t, err)

	resp, err = s.httpClient.Do(s.request(ctx, "PUT", "/goals", token, updatedJson))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	// get
	resp, err = s.httpClient.Do(s.request(ctx, "GET", fmt.Sprintf("/goals/%d", added.ID), token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var fetched goals.Goal
	require.NoError(t, json.Unmarshal(respBytes, &fetched))
	assert.Equal(t, float64(42), fetched.CurrentValue)
	require.NotNil(t, fetched.TargetDate)

	// list
	resp, err = s.httpClient.Do(s.request(ctx, "GET", "/goals/list?user_id=integration-user", token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var listResp goals.ListResponse
	require.NoError(t, json.Unmarshal(respBytes, &listResp))
	require.Equal(t, 1, listResp.Total)
	assert.Equal(t, "run 100 km", listResp.Goals[0].Title)

	// delete
	resp, err = s.httpClient.Do(s.request(ctx, "DELETE", fmt.Sprintf("/goals/%d", added.ID), token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}
