package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/azavisha/trailstats/internal/wellbeing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestWellbeing() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	token := s.doLogin(ctx)

	entryJson, err := json.Marshal(wellbeing.Entry{
		UserID: "integration-user",
		Score:  8,
		Notes:  "feeling great after the hike",
	})
	require.NoError(t, err)

	// add
	resp, err := s.httpClient.Do(s.request(ctx, "POST", "/wellbeing", token, entryJson))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var added wellbeing.Entry
	require.NoError(t, json.Unmarshal(respBytes, &added))
	assert.True(t, added.ID > 0)

	// score out of range gets rejected
	badEntryJson, err := json.Marshal(wellbeing.Entry{
		UserID: "integration-user",
		Score:  11,
	})
	require.NoError(t, err)

	resp, err = s.httpClient.Do(s.request(ctx, "POST", "/wellbeing", token, badEntryJson))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	// list
	resp, err = s.httpClient.Do(s.request(ctx, "GET", "/wellbeing/list?user_id=integration-user", token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var listResp wellbeing.ListResponse
	require.NoError(t, json.Unmarshal(respBytes, &listResp))
	require.Equal(t, 1, listResp.Total)
	assert.Equal(t, 8, listResp.Entries[0].Score)

	// delete
	resp, err = s.httpClient.Do(s.request(ctx, "DELETE", fmt.Sprintf("/wellbeing/%d", added.ID), token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}
