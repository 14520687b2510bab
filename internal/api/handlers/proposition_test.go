package handlers_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/dom/pickup-hoops/internal/api/handlers"
	"github.com/dom/pickup-hoops/internal/balancing"
	"github.com/dom/pickup-hoops/internal/domain"
	"github.com/dom/pickup-hoops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingAssistant struct{}

func (failingAssistant) Propose(ctx context.Context, req balancing.AssistRequest) ([][]string, error) {
	return nil, errors.New("assistant offline")
}

func postPropositions(t *testing.T, ts *testutil.TestServer, body interface{}) *http.Response {
	t.Helper()

	req := testutil.CreateJSONRequest(t, http.MethodPost, ts.APIURL("/propositions"), body)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func propositionTeamIDs(prop handlers.PropositionResponse) [][]string {
	teams := make([][]string, len(prop.Teams))
	for i, team := range prop.Teams {
		for _, p := range team.Players {
			teams[i] = append(teams[i], p.ID)
		}
	}
	return teams
}

func TestPropositionHandler_GenerateFromStoredPlayers(t *testing.T) {
	ts := testutil.NewTestServer(t, nil)
	players := testutil.SeedRoster(t, ts.DB.DB, 10)
	ids := testutil.PlayerIDs(players)

	resp := postPropositions(t, ts, map[string]interface{}{"playerIds": ids})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result handlers.GeneratePropositionsResponse
	testutil.AssertJSONResponse(t, resp, &result)

	assert.Equal(t, handlers.TeamPlanResponse{
		NumberOfTeams:     2,
		MinPlayersPerTeam: 5,
		MaxPlayersPerTeam: 5,
	}, result.Plan)

	require.Len(t, result.Propositions, 3)
	assert.Equal(t, "skill_balanced", result.Propositions[0].Type)
	assert.Equal(t, "position_focused", result.Propositions[1].Type)
	assert.Equal(t, "general", result.Propositions[2].Type)

	seen := make(map[string]bool)
	for _, prop := range result.Propositions {
		assert.Equal(t, "heuristic", prop.Source)
		assert.NotEmpty(t, prop.ID)
		assert.False(t, seen[prop.ID], "proposition ids must be unique")
		seen[prop.ID] = true

		require.Len(t, prop.Teams, 2)
		for _, team := range prop.Teams {
			assert.Len(t, team.Players, 5)
			assert.NotEmpty(t, team.ID)
			require.NotEmpty(t, team.Coverage)
			assert.Contains(t, team.CoverageName, domain.Position(team.Coverage[0]).DisplayName())
		}
		testutil.AssertPartition(t, ids, propositionTeamIDs(prop))
	}
}

func TestPropositionHandler_GenerateFromInlineRoster(t *testing.T) {
	ts := testutil.NewTestServer(t, nil)

	roster := testutil.Roster(17)
	players := make([]handlers.PlayerRequest, len(roster))
	ids := make([]string, len(roster))
	for i, p := range roster {
		positions := make([]string, len(p.Positions))
		for j, pos := range p.Positions {
			positions[j] = string(pos)
		}
		players[i] = handlers.PlayerRequest{
			ID:        p.ID,
			Name:      p.Name,
			SkillTier: string(p.SkillTier),
			Positions: positions,
		}
		ids[i] = p.ID
	}

	resp := postPropositions(t, ts, map[string]interface{}{"players": players})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result handlers.GeneratePropositionsResponse
	testutil.AssertJSONResponse(t, resp, &result)

	assert.Equal(t, 3, result.Plan.NumberOfTeams)
	assert.Equal(t, 5, result.Plan.MinPlayersPerTeam)
	assert.Equal(t, 6, result.Plan.MaxPlayersPerTeam)

	require.Len(t, result.Propositions, 3)
	for _, prop := range result.Propositions {
		sizes := make([]int, len(prop.Teams))
		for i, team := range prop.Teams {
			sizes[i] = len(team.Players)
		}
		assert.ElementsMatch(t, []int{6, 6, 5}, sizes)
		testutil.AssertPartition(t, ids, propositionTeamIDs(prop))
	}
}

func TestPropositionHandler_Errors(t *testing.T) {
	ts := testutil.NewTestServer(t, nil)
	stored := testutil.SeedRoster(t, ts.DB.DB, 10)

	invalid := handlers.PlayerRequest{ID: "x", Name: "X", SkillTier: "Z", Positions: []string{"PG"}}

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "too few stored players",
			body:           map[string]interface{}{"playerIds": testutil.PlayerIDs(stored[:9])},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "insufficient players",
		},
		{
			name:           "empty roster",
			body:           map[string]interface{}{"players": []handlers.PlayerRequest{}},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "roster of 0 players",
		},
		{
			name:           "unknown player id",
			body:           map[string]interface{}{"playerIds": append(testutil.PlayerIDs(stored), "ghost")},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "ghost",
		},
		{
			name:           "repeated player id",
			body:           map[string]interface{}{"playerIds": append(testutil.PlayerIDs(stored), stored[0].ID)},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid roster",
		},
		{
			name:           "invalid inline player",
			body:           map[string]interface{}{"players": []handlers.PlayerRequest{invalid}},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid roster",
		},
		{
			name: "both ids and players",
			body: map[string]interface{}{
				"playerIds": testutil.PlayerIDs(stored),
				"players":   []handlers.PlayerRequest{invalid},
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "not both",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postPropositions(t, ts, tt.body)
			testutil.AssertErrorResponse(t, resp, tt.expectedStatus, tt.expectedMsg)
		})
	}
}

func TestPropositionHandler_AssistantFailureFallsBack(t *testing.T) {
	ts := testutil.NewTestServer(t, failingAssistant{})
	players := testutil.SeedRoster(t, ts.DB.DB, 20)

	resp := postPropositions(t, ts, map[string]interface{}{"playerIds": testutil.PlayerIDs(players)})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result handlers.GeneratePropositionsResponse
	testutil.AssertJSONResponse(t, resp, &result)

	assert.Equal(t, 4, result.Plan.NumberOfTeams)
	require.Len(t, result.Propositions, 3)
	for _, prop := range result.Propositions {
		assert.Equal(t, "heuristic", prop.Source)
		assert.Len(t, prop.Teams, 4)
	}
}

func TestPropositionHandler_Metrics(t *testing.T) {
	ts := testutil.NewTestServer(t, nil)
	players := testutil.SeedRoster(t, ts.DB.DB, 10)

	resp := postPropositions(t, ts, map[string]interface{}{"playerIds": testutil.PlayerIDs(players)})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	assert.Equal(t, 1.0, ts.Metrics.PropositionCount(string(domain.PropositionTypeSkillBalanced), string(domain.PropositionSourceHeuristic)))

	metricsResp, err := http.Get(ts.BaseURL() + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()

	body, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "propositions_generated_total")
}
