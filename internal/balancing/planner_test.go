package balancing_test

import (
	"errors"
	"testing"

	"github.com/dom/pickup-hoops/internal/balancing"
	"github.com/dom/pickup-hoops/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanTeams(t *testing.T) {
	tests := []struct {
		name      string
		players   int
		wantTeams int
		wantMin   int
		wantMax   int
		wantSizes []int
	}{
		{name: "minimum roster", players: 10, wantTeams: 2, wantMin: 5, wantMax: 5, wantSizes: []int{5, 5}},
		{name: "one extra player", players: 11, wantTeams: 2, wantMin: 5, wantMax: 6, wantSizes: []int{6, 5}},
		{name: "three teams", players: 15, wantTeams: 3, wantMin: 5, wantMax: 5, wantSizes: []int{5, 5, 5}},
		{name: "seventeen players", players: 17, wantTeams: 3, wantMin: 5, wantMax: 6, wantSizes: []int{6, 6, 5}},
		{name: "four teams", players: 20, wantTeams: 4, wantMin: 5, wantMax: 5, wantSizes: []int{5, 5, 5, 5}},
		{name: "twenty three players", players: 23, wantTeams: 4, wantMin: 5, wantMax: 6, wantSizes: []int{6, 6, 6, 5}},
		{name: "capped at four teams", players: 100, wantTeams: 4, wantMin: 25, wantMax: 25, wantSizes: []int{25, 25, 25, 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := balancing.PlanTeams(uniformRoster(tt.players, domain.SkillTierC))
			require.NoError(t, err)

			assert.Equal(t, tt.wantTeams, plan.NumberOfTeams)
			assert.Equal(t, tt.wantMin, plan.MinPlayersPerTeam)
			assert.Equal(t, tt.wantMax, plan.MaxPlayersPerTeam)
			assert.Equal(t, tt.players, plan.TotalPlayers)
			assert.Equal(t, tt.wantSizes, plan.TeamSizes())

			assert.LessOrEqual(t, plan.NumberOfTeams*plan.MinPlayersPerTeam, tt.players)
			assert.GreaterOrEqual(t, plan.NumberOfTeams*plan.MaxPlayersPerTeam, tt.players)
			assert.LessOrEqual(t, plan.MaxPlayersPerTeam-plan.MinPlayersPerTeam, 1)
		})
	}
}

func TestPlanTeams_InsufficientPlayers(t *testing.T) {
	tests := []struct {
		name      string
		players   int
		wantTeams int
	}{
		{name: "empty roster", players: 0, wantTeams: 0},
		{name: "one short of a team", players: 4, wantTeams: 0},
		{name: "one team", players: 5, wantTeams: 1},
		{name: "nine players", players: 9, wantTeams: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := balancing.PlanTeams(uniformRoster(tt.players, domain.SkillTierB))
			require.Error(t, err)
			assert.Equal(t, domain.TeamPlan{}, plan)
			assert.ErrorIs(t, err, domain.ErrInsufficientPlayers)

			var insufficient *domain.InsufficientPlayersError
			require.True(t, errors.As(err, &insufficient))
			assert.Equal(t, tt.wantTeams, insufficient.Teams)
			assert.Equal(t, tt.players, insufficient.Players)
		})
	}
}

func TestPlanTeams_ErrorMessageReportsCounts(t *testing.T) {
	_, err := balancing.PlanTeams(uniformRoster(9, domain.SkillTierA))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "9 players")
	assert.Contains(t, err.Error(), "1 team")
}

func TestPlanTeams_Idempotent(t *testing.T) {
	players := uniformRoster(23, domain.SkillTierS)

	first, err := balancing.PlanTeams(players)
	require.NoError(t, err)
	second, err := balancing.PlanTeams(players)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
