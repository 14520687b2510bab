package balancing_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/dom/pickup-hoops/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformRoster creates n players of one tier, each with a single position
// cycling through all positions
func uniformRoster(n int, tier domain.SkillTier) []domain.Player {
	players := make([]domain.Player, n)
	for i := range players {
		players[i] = domain.Player{
			ID:        fmt.Sprintf("p%02d", i),
			Name:      fmt.Sprintf("Player %d", i),
			SkillTier: tier,
			Positions: []domain.Position{domain.AllPositions[i%len(domain.AllPositions)]},
		}
	}
	return players
}

// randomRoster creates n players with random tiers and position sets
func randomRoster(rng *rand.Rand, n int) []domain.Player {
	players := make([]domain.Player, n)
	for i := range players {
		var positions []domain.Position
		for _, pos := range domain.AllPositions {
			if rng.Intn(3) == 0 {
				positions = append(positions, pos)
			}
		}
		if len(positions) == 0 {
			positions = []domain.Position{domain.AllPositions[rng.Intn(len(domain.AllPositions))]}
		}
		players[i] = domain.Player{
			ID:        fmt.Sprintf("r%03d", i),
			Name:      fmt.Sprintf("Random %d", i),
			SkillTier: domain.AllSkillTiers[rng.Intn(len(domain.AllSkillTiers))],
			Positions: positions,
		}
	}
	return players
}

// assertValidProposition checks that a proposition partitions the roster and
// respects the plan's size band
func assertValidProposition(t *testing.T, players []domain.Player, plan domain.TeamPlan, prop domain.Proposition) {
	t.Helper()

	require.Len(t, prop.Teams, plan.NumberOfTeams, "team count")

	want := make(map[string]int, len(players))
	for _, p := range players {
		want[p.ID]++
	}
	got := make(map[string]int, len(players))
	for i, team := range prop.Teams {
		assert.GreaterOrEqual(t, len(team.Players), plan.MinPlayersPerTeam, "team %d too small", i)
		assert.LessOrEqual(t, len(team.Players), plan.MaxPlayersPerTeam, "team %d too large", i)
		assert.NotEqual(t, team.ID.String(), "00000000-0000-0000-0000-000000000000", "team %d has no id", i)
		for _, p := range team.Players {
			got[p.ID]++
		}
	}
	assert.Equal(t, want, got, "proposition %s is not a partition of the roster", prop.Type)
}
