package balancing

import (
	"errors"
	"fmt"

	"github.com/dom/pickup-hoops/internal/domain"
)

var (
	errTeamCount     = errors.New("wrong number of teams")
	errTeamSize      = errors.New("team size outside plan")
	errUnknownPlayer = errors.New("unknown player")
	errDuplicate     = errors.New("player assigned twice")
	errMissing       = errors.New("players left unassigned")
)

// assembleTeams resolves a proposed split against the roster and rejects it
// unless it is a partition of the roster that fits the plan.
func assembleTeams(players []domain.Player, plan domain.TeamPlan, proposal [][]string) ([][]domain.Player, error) {
	if len(proposal) != plan.NumberOfTeams {
		return nil, fmt.Errorf("%w: got %d, want %d", errTeamCount, len(proposal), plan.NumberOfTeams)
	}

	byID := make(map[string]domain.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	seen := make(map[string]bool, len(players))
	rosters := make([][]domain.Player, len(proposal))
	for i, ids := range proposal {
		if !plan.Fits(len(ids)) {
			return nil, fmt.Errorf("%w: team %d has %d players, want %d-%d",
				errTeamSize, i, len(ids), plan.MinPlayersPerTeam, plan.MaxPlayersPerTeam)
		}
		rosters[i] = make([]domain.Player, 0, len(ids))
		for _, id := range ids {
			p, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("%w: %q", errUnknownPlayer, id)
			}
			if seen[id] {
				return nil, fmt.Errorf("%w: %q", errDuplicate, id)
			}
			seen[id] = true
			rosters[i] = append(rosters[i], p)
		}
	}

	if len(seen) != len(byID) {
		return nil, fmt.Errorf("%w: %d of %d", errMissing, len(byID)-len(seen), len(byID))
	}
	return rosters, nil
}
