package balancing

import (
	"github.com/dom/pickup-hoops/internal/domain"
)

// PlanTeams computes the team count and size band for a roster.
// Rosters that cannot field two teams of domain.MinTeamSize fail with
// *domain.InsufficientPlayersError.
func PlanTeams(players []domain.Player) (domain.TeamPlan, error) {
	total := len(players)
	teams := min(domain.MaxTeams, total/domain.MinTeamSize)
	if teams < domain.MinTeams {
		return domain.TeamPlan{}, &domain.InsufficientPlayersError{Teams: teams, Players: total}
	}

	return domain.TeamPlan{
		NumberOfTeams:     teams,
		MinPlayersPerTeam: total / teams,
		MaxPlayersPerTeam: (total + teams - 1) / teams,
		TotalPlayers:      total,
	}, nil
}
