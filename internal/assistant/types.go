package assistant

import "github.com/dom/pickup-hoops/internal/domain"

type proposeRequest struct {
	Strategy string          `json:"strategy"`
	Plan     domain.TeamPlan `json:"plan"`
	Players  []playerPayload `json:"players"`
}

type playerPayload struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	SkillTier string   `json:"skillTier"`
	Positions []string `json:"positions"`
}

type proposeResponse struct {
	Teams []teamPayload `json:"teams"`
}

type teamPayload struct {
	PlayerIDs []string `json:"playerIds"`
}

func toPlayerPayloads(players []domain.Player) []playerPayload {
	out := make([]playerPayload, len(players))
	for i, p := range players {
		positions := make([]string, len(p.Positions))
		for j, pos := range p.Positions {
			positions[j] = string(pos)
		}
		out[i] = playerPayload{
			ID:        p.ID,
			Name:      p.Name,
			SkillTier: string(p.SkillTier),
			Positions: positions,
		}
	}
	return out
}
