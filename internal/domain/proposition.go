package domain

import (
	"github.com/google/uuid"
)

const (
	// MinTeamSize is the smallest team that can play a full-court game
	MinTeamSize = 5
	// MinTeams is the number of teams needed for a game
	MinTeams = 2
	// MaxTeams caps how many teams a session is split into
	MaxTeams = 4
)

// TeamPlan is the team count and per-team size band for a roster
type TeamPlan struct {
	NumberOfTeams     int `json:"numberOfTeams"`
	MinPlayersPerTeam int `json:"minPlayersPerTeam"`
	MaxPlayersPerTeam int `json:"maxPlayersPerTeam"`
	TotalPlayers      int `json:"totalPlayers"`
}

// TeamSizes returns the exact size of each team. The first
// TotalPlayers % NumberOfTeams teams take the extra player.
func (p TeamPlan) TeamSizes() []int {
	if p.NumberOfTeams <= 0 {
		return nil
	}
	sizes := make([]int, p.NumberOfTeams)
	extra := p.TotalPlayers - p.NumberOfTeams*p.MinPlayersPerTeam
	for i := range sizes {
		sizes[i] = p.MinPlayersPerTeam
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}

// Fits reports whether a team of n players is inside the size band
func (p TeamPlan) Fits(n int) bool {
	return n >= p.MinPlayersPerTeam && n <= p.MaxPlayersPerTeam
}

// PropositionType labels the strategy that produced a proposition
type PropositionType string

const (
	PropositionTypeSkillBalanced   PropositionType = "skill_balanced"
	PropositionTypePositionFocused PropositionType = "position_focused"
	PropositionTypeGeneral         PropositionType = "general"
)

// propositionTypesByIndex is the fixed generation order
var propositionTypesByIndex = [...]PropositionType{
	PropositionTypeSkillBalanced,
	PropositionTypePositionFocused,
	PropositionTypeGeneral,
}

// PropositionCount is the number of propositions produced per roster
const PropositionCount = len(propositionTypesByIndex)

// ClassifyByIndex returns the type of the proposition generated at index.
// Any index outside the table maps to general.
func ClassifyByIndex(index int) PropositionType {
	if index < 0 || index >= len(propositionTypesByIndex) {
		return PropositionTypeGeneral
	}
	return propositionTypesByIndex[index]
}

// IsValid checks if a proposition type is valid
func (t PropositionType) IsValid() bool {
	switch t {
	case PropositionTypeSkillBalanced, PropositionTypePositionFocused, PropositionTypeGeneral:
		return true
	}
	return false
}

// PropositionSource tells whether teams came from the assistant or the
// built-in heuristics
type PropositionSource string

const (
	PropositionSourceHeuristic PropositionSource = "heuristic"
	PropositionSourceAssisted  PropositionSource = "assisted"
)

// Proposition is one candidate split of the roster into teams
type Proposition struct {
	ID          uuid.UUID         `json:"id"`
	Type        PropositionType   `json:"type"`
	Source      PropositionSource `json:"source"`
	SkillSpread int               `json:"skillSpread"`
	Teams       []Team            `json:"teams"`
}

// Team is a group of players within a proposition
type Team struct {
	ID           uuid.UUID  `json:"id"`
	Players      []Player   `json:"players"`
	SkillTotal   int        `json:"skillTotal"`
	AverageSkill float64    `json:"averageSkill"`
	Coverage     []Position `json:"coverage"`
}

// NewTeam creates a team with a fresh id and computed stats
func NewTeam(players []Player) Team {
	t := Team{
		ID:      uuid.New(),
		Players: players,
	}
	t.refreshStats()
	return t
}

func (t *Team) refreshStats() {
	t.SkillTotal = 0
	covered := make(map[Position]bool)
	for i := range t.Players {
		t.SkillTotal += t.Players[i].SkillTier.Value()
		for _, pos := range t.Players[i].Positions {
			covered[pos] = true
		}
	}
	t.AverageSkill = 0
	if len(t.Players) > 0 {
		t.AverageSkill = float64(t.SkillTotal) / float64(len(t.Players))
	}
	t.Coverage = make([]Position, 0, len(covered))
	for _, pos := range AllPositions {
		if covered[pos] {
			t.Coverage = append(t.Coverage, pos)
		}
	}
}

// NewProposition creates a proposition with a fresh id from team rosters
func NewProposition(propType PropositionType, source PropositionSource, rosters [][]Player) Proposition {
	p := Proposition{
		ID:     uuid.New(),
		Type:   propType,
		Source: source,
		Teams:  make([]Team, len(rosters)),
	}
	for i, roster := range rosters {
		p.Teams[i] = NewTeam(roster)
	}
	p.SkillSpread = skillSpread(p.Teams)
	return p
}

// PlayerIDs returns the ids of every player in the proposition, team by team
func (p *Proposition) PlayerIDs() []string {
	var ids []string
	for _, team := range p.Teams {
		for _, player := range team.Players {
			ids = append(ids, player.ID)
		}
	}
	return ids
}

func skillSpread(teams []Team) int {
	if len(teams) == 0 {
		return 0
	}
	lo, hi := teams[0].SkillTotal, teams[0].SkillTotal
	for _, t := range teams[1:] {
		lo = min(lo, t.SkillTotal)
		hi = max(hi, t.SkillTotal)
	}
	return hi - lo
}
