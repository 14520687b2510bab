package balancing

import (
	"sort"

	"github.com/dom/pickup-hoops/internal/domain"
)

// teamSlots tracks teams while a strategy fills them up to their planned size
type teamSlots struct {
	rosters [][]domain.Player
	sizes   []int
	skill   []int
	covered []map[domain.Position]bool
}

func newTeamSlots(plan domain.TeamPlan) *teamSlots {
	sizes := plan.TeamSizes()
	s := &teamSlots{
		rosters: make([][]domain.Player, len(sizes)),
		sizes:   sizes,
		skill:   make([]int, len(sizes)),
		covered: make([]map[domain.Position]bool, len(sizes)),
	}
	for i, size := range sizes {
		s.rosters[i] = make([]domain.Player, 0, size)
		s.covered[i] = make(map[domain.Position]bool)
	}
	return s
}

func (s *teamSlots) open(i int) bool {
	return len(s.rosters[i]) < s.sizes[i]
}

func (s *teamSlots) add(i int, p domain.Player) {
	s.rosters[i] = append(s.rosters[i], p)
	s.skill[i] += p.SkillTier.Value()
	for _, pos := range p.Positions {
		s.covered[i][pos] = true
	}
}

// gain is the number of positions p would newly cover on team i
func (s *teamSlots) gain(i int, p domain.Player) int {
	n := 0
	for _, pos := range p.Positions {
		if !s.covered[i][pos] {
			n++
		}
	}
	return n
}

// weaker reports whether team i should receive the next player before team j
func (s *teamSlots) weaker(i, j int) bool {
	if s.skill[i] != s.skill[j] {
		return s.skill[i] < s.skill[j]
	}
	return len(s.rosters[i]) < len(s.rosters[j])
}

// byStrength returns a copy of players ordered strongest first, ids breaking ties
func byStrength(players []domain.Player) []domain.Player {
	sorted := make([]domain.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		vi, vj := sorted[i].SkillTier.Value(), sorted[j].SkillTier.Value()
		if vi != vj {
			return vi > vj
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// bySpecialization orders players with the fewest positions first, then by strength
func bySpecialization(players []domain.Player) []domain.Player {
	sorted := byStrength(players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Positions) < len(sorted[j].Positions)
	})
	return sorted
}

// scarcestPositions orders positions by how few players can play them
func scarcestPositions(players []domain.Player) []domain.Position {
	eligible := make(map[domain.Position]int, len(domain.AllPositions))
	for i := range players {
		for _, pos := range players[i].Positions {
			eligible[pos]++
		}
	}
	positions := make([]domain.Position, len(domain.AllPositions))
	copy(positions, domain.AllPositions)
	sort.SliceStable(positions, func(i, j int) bool {
		return eligible[positions[i]] < eligible[positions[j]]
	})
	return positions
}

func coverageOf(players []domain.Player) int {
	covered := make(map[domain.Position]bool)
	for i := range players {
		for _, pos := range players[i].Positions {
			covered[pos] = true
		}
	}
	return len(covered)
}
