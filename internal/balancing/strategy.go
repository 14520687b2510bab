package balancing

import (
	"github.com/dom/pickup-hoops/internal/domain"
)

// Strategy builds one split of a roster into teams.
//
// Implementations must be deterministic and stateless, must not modify
// players, and must return exactly plan.NumberOfTeams rosters whose sizes
// match plan.TeamSizes().
type Strategy interface {
	// Type is the proposition type this strategy produces
	Type() domain.PropositionType
	Build(players []domain.Player, plan domain.TeamPlan) [][]domain.Player
}

// DefaultStrategies returns the built-in strategies in generation order
func DefaultStrategies() []Strategy {
	return []Strategy{
		SkillBalanced{},
		PositionFocused{},
		General{},
	}
}

// SkillBalanced hands out players strongest first, each to the team with the
// lowest skill total that still has room.
type SkillBalanced struct{}

func (SkillBalanced) Type() domain.PropositionType {
	return domain.PropositionTypeSkillBalanced
}

func (SkillBalanced) Build(players []domain.Player, plan domain.TeamPlan) [][]domain.Player {
	slots := newTeamSlots(plan)
	for _, p := range byStrength(players) {
		best := -1
		for i := range slots.rosters {
			if !slots.open(i) {
				continue
			}
			if best == -1 || slots.weaker(i, best) {
				best = i
			}
		}
		slots.add(best, p)
	}
	return slots.rosters
}

// PositionFocused gives every team a player for each position the roster can
// staff, working from the scarcest position and spending specialists first.
// Leftover players go where they add coverage, then to the weakest team.
type PositionFocused struct{}

func (PositionFocused) Type() domain.PropositionType {
	return domain.PropositionTypePositionFocused
}

func (PositionFocused) Build(players []domain.Player, plan domain.TeamPlan) [][]domain.Player {
	slots := newTeamSlots(plan)
	pool := bySpecialization(players)
	assigned := make([]bool, len(pool))
	teams := len(slots.rosters)

	for round, pos := range scarcestPositions(players) {
		// Rotate which team picks first so no team always gets the first specialist
		for k := 0; k < teams; k++ {
			i := (round + k) % teams
			if slots.covered[i][pos] || !slots.open(i) {
				continue
			}
			pick := -1
			for idx := range pool {
				if !assigned[idx] && pool[idx].CanPlay(pos) {
					pick = idx
					break
				}
			}
			if pick == -1 {
				break
			}
			slots.add(i, pool[pick])
			assigned[pick] = true
		}
	}

	for _, p := range byStrength(unassigned(pool, assigned)) {
		best := -1
		for i := range slots.rosters {
			if !slots.open(i) {
				continue
			}
			if best == -1 {
				best = i
				continue
			}
			gi, gb := slots.gain(i, p), slots.gain(best, p)
			if gi > gb || (gi == gb && slots.weaker(i, best)) {
				best = i
			}
		}
		slots.add(best, p)
	}
	return slots.rosters
}

// General balances skill first and uses position coverage to break ties.
// A final pass swaps players of the same tier between teams whenever that
// raises total coverage, which leaves skill totals and sizes untouched.
type General struct{}

func (General) Type() domain.PropositionType {
	return domain.PropositionTypeGeneral
}

func (General) Build(players []domain.Player, plan domain.TeamPlan) [][]domain.Player {
	slots := newTeamSlots(plan)
	for _, p := range byStrength(players) {
		best := -1
		for i := range slots.rosters {
			if !slots.open(i) {
				continue
			}
			if best == -1 {
				best = i
				continue
			}
			if slots.skill[i] != slots.skill[best] {
				if slots.skill[i] < slots.skill[best] {
					best = i
				}
				continue
			}
			gi, gb := slots.gain(i, p), slots.gain(best, p)
			if gi > gb || (gi == gb && len(slots.rosters[i]) < len(slots.rosters[best])) {
				best = i
			}
		}
		slots.add(best, p)
	}

	rosters := slots.rosters
	for swapForCoverage(rosters) {
	}
	return rosters
}

// swapForCoverage applies the first same-tier swap that increases combined
// coverage of the two teams involved. It reports whether a swap was made.
// Coverage is bounded, so repeated calls terminate.
func swapForCoverage(rosters [][]domain.Player) bool {
	for a := 0; a < len(rosters); a++ {
		for b := a + 1; b < len(rosters); b++ {
			before := coverageOf(rosters[a]) + coverageOf(rosters[b])
			for x := range rosters[a] {
				for y := range rosters[b] {
					if rosters[a][x].SkillTier != rosters[b][y].SkillTier {
						continue
					}
					rosters[a][x], rosters[b][y] = rosters[b][y], rosters[a][x]
					if coverageOf(rosters[a])+coverageOf(rosters[b]) > before {
						return true
					}
					rosters[a][x], rosters[b][y] = rosters[b][y], rosters[a][x]
				}
			}
		}
	}
	return false
}

func unassigned(pool []domain.Player, assigned []bool) []domain.Player {
	var rest []domain.Player
	for i, p := range pool {
		if !assigned[i] {
			rest = append(rest, p)
		}
	}
	return rest
}
