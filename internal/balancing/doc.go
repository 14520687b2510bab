// Package balancing splits a pickup roster into balanced teams.
//
// PlanTeams decides how many teams a roster supports and how large each
// team is. A Generator then runs one Strategy per proposition type, in the
// fixed order skill_balanced, position_focused, general. An optional
// Assistant may propose the split for a strategy; its answer is checked
// against the plan and the roster and replaced by the strategy's own split
// when it does not hold up.
package balancing
