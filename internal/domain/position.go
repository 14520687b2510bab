package domain

import "strings"

// Position represents a basketball position a player can line up at
type Position string

const (
	PositionPointGuard    Position = "PG"
	PositionShootingGuard Position = "SG"
	PositionSmallForward  Position = "SF"
	PositionPowerForward  Position = "PF"
	PositionCenter        Position = "C"
)

// AllPositions contains all valid positions in order
var AllPositions = []Position{
	PositionPointGuard,
	PositionShootingGuard,
	PositionSmallForward,
	PositionPowerForward,
	PositionCenter,
}

// IsValid checks if a position is valid
func (p Position) IsValid() bool {
	switch p {
	case PositionPointGuard, PositionShootingGuard, PositionSmallForward, PositionPowerForward, PositionCenter:
		return true
	}
	return false
}

// String returns the string representation of the position
func (p Position) String() string {
	return string(p)
}

var positionNames = map[Position]string{
	PositionPointGuard:    "Point Guard",
	PositionShootingGuard: "Shooting Guard",
	PositionSmallForward:  "Small Forward",
	PositionPowerForward:  "Power Forward",
	PositionCenter:        "Center",
}

// DisplayName returns the full position name, or the raw code when unknown
func (p Position) DisplayName() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return string(p)
}

// CoverageLabel joins the full names of positions, e.g. "Point Guard / Center"
func CoverageLabel(positions []Position) string {
	names := make([]string, len(positions))
	for i, pos := range positions {
		names[i] = pos.DisplayName()
	}
	return strings.Join(names, " / ")
}

// SkillTier is an ordinal skill rank, S being the highest
type SkillTier string

const (
	SkillTierS SkillTier = "S"
	SkillTierA SkillTier = "A"
	SkillTierB SkillTier = "B"
	SkillTierC SkillTier = "C"
	SkillTierD SkillTier = "D"
)

// AllSkillTiers contains all valid tiers from strongest to weakest
var AllSkillTiers = []SkillTier{SkillTierS, SkillTierA, SkillTierB, SkillTierC, SkillTierD}

var skillTierValues = map[SkillTier]int{
	SkillTierS: 5,
	SkillTierA: 4,
	SkillTierB: 3,
	SkillTierC: 2,
	SkillTierD: 1,
}

// Value converts a tier to the weight used when balancing teams.
// Unknown tiers weigh zero.
func (t SkillTier) Value() int {
	return skillTierValues[t]
}

// IsValid checks if a tier is valid
func (t SkillTier) IsValid() bool {
	_, ok := skillTierValues[t]
	return ok
}

// String returns the string representation of the tier
func (t SkillTier) String() string {
	return string(t)
}
