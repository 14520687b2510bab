package domain

import (
	"errors"
	"fmt"
)

// Player validation errors
var (
	ErrMissingPlayerID   = errors.New("player id is required")
	ErrMissingPlayerName = errors.New("player name is required")
	ErrInvalidSkillTier  = errors.New("invalid skill tier")
	ErrNoPositions       = errors.New("player must have at least one position")
	ErrInvalidPosition   = errors.New("invalid position")
	ErrDuplicatePosition = errors.New("position listed more than once")
)

// ErrInsufficientPlayers matches any InsufficientPlayersError via errors.Is
var ErrInsufficientPlayers = errors.New("insufficient players")

// InsufficientPlayersError is returned when a roster cannot be split into
// at least two teams of the minimum size.
type InsufficientPlayersError struct {
	Teams   int
	Players int
}

func (e *InsufficientPlayersError) Error() string {
	return fmt.Sprintf("insufficient players: roster of %d players can only form %d team(s) of at least %d, need at least %d teams",
		e.Players, e.Teams, MinTeamSize, MinTeams)
}

// Is lets errors.Is(err, ErrInsufficientPlayers) match
func (e *InsufficientPlayersError) Is(target error) bool {
	return target == ErrInsufficientPlayers
}
