package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Player is a roster entry. The balancing code only ever reads players.
type Player struct {
	ID        string                       `json:"id" gorm:"type:varchar(64);primary_key"`
	Name      string                       `json:"name" gorm:"type:varchar(100);not null"`
	SkillTier SkillTier                    `json:"skillTier" gorm:"type:varchar(1);not null"`
	Positions datatypes.JSONSlice[Position] `json:"positions" gorm:"not null"`
	CreatedAt time.Time                    `json:"createdAt"`
	UpdatedAt time.Time                    `json:"updatedAt"`
}

// TableName returns the table name for GORM
func (Player) TableName() string {
	return "players"
}

// Validate checks if the player has valid values
func (p *Player) Validate() error {
	if p.ID == "" {
		return ErrMissingPlayerID
	}
	if p.Name == "" {
		return ErrMissingPlayerName
	}
	if !p.SkillTier.IsValid() {
		return ErrInvalidSkillTier
	}
	if len(p.Positions) == 0 {
		return ErrNoPositions
	}
	seen := make(map[Position]bool, len(p.Positions))
	for _, pos := range p.Positions {
		if !pos.IsValid() {
			return ErrInvalidPosition
		}
		if seen[pos] {
			return ErrDuplicatePosition
		}
		seen[pos] = true
	}
	return nil
}

// CanPlay reports whether the player is eligible for the given position
func (p *Player) CanPlay(pos Position) bool {
	for _, candidate := range p.Positions {
		if candidate == pos {
			return true
		}
	}
	return false
}
