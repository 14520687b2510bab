package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/pickup-hoops/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerBuilder creates test players with a builder pattern
type PlayerBuilder struct {
	id        string
	name      string
	skillTier domain.SkillTier
	positions []domain.Position
}

// NewPlayerBuilder creates a new PlayerBuilder with default values
func NewPlayerBuilder() *PlayerBuilder {
	id := uuid.New().String()
	return &PlayerBuilder{
		id:        id,
		name:      fmt.Sprintf("player_%s", id[:8]),
		skillTier: domain.SkillTierC,
		positions: []domain.Position{domain.PositionSmallForward},
	}
}

// WithID sets the player id
func (b *PlayerBuilder) WithID(id string) *PlayerBuilder {
	b.id = id
	return b
}

// WithName sets the display name
func (b *PlayerBuilder) WithName(name string) *PlayerBuilder {
	b.name = name
	return b
}

// WithSkillTier sets the skill tier
func (b *PlayerBuilder) WithSkillTier(tier domain.SkillTier) *PlayerBuilder {
	b.skillTier = tier
	return b
}

// WithPositions sets the eligible positions
func (b *PlayerBuilder) WithPositions(positions ...domain.Position) *PlayerBuilder {
	b.positions = positions
	return b
}

// Player returns the player without storing it
func (b *PlayerBuilder) Player() domain.Player {
	positions := make([]domain.Position, len(b.positions))
	copy(positions, b.positions)
	return domain.Player{
		ID:        b.id,
		Name:      b.name,
		SkillTier: b.skillTier,
		Positions: positions,
	}
}

// Build creates the player in the database
func (b *PlayerBuilder) Build(t *testing.T, db *gorm.DB) *domain.Player {
	t.Helper()

	player := b.Player()
	player.CreatedAt = time.Now()
	player.UpdatedAt = time.Now()

	if err := db.Create(&player).Error; err != nil {
		t.Fatalf("failed to create player: %v", err)
	}

	return &player
}

// Roster creates n players without storing them. Tiers and positions cycle
// so every roster of ten or more has each position and tier represented.
func Roster(n int) []domain.Player {
	players := make([]domain.Player, n)
	for i := range players {
		players[i] = NewPlayerBuilder().
			WithID(fmt.Sprintf("player-%02d", i)).
			WithName(fmt.Sprintf("Player %02d", i)).
			WithSkillTier(domain.AllSkillTiers[i%len(domain.AllSkillTiers)]).
			WithPositions(domain.AllPositions[(i/2)%len(domain.AllPositions)]).
			Player()
	}
	return players
}

// SeedRoster stores n players from Roster in the database
func SeedRoster(t *testing.T, db *gorm.DB, n int) []*domain.Player {
	t.Helper()

	roster := Roster(n)
	players := make([]*domain.Player, n)
	for i, p := range roster {
		players[i] = NewPlayerBuilder().
			WithID(p.ID).
			WithName(p.Name).
			WithSkillTier(p.SkillTier).
			WithPositions(p.Positions...).
			Build(t, db)
	}
	return players
}

// PlayerIDs returns the ids of the given players
func PlayerIDs(players []*domain.Player) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids
}

// CreateJSONRequest creates an HTTP request with a JSON body
func CreateJSONRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return req
}
