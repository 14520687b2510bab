package domain_test

import (
	"testing"

	"github.com/dom/pickup-hoops/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPlayer_Validate(t *testing.T) {
	valid := func() domain.Player {
		return domain.Player{
			ID:        "p1",
			Name:      "Jordan",
			SkillTier: domain.SkillTierA,
			Positions: []domain.Position{domain.PositionShootingGuard, domain.PositionSmallForward},
		}
	}

	tests := []struct {
		name    string
		mutate  func(p *domain.Player)
		wantErr error
	}{
		{name: "valid player", mutate: func(p *domain.Player) {}},
		{name: "missing id", mutate: func(p *domain.Player) { p.ID = "" }, wantErr: domain.ErrMissingPlayerID},
		{name: "missing name", mutate: func(p *domain.Player) { p.Name = "" }, wantErr: domain.ErrMissingPlayerName},
		{name: "unknown tier", mutate: func(p *domain.Player) { p.SkillTier = "E" }, wantErr: domain.ErrInvalidSkillTier},
		{name: "no positions", mutate: func(p *domain.Player) { p.Positions = nil }, wantErr: domain.ErrNoPositions},
		{name: "unknown position", mutate: func(p *domain.Player) { p.Positions = []domain.Position{"G"} }, wantErr: domain.ErrInvalidPosition},
		{
			name: "repeated position",
			mutate: func(p *domain.Player) {
				p.Positions = []domain.Position{domain.PositionCenter, domain.PositionCenter}
			},
			wantErr: domain.ErrDuplicatePosition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPlayer_CanPlay(t *testing.T) {
	p := domain.Player{Positions: []domain.Position{domain.PositionPointGuard, domain.PositionShootingGuard}}

	assert.True(t, p.CanPlay(domain.PositionPointGuard))
	assert.True(t, p.CanPlay(domain.PositionShootingGuard))
	assert.False(t, p.CanPlay(domain.PositionCenter))
}

func TestSkillTier_Value(t *testing.T) {
	for i := 1; i < len(domain.AllSkillTiers); i++ {
		assert.Greater(t, domain.AllSkillTiers[i-1].Value(), domain.AllSkillTiers[i].Value())
	}
	assert.Equal(t, 0, domain.SkillTier("X").Value())
	assert.False(t, domain.SkillTier("X").IsValid())
	assert.True(t, domain.SkillTierD.IsValid())
}

func TestPosition_DisplayName(t *testing.T) {
	tests := []struct {
		pos  domain.Position
		want string
	}{
		{domain.PositionPointGuard, "Point Guard"},
		{domain.PositionShootingGuard, "Shooting Guard"},
		{domain.PositionSmallForward, "Small Forward"},
		{domain.PositionPowerForward, "Power Forward"},
		{domain.PositionCenter, "Center"},
		{domain.Position("QB"), "QB"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.DisplayName())
		})
	}
}

func TestCoverageLabel(t *testing.T) {
	assert.Equal(t, "Point Guard / Center", domain.CoverageLabel([]domain.Position{domain.PositionPointGuard, domain.PositionCenter}))
	assert.Equal(t, "", domain.CoverageLabel(nil))
}
