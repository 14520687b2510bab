package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dom/pickup-hoops/internal/domain"
	"github.com/dom/pickup-hoops/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RosterService struct {
	playerRepo repository.PlayerRepository
}

func NewRosterService(playerRepo repository.PlayerRepository) *RosterService {
	return &RosterService{playerRepo: playerRepo}
}

type CreatePlayerInput struct {
	ID        string
	Name      string
	SkillTier domain.SkillTier
	Positions []domain.Position
}

// CreatePlayer validates and stores a new roster entry. A missing id is
// filled with a fresh UUID.
func (s *RosterService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (*domain.Player, error) {
	player := &domain.Player{
		ID:        input.ID,
		Name:      input.Name,
		SkillTier: input.SkillTier,
		Positions: input.Positions,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	if err := player.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}

	existing, err := s.playerRepo.GetByID(ctx, player.ID)
	if err == nil && existing != nil {
		return nil, ErrPlayerExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// SavePlayer creates or replaces the player with the given id. It reports
// whether the player was newly created.
func (s *RosterService) SavePlayer(ctx context.Context, id string, input CreatePlayerInput) (*domain.Player, bool, error) {
	player := &domain.Player{
		ID:        id,
		Name:      input.Name,
		SkillTier: input.SkillTier,
		Positions: input.Positions,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := player.Validate(); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}

	_, err := s.playerRepo.GetByID(ctx, id)
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return nil, false, err
	}

	if err := s.playerRepo.Upsert(ctx, player); err != nil {
		return nil, false, err
	}

	saved, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return saved, created, nil
}

func (s *RosterService) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func (s *RosterService) ListPlayers(ctx context.Context) ([]*domain.Player, error) {
	return s.playerRepo.GetAll(ctx)
}

// ValidateRoster checks every player and rejects repeated ids
func ValidateRoster(players []domain.Player) error {
	seen := make(map[string]bool, len(players))
	for i := range players {
		if err := players[i].Validate(); err != nil {
			return fmt.Errorf("%w: player %d: %w", ErrInvalidRoster, i, err)
		}
		if seen[players[i].ID] {
			return fmt.Errorf("%w: player %q listed more than once", ErrInvalidRoster, players[i].ID)
		}
		seen[players[i].ID] = true
	}
	return nil
}
