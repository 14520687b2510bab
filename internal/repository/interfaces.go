package repository

import (
	"context"

	"github.com/dom/pickup-hoops/internal/domain"
)

type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	Upsert(ctx context.Context, player *domain.Player) error
	GetAll(ctx context.Context) ([]*domain.Player, error)
	GetByID(ctx context.Context, id string) (*domain.Player, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Player, error)
}

type Repositories struct {
	Player PlayerRepository
}
