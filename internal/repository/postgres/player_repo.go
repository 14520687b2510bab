package postgres

import (
	"context"

	"github.com/dom/pickup-hoops/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *playerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *domain.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *playerRepository) Upsert(ctx context.Context, player *domain.Player) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "skill_tier", "positions", "updated_at"}),
	}).Create(player).Error
}

func (r *playerRepository) GetAll(ctx context.Context) ([]*domain.Player, error) {
	var players []*domain.Player
	err := r.db.WithContext(ctx).Order("name ASC").Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	var player domain.Player
	err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var players []*domain.Player
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("name ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}
