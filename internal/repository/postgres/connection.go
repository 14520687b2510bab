package postgres

import (
	"github.com/dom/pickup-hoops/internal/domain"
	"github.com/dom/pickup-hoops/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the roster tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Player{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Player: NewPlayerRepository(db),
	}
}
