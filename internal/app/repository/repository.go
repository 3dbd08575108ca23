package repository

import (
	"fmt"

	"solarbackend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Product{},
		&ds.MeteringApplication{},
		&ds.Order{},
		&ds.OrderItem{},
		&ds.CartItem{},
		&ds.MaintenanceRequest{},
		&ds.Feedback{},
		&ds.GalleryProject{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}
