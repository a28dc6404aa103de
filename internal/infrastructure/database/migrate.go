package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"guestbook-api/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes for the entry table.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(&entities.Entry{}); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&entities.Entry{}).Count(&count).Error; err != nil {
		return err
	}
	log.Debug().Int64("rows", count).Msg("entry table migrated")

	return nil
}
