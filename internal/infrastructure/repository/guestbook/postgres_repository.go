// Package guestbook provides persistence implementations for the guestbook
// entry repository.
package guestbook

import (
	"context"

	"gorm.io/gorm"

	domain "guestbook-api/internal/domain/guestbook"
	"guestbook-api/internal/infrastructure/database/entities"
	"guestbook-api/internal/utils/platformerrors"
)

// PostgresRepository persists entries via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new entry row. The database assigns id and created_at in
// the same atomic write.
func (r *PostgresRepository) Create(ctx context.Context, author, text string) (*domain.Entry, error) {
	record := entities.Entry{
		Author: author,
		Text:   text,
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create entry",
			err,
			"entry-create-db-001",
		)
	}

	entry := mapEntryToDomain(record)
	return &entry, nil
}

// ListByCreatedAt returns up to limit entries ordered by creation time.
func (r *PostgresRepository) ListByCreatedAt(ctx context.Context, order domain.SortOrder, limit int) ([]domain.Entry, error) {
	direction := "created_at DESC"
	if order == domain.SortOrderOldest {
		direction = "created_at ASC"
	}

	var records []entities.Entry
	err := r.db.WithContext(ctx).
		Order(direction).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list entries",
			err,
			"entry-list-db-001",
		)
	}

	entries := make([]domain.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, mapEntryToDomain(record))
	}
	return entries, nil
}

func mapEntryToDomain(record entities.Entry) domain.Entry {
	return domain.Entry{
		ID:        record.ID,
		Author:    record.Author,
		Text:      record.Text,
		CreatedAt: record.CreatedAt,
	}
}
