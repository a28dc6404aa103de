//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"guestbook-api/internal/config"
	domain "guestbook-api/internal/domain/guestbook"
	"guestbook-api/internal/infrastructure/auth"
	"guestbook-api/internal/infrastructure/database"
	"guestbook-api/internal/infrastructure/logger"
	repo "guestbook-api/internal/infrastructure/repository/guestbook"
	"guestbook-api/internal/interfaces/httpserver"
)

var guestbookSet = wire.NewSet(
	repo.NewPostgresRepository,
	wire.Bind(new(domain.Repository), new(*repo.PostgresRepository)),
	domain.NewService,
)

// BuildApplication demonstrates how to assemble the guestbook service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		newAuthValidator,
		guestbookSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func newAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}
