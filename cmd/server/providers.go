// File: cmd/server/providers.go
package main

import (
	"talento_backend/internal/config"
	"talento_backend/internal/filestorage"
	"talento_backend/internal/platform/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// provideDatabase opens the GORM connection and hands Wire a cleanup that
// closes it on shutdown.
func provideDatabase(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := database.NewGORM(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		database.CloseGORMDB(db)
	}
	return db, cleanup, nil
}

// provideFileStorage builds the local file storage service from config.
func provideFileStorage(cfg *config.Config, logger *zap.Logger) (*filestorage.Service, error) {
	return filestorage.NewService(cfg.StoragePath, cfg.PublicBaseURL, logger)
}
