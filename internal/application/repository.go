// File: internal/application/repository.go
package application

import (
	"context"

	"gorm.io/gorm"
)

// Repository defines the interface for candidate application data operations.
type Repository interface {
	Create(ctx context.Context, app *CandidateApplication) error
	FindAll(ctx context.Context, offset, limit int) ([]CandidateApplication, int64, error)
	ExistsByCVPath(ctx context.Context, cvFilePath string) (bool, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM candidate application repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create inserts a new application row. There is no dedup and no idempotency
// key; a network retry can create a duplicate row.
func (r *gormRepository) Create(ctx context.Context, app *CandidateApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// FindAll returns applications newest first, with the total count.
func (r *gormRepository) FindAll(ctx context.Context, offset, limit int) ([]CandidateApplication, int64, error) {
	var apps []CandidateApplication
	var total int64

	if err := r.db.WithContext(ctx).Model(&CandidateApplication{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

// ExistsByCVPath reports whether any application references the stored CV
// file at cvFilePath. Used by the orphan sweeper.
func (r *gormRepository) ExistsByCVPath(ctx context.Context, cvFilePath string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&CandidateApplication{}).
		Where("cv_file_path = ?", cvFilePath).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
