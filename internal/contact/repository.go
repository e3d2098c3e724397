// File: internal/contact/repository.go
package contact

import (
	"context"

	"gorm.io/gorm"
)

// Repository defines the interface for contact form data operations.
type Repository interface {
	Create(ctx context.Context, form *ContactForm) error
	FindAll(ctx context.Context, offset, limit int) ([]ContactForm, int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM contact form repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create inserts a new contact form row. No dedup; this is a low-volume
// marketing form and duplicate submissions are an accepted risk.
func (r *gormRepository) Create(ctx context.Context, form *ContactForm) error {
	return r.db.WithContext(ctx).Create(form).Error
}

// FindAll returns contact forms newest first, with the total count.
func (r *gormRepository) FindAll(ctx context.Context, offset, limit int) ([]ContactForm, int64, error) {
	var forms []ContactForm
	var total int64

	if err := r.db.WithContext(ctx).Model(&ContactForm{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&forms).Error
	if err != nil {
		return nil, 0, err
	}
	return forms, total, nil
}
