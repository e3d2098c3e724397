// File: internal/contact/service.go
package contact

import (
	"context"

	"talento_backend/internal/common"

	"go.uber.org/zap"
)

// Service defines the interface for contact form business logic.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*ContactForm, error)
	List(ctx context.Context, page, pageSize int) ([]ContactForm, *common.Pagination, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

var _ Service = (*service)(nil)

// NewService creates a new contact form service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// Submit inserts the contact form. The record is ephemeral from the
// client's perspective; nothing is held in memory after the insert.
func (s *service) Submit(ctx context.Context, req SubmitRequest) (*ContactForm, error) {
	form := &ContactForm{
		FullName: req.FullName,
		Email:    req.Email,
		Message:  req.Message,
	}
	if req.Company != "" {
		form.Company = &req.Company
	}

	if err := s.repo.Create(ctx, form); err != nil {
		s.logger.Error("Failed to insert contact form", zap.Error(err), zap.String("email", req.Email))
		return nil, common.ErrInternalServer.WithDetails("Failed to submit contact form.")
	}

	s.logger.Info("Contact form submitted", zap.String("email", req.Email))
	return form, nil
}

// List returns contact forms newest first with pagination, for admin review.
func (s *service) List(ctx context.Context, page, pageSize int) ([]ContactForm, *common.Pagination, error) {
	pq := common.PaginationQuery{Page: page, PageSize: pageSize}
	forms, total, err := s.repo.FindAll(ctx, pq.Offset(), pq.Limit())
	if err != nil {
		s.logger.Error("Failed to list contact forms", zap.Error(err))
		return nil, nil, err
	}
	return forms, common.NewPagination(total, pq.Page, pq.PageSize), nil
}
