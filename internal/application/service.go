// File: internal/application/service.go
package application

import (
	"context"
	"mime/multipart"
	"time"

	"talento_backend/internal/common"
	"talento_backend/internal/filestorage"

	"go.uber.org/zap"
)

// Service defines the interface for candidate application business logic.
type Service interface {
	// Submit runs the two-phase flow: when a CV is attached, the upload must
	// complete successfully before the application row is inserted.
	Submit(ctx context.Context, req SubmitRequest, cv *multipart.FileHeader) (*CandidateApplication, error)
	// Record inserts an application row from form data plus already-uploaded
	// CV metadata. It performs no upload itself.
	Record(ctx context.Context, req SubmitRequest, cvInfo *filestorage.CVFileInfo) (*CandidateApplication, error)
	List(ctx context.Context, page, pageSize int) ([]CandidateApplication, *common.Pagination, error)
}

type service struct {
	repo    Repository
	storage *filestorage.Service
	logger  *zap.Logger
}

var _ Service = (*service)(nil)

// NewService creates a new candidate application service.
func NewService(repo Repository, storage *filestorage.Service, logger *zap.Logger) Service {
	return &service{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

// Submit stores the CV first (when present) and only then inserts the
// application record, so CV metadata on a row always points at a file that
// made it to storage. The two phases are not transactional: if the insert
// fails after a successful upload, the file stays behind and is reaped by
// the out-of-band sweeper.
func (s *service) Submit(ctx context.Context, req SubmitRequest, cv *multipart.FileHeader) (*CandidateApplication, error) {
	var cvInfo *filestorage.CVFileInfo
	if cv != nil {
		info, err := s.storage.SaveCV(cv, req.Email, time.Now())
		if err != nil {
			if apiErr, ok := common.IsAPIError(err); ok {
				return nil, apiErr
			}
			s.logger.Error("CV upload failed, aborting submission", zap.Error(err), zap.String("email", req.Email))
			return nil, common.ErrInternalServer.WithDetails("Failed to upload CV.")
		}
		cvInfo = info
	}
	return s.Record(ctx, req, cvInfo)
}

// Record builds the row from form data, merges in CV metadata when present,
// and inserts it. No dedup or idempotency key: a retried request creates a
// second row, which is acceptable at this volume.
func (s *service) Record(ctx context.Context, req SubmitRequest, cvInfo *filestorage.CVFileInfo) (*CandidateApplication, error) {
	app := &CandidateApplication{
		FullName:        req.FullName,
		Citizenship:     req.Citizenship,
		Phone:           req.Phone,
		Email:           req.Email,
		MainRole:        req.MainRole,
		BusinessSector:  req.BusinessSector,
		JobTitle:        req.JobTitle,
		CurrentEmployer: req.CurrentEmployer,
		LinkedinURL:     req.LinkedinURL,
	}
	if cvInfo != nil {
		app.CVFilePath = &cvInfo.FilePath
		app.CVFileName = &cvInfo.FileName
		app.CVFileSize = &cvInfo.FileSize
		app.CVFileType = &cvInfo.FileType
	}

	if err := s.repo.Create(ctx, app); err != nil {
		s.logger.Error("Failed to insert candidate application", zap.Error(err), zap.String("email", req.Email))
		return nil, common.ErrInternalServer.WithDetails("Failed to submit application.")
	}

	s.logger.Info("Candidate application submitted",
		zap.String("email", req.Email),
		zap.Bool("hasCV", app.CVFilePath != nil),
	)
	return app, nil
}

// List returns applications newest first with pagination, for admin review.
func (s *service) List(ctx context.Context, page, pageSize int) ([]CandidateApplication, *common.Pagination, error) {
	pq := common.PaginationQuery{Page: page, PageSize: pageSize}
	apps, total, err := s.repo.FindAll(ctx, pq.Offset(), pq.Limit())
	if err != nil {
		s.logger.Error("Failed to list candidate applications", zap.Error(err))
		return nil, nil, err
	}
	return apps, common.NewPagination(total, pq.Page, pq.PageSize), nil
}
