// File: internal/profile/service.go
package profile

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"talento_backend/internal/common"
	"talento_backend/internal/config"
	"talento_backend/internal/filestorage"
	"talento_backend/internal/shared"

	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// Service defines the interface for profile business logic. It also carries
// the session-resolution contract so callers holding a profile Service can
// resolve verified identity tokens without a second dependency.
type Service interface {
	shared.Service
	Create(ctx context.Context, userID, fullName string) (*Profile, error)
	Get(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, userID string, req UpdateProfileRequest) (*Profile, error)
	UploadPhoto(ctx context.Context, userID string, fh *multipart.FileHeader) (string, error)
	Completion(ctx context.Context, userID string) (*CompletionResponse, error)
}

// ServiceImplementation implements Service and shared.Service.
type ServiceImplementation struct {
	repo    Repository
	storage *filestorage.Service
	cfg     *config.Config
	logger  *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)
var _ shared.Service = (*ServiceImplementation)(nil)

// NewService creates a new profile service.
func NewService(
	repo Repository,
	storage *filestorage.Service,
	cfg *config.Config,
	logger *zap.Logger,
) *ServiceImplementation {
	return &ServiceImplementation{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		logger:  logger,
	}
}

// Create inserts a fresh profile row keyed by the auth identity's UID.
func (s *ServiceImplementation) Create(ctx context.Context, userID, fullName string) (*Profile, error) {
	if userID == "" {
		return nil, common.ErrBadRequest.WithDetails("User ID is required to create a profile.")
	}
	p := &Profile{
		ID:   userID,
		Role: common.RoleUser,
	}
	if fullName != "" {
		p.FullName = &fullName
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("Failed to create profile", zap.Error(err), zap.String("userID", userID))
		return nil, err
	}
	s.logger.Info("Profile created", zap.String("userID", userID))
	return p, nil
}

// Get retrieves a profile by user ID.
func (s *ServiceImplementation) Get(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Debug("Profile not found", zap.String("userID", userID))
		} else {
			s.logger.Error("Error finding profile", zap.Error(err), zap.String("userID", userID))
		}
		return nil, err
	}
	return p, nil
}

// Update applies a partial update to the user's profile. Nil request
// fields are left as they are.
func (s *ServiceImplementation) Update(ctx context.Context, userID string, req UpdateProfileRequest) (*Profile, error) {
	p, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		p.FullName = req.FullName
	}
	if req.Phone != nil {
		p.Phone = req.Phone
	}
	if req.Location != nil {
		p.Location = req.Location
	}
	if req.Bio != nil {
		p.Bio = req.Bio
	}
	if req.Experience != nil {
		p.Experience = req.Experience
	}
	if req.Education != nil {
		p.Education = req.Education
	}
	if req.Skills != nil {
		p.Skills = *req.Skills
	}

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err), zap.String("userID", userID))
		return nil, err
	}
	s.logger.Info("Profile updated", zap.String("userID", userID))
	return p, nil
}

// UploadPhoto stores the photo at the user's fixed path and then updates the
// profile record with the public URL. A failure in either step surfaces as a
// single error; the caller cannot tell which sub-step failed.
func (s *ServiceImplementation) UploadPhoto(ctx context.Context, userID string, fh *multipart.FileHeader) (string, error) {
	relPath, err := s.storage.SaveProfilePhoto(fh, userID)
	if err != nil {
		if apiErr, ok := common.IsAPIError(err); ok {
			return "", apiErr
		}
		s.logger.Error("Failed to store profile photo", zap.Error(err), zap.String("userID", userID))
		return "", fmt.Errorf("failed to upload profile photo: %w", err)
	}

	photoURL := s.storage.PublicURL(relPath)

	p, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Error("Photo stored but profile lookup failed", zap.Error(err), zap.String("userID", userID))
		return "", fmt.Errorf("failed to upload profile photo: %w", err)
	}
	p.ProfilePhotoURL = &photoURL
	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("Photo stored but profile update failed", zap.Error(err), zap.String("userID", userID))
		return "", fmt.Errorf("failed to upload profile photo: %w", err)
	}

	s.logger.Info("Profile photo updated", zap.String("userID", userID))
	return photoURL, nil
}

// Completion recomputes the completion checklist from the current profile.
// A missing profile is not an error; it simply scores zero.
func (s *ServiceImplementation) Completion(ctx context.Context, userID string) (*CompletionResponse, error) {
	p, err := s.repo.FindByID(ctx, userID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	percentage, items := CalculateCompletion(p)
	return &CompletionResponse{Percentage: percentage, Items: items}, nil
}

// GetOrCreateUserFromFirebaseClaims resolves a verified identity token to a
// session user, lazily creating the profile row on first login.
func (s *ServiceImplementation) GetOrCreateUserFromFirebaseClaims(ctx context.Context, token *firebaseauth.Token) (*shared.SessionUser, bool, error) {
	if token == nil || token.UID == "" {
		return nil, false, common.ErrUnauthorized.WithDetails("Invalid identity token.")
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)

	p, err := s.repo.FindByID(ctx, token.UID)
	wasCreated := false
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Error("Error finding profile for authenticated user", zap.Error(err), zap.String("uid", token.UID))
			return nil, false, err
		}
		fallbackName := name
		if fallbackName == "" && email != "" {
			fallbackName = strings.SplitN(email, "@", 2)[0]
		}
		p, err = s.Create(ctx, token.UID, fallbackName)
		if err != nil {
			// Two first requests racing; the loser re-reads the winner's row.
			if apiErr, ok := common.IsAPIError(err); ok && apiErr.StatusCode == common.ErrConflict.StatusCode {
				p, err = s.repo.FindByID(ctx, token.UID)
			}
			if err != nil {
				return nil, false, err
			}
		} else {
			wasCreated = true
			s.logger.Info("Profile lazily created on first login", zap.String("uid", token.UID))
		}
	}

	usr := &shared.SessionUser{
		ID:        p.ID,
		Role:      p.Role,
		FullName:  p.FullName,
		CreatedAt: p.CreatedAt,
	}
	if email != "" {
		usr.Email = &email
	}
	return usr, wasCreated, nil
}
