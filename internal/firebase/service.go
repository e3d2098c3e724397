package firebase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"talento_backend/internal/config"
)

// ErrUserNotFound lets alternative Service implementations signal a missing
// account without depending on the Admin SDK's internal error attributes.
var ErrUserNotFound = errors.New("firebase: user not found")

// Service abstracts the identity-provider operations the application needs.
// Account storage, credential checks, and session issuance all live on the
// provider side; this is a thin client.
type Service interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	CreateUser(ctx context.Context, email, password, displayName string) (*auth.UserRecord, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	PasswordResetLink(ctx context.Context, email string) (string, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
	UpdatePassword(ctx context.Context, uid, newPassword string) error
	UpdateEmail(ctx context.Context, uid, newEmail string) error
}

// IsUserNotFound reports whether err means the provider has no such account.
// Exposed so callers can mask account existence where the API must not leak it.
func IsUserNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) || auth.IsUserNotFound(err)
}

type firebaseService struct {
	authClient *auth.Client
	logger     *zap.Logger
}

var _ Service = (*firebaseService)(nil)

// NewService initializes the Firebase Admin SDK and returns the identity facade.
func NewService(cfg *config.Config, logger *zap.Logger) (Service, error) {
	if cfg.FirebaseServiceAccountKeyPath == "" {
		logger.Error("Firebase service account key path is not configured.")
		return nil, fmt.Errorf("firebase service account key path is required")
	}

	cleanPath := filepath.Clean(cfg.FirebaseServiceAccountKeyPath)
	opt := option.WithCredentialsFile(cleanPath)

	var app *firebase.App
	var err error

	if cfg.FirebaseProjectID != "" {
		conf := &firebase.Config{ProjectID: cfg.FirebaseProjectID}
		app, err = firebase.NewApp(context.Background(), conf, opt)
	} else {
		// If ProjectID is not specified in config, let SDK infer from credentials
		app, err = firebase.NewApp(context.Background(), nil, opt)
	}
	if err != nil {
		logger.Error("Failed to initialize Firebase Admin SDK app", zap.Error(err), zap.String("keyPath", cleanPath))
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		logger.Error("Failed to get Firebase Auth client", zap.Error(err))
		return nil, fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	logger.Info("Firebase Admin SDK initialized successfully.")
	return &firebaseService{
		authClient: authClient,
		logger:     logger,
	}, nil
}

// VerifyIDToken verifies a Firebase ID token and returns the token claims.
func (s *firebaseService) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if idToken == "" {
		return nil, fmt.Errorf("ID token must not be empty")
	}

	token, err := s.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.Warn("Firebase ID token verification failed", zap.Error(err))
		return nil, fmt.Errorf("failed to verify Firebase ID token: %w", err)
	}

	s.logger.Debug("Firebase ID token verified successfully", zap.String("uid", token.UID))
	return token, nil
}

// CreateUser provisions a new account with the identity provider.
func (s *firebaseService) CreateUser(ctx context.Context, email, password, displayName string) (*auth.UserRecord, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := s.authClient.CreateUser(ctx, params)
	if err != nil {
		s.logger.Warn("Firebase user creation failed", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create Firebase user: %w", err)
	}
	s.logger.Info("Firebase user created", zap.String("uid", record.UID))
	return record, nil
}

// GetUser fetches the provider's account record for a UID.
func (s *firebaseService) GetUser(ctx context.Context, uid string) (*auth.UserRecord, error) {
	record, err := s.authClient.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firebase user %s: %w", uid, err)
	}
	return record, nil
}

// PasswordResetLink asks the provider to generate a password-reset link for email.
// The provider sends the mail; the returned link is only logged at debug level.
func (s *firebaseService) PasswordResetLink(ctx context.Context, email string) (string, error) {
	link, err := s.authClient.PasswordResetLink(ctx, email)
	if err != nil {
		return "", err
	}
	s.logger.Debug("Password reset link generated", zap.String("email", email))
	return link, nil
}

// RevokeRefreshTokens invalidates every session the provider holds for uid.
func (s *firebaseService) RevokeRefreshTokens(ctx context.Context, uid string) error {
	if err := s.authClient.RevokeRefreshTokens(ctx, uid); err != nil {
		s.logger.Error("Failed to revoke refresh tokens", zap.Error(err), zap.String("uid", uid))
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	s.logger.Info("Successfully revoked refresh tokens for user", zap.String("uid", uid))
	return nil
}

// UpdatePassword sets a new password for uid on the provider side.
func (s *firebaseService) UpdatePassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).Password(newPassword)
	if _, err := s.authClient.UpdateUser(ctx, uid, params); err != nil {
		s.logger.Warn("Failed to update user password", zap.Error(err), zap.String("uid", uid))
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// UpdateEmail sets a new email for uid on the provider side.
func (s *firebaseService) UpdateEmail(ctx context.Context, uid, newEmail string) error {
	params := (&auth.UserToUpdate{}).Email(newEmail)
	if _, err := s.authClient.UpdateUser(ctx, uid, params); err != nil {
		s.logger.Warn("Failed to update user email", zap.Error(err), zap.String("uid", uid))
		return fmt.Errorf("failed to update email: %w", err)
	}
	return nil
}
