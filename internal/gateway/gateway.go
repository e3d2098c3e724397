// File: internal/gateway/gateway.go

// Package gateway fronts every remote operation the site performs with a
// uniform {success, data?, error?} envelope. Callers never see a panic or a
// raw error cross this boundary; failures are mapped to the envelope.
package gateway

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"talento_backend/internal/application"
	"talento_backend/internal/common"
	"talento_backend/internal/contact"
	"talento_backend/internal/filestorage"
	"talento_backend/internal/firebase"
	"talento_backend/internal/profile"
	"talento_backend/internal/shared"

	"go.uber.org/zap"
)

// Result is the envelope every gateway operation returns.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Ok wraps data in a successful Result.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail wraps an error message in a failed Result.
func Fail[T any](message string) Result[T] {
	return Result[T]{Success: false, Error: message}
}

// guard converts a panic inside an operation into a failed Result. Used via
// defer with a named return value.
func guard[T any](logger *zap.Logger, op string, res *Result[T]) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered in gateway operation", zap.String("operation", op), zap.Any("panic", r))
		*res = Fail[T]("An unexpected error occurred")
	}
}

// errMessage extracts a user-facing message from an error, preferring the
// APIError message when one is present.
func errMessage(err error, fallback string) string {
	if apiErr, ok := common.IsAPIError(err); ok {
		if detail, ok := apiErr.Details.(string); ok && detail != "" {
			return detail
		}
		return apiErr.Message
	}
	if fallback != "" {
		return fallback
	}
	return "An unexpected error occurred"
}

// Gateway composes the identity, profile, application, contact and storage
// services behind the envelope contract.
type Gateway struct {
	firebase     firebase.Service
	profiles     profile.Service
	applications application.Service
	contacts     contact.Service
	storage      *filestorage.Service
	logger       *zap.Logger
}

// New creates a new Gateway.
func New(
	fb firebase.Service,
	profiles profile.Service,
	applications application.Service,
	contacts contact.Service,
	storage *filestorage.Service,
	logger *zap.Logger,
) *Gateway {
	return &Gateway{
		firebase:     fb,
		profiles:     profiles,
		applications: applications,
		contacts:     contacts,
		storage:      storage,
		logger:       logger.Named("Gateway"),
	}
}

// SignUp creates the auth account and then attempts the profile row as a
// follow-up step. A failed profile creation is logged but does not fail the
// sign-up; the row is provisioned lazily on first sign-in instead.
func (g *Gateway) SignUp(ctx context.Context, email, password, fullName string) (res Result[*shared.SessionUser]) {
	defer guard(g.logger, "SignUp", &res)

	record, err := g.firebase.CreateUser(ctx, email, password, fullName)
	if err != nil {
		g.logger.Error("Sign-up failed", zap.Error(err), zap.String("email", email))
		return Fail[*shared.SessionUser](errMessage(err, "Failed to create account"))
	}

	if _, err := g.profiles.Create(ctx, record.UID, fullName); err != nil {
		g.logger.Error("Profile creation after sign-up failed", zap.Error(err), zap.String("userID", record.UID))
	}

	user := &shared.SessionUser{
		ID:       record.UID,
		Email:    &record.Email,
		FullName: &fullName,
		Role:     common.RoleUser,
	}
	return Ok(user)
}

// SignIn verifies a Firebase ID token and returns the session's user,
// provisioning the profile row if this is the first sign-in.
func (g *Gateway) SignIn(ctx context.Context, idToken string) (res Result[*shared.SessionUser]) {
	defer guard(g.logger, "SignIn", &res)

	token, err := g.firebase.VerifyIDToken(ctx, idToken)
	if err != nil {
		g.logger.Warn("Sign-in token verification failed", zap.Error(err))
		return Fail[*shared.SessionUser]("Invalid email or password")
	}

	user, _, err := g.profiles.GetOrCreateUserFromFirebaseClaims(ctx, token)
	if err != nil {
		g.logger.Error("Sign-in failed", zap.Error(err), zap.String("userID", token.UID))
		return Fail[*shared.SessionUser](errMessage(err, "Failed to sign in"))
	}
	return Ok(user)
}

// SignOut revokes the user's refresh tokens. Clearing local view state is
// the caller's responsibility.
func (g *Gateway) SignOut(ctx context.Context, userID string) (res Result[any]) {
	defer guard(g.logger, "SignOut", &res)

	if err := g.firebase.RevokeRefreshTokens(ctx, userID); err != nil {
		g.logger.Error("Sign-out failed", zap.Error(err), zap.String("userID", userID))
		return Fail[any]("An unexpected error occurred during signout")
	}
	return Ok[any](nil)
}

// ResetPasswordForEmail reports whether the reset-email send succeeded, not
// whether the address exists. An unknown address still returns success so
// the endpoint cannot be used to probe for accounts.
func (g *Gateway) ResetPasswordForEmail(ctx context.Context, email string) (res Result[any]) {
	defer guard(g.logger, "ResetPasswordForEmail", &res)

	if _, err := g.firebase.PasswordResetLink(ctx, email); err != nil {
		if firebase.IsUserNotFound(err) {
			return Ok[any](nil)
		}
		g.logger.Error("Password reset email failed", zap.Error(err), zap.String("email", email))
		return Fail[any]("An unexpected error occurred")
	}
	return Ok[any](nil)
}

// GetCurrentUser resolves the session user from an ID token. A missing
// session is an expected condition, reported in the envelope without an
// error log; only verification failures of a present token are logged.
func (g *Gateway) GetCurrentUser(ctx context.Context, idToken string) (res Result[*shared.SessionUser]) {
	defer guard(g.logger, "GetCurrentUser", &res)

	if strings.TrimSpace(idToken) == "" {
		return Fail[*shared.SessionUser]("Auth session missing")
	}

	token, err := g.firebase.VerifyIDToken(ctx, idToken)
	if err != nil {
		g.logger.Warn("Current-user token verification failed", zap.Error(err))
		return Fail[*shared.SessionUser]("Auth session missing")
	}

	user, _, err := g.profiles.GetOrCreateUserFromFirebaseClaims(ctx, token)
	if err != nil {
		g.logger.Error("Failed to resolve current user", zap.Error(err), zap.String("userID", token.UID))
		return Fail[*shared.SessionUser](errMessage(err, "Failed to get current user"))
	}
	return Ok(user)
}

// UpdateUserPassword sets a new password for the account.
func (g *Gateway) UpdateUserPassword(ctx context.Context, userID, newPassword string) (res Result[any]) {
	defer guard(g.logger, "UpdateUserPassword", &res)

	if err := g.firebase.UpdatePassword(ctx, userID, newPassword); err != nil {
		g.logger.Error("Password update failed", zap.Error(err), zap.String("userID", userID))
		return Fail[any](errMessage(err, "Failed to update password"))
	}
	return Ok[any](nil)
}

// UpdateUserEmail sets a new email address for the account.
func (g *Gateway) UpdateUserEmail(ctx context.Context, userID, newEmail string) (res Result[any]) {
	defer guard(g.logger, "UpdateUserEmail", &res)

	if err := g.firebase.UpdateEmail(ctx, userID, newEmail); err != nil {
		g.logger.Error("Email update failed", zap.Error(err), zap.String("userID", userID))
		return Fail[any](errMessage(err, "Failed to update email"))
	}
	return Ok[any](nil)
}

// CreateProfile inserts a profile row keyed by the auth user's ID.
func (g *Gateway) CreateProfile(ctx context.Context, userID, fullName string) (res Result[*profile.ProfileResponse]) {
	defer guard(g.logger, "CreateProfile", &res)

	p, err := g.profiles.Create(ctx, userID, fullName)
	if err != nil {
		return Fail[*profile.ProfileResponse](errMessage(err, "Failed to create profile"))
	}
	resp := profile.ToProfileResponse(p)
	return Ok(&resp)
}

// GetProfile fetches the single profile row for a user.
func (g *Gateway) GetProfile(ctx context.Context, userID string) (res Result[*profile.ProfileResponse]) {
	defer guard(g.logger, "GetProfile", &res)

	p, err := g.profiles.Get(ctx, userID)
	if err != nil {
		return Fail[*profile.ProfileResponse](errMessage(err, "Failed to get profile"))
	}
	resp := profile.ToProfileResponse(p)
	return Ok(&resp)
}

// UpdateProfile applies a partial update to a user's profile row.
func (g *Gateway) UpdateProfile(ctx context.Context, userID string, req profile.UpdateProfileRequest) (res Result[*profile.ProfileResponse]) {
	defer guard(g.logger, "UpdateProfile", &res)

	p, err := g.profiles.Update(ctx, userID, req)
	if err != nil {
		return Fail[*profile.ProfileResponse](errMessage(err, "Failed to update profile"))
	}
	resp := profile.ToProfileResponse(p)
	return Ok(&resp)
}

// UploadProfilePhoto stores the photo at the user's fixed path and updates
// the profile record with the public URL. Either sub-step failing collapses
// to a single failed envelope.
func (g *Gateway) UploadProfilePhoto(ctx context.Context, userID string, fh *multipart.FileHeader) (res Result[string]) {
	defer guard(g.logger, "UploadProfilePhoto", &res)

	photoURL, err := g.profiles.UploadPhoto(ctx, userID, fh)
	if err != nil {
		return Fail[string](errMessage(err, "Failed to upload profile photo"))
	}
	return Ok(photoURL)
}

// UploadCV stores the CV at a unique time-stamped path and returns its
// metadata. It does not create the application record; the caller combines
// the metadata with form data and calls SubmitCandidateApplication.
func (g *Gateway) UploadCV(ctx context.Context, fh *multipart.FileHeader, candidateEmail string) (res Result[*filestorage.CVFileInfo]) {
	defer guard(g.logger, "UploadCV", &res)

	info, err := g.storage.SaveCV(fh, candidateEmail, time.Now())
	if err != nil {
		return Fail[*filestorage.CVFileInfo](errMessage(err, "Failed to upload CV"))
	}
	return Ok(info)
}

// SubmitCandidateApplication inserts the application row from form data plus
// optional already-uploaded CV metadata.
func (g *Gateway) SubmitCandidateApplication(ctx context.Context, req application.SubmitRequest, cvInfo *filestorage.CVFileInfo) (res Result[*application.ApplicationResponse]) {
	defer guard(g.logger, "SubmitCandidateApplication", &res)

	app, err := g.applications.Record(ctx, req, cvInfo)
	if err != nil {
		return Fail[*application.ApplicationResponse](errMessage(err, "Failed to submit application"))
	}
	resp := application.ToApplicationResponse(app)
	return Ok(&resp)
}

// SubmitContactForm inserts a contact form row.
func (g *Gateway) SubmitContactForm(ctx context.Context, req contact.SubmitRequest) (res Result[*contact.ContactFormResponse]) {
	defer guard(g.logger, "SubmitContactForm", &res)

	form, err := g.contacts.Submit(ctx, req)
	if err != nil {
		return Fail[*contact.ContactFormResponse](errMessage(err, "Failed to submit contact form"))
	}
	resp := contact.ToContactFormResponse(form)
	return Ok(&resp)
}
