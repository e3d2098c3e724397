package shared

import (
	"context"
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// SessionUser is the transient in-memory copy of an authenticated identity.
// It exists only for the duration of a verified session; the identity
// provider owns the record.
type SessionUser struct {
	ID        string     `json:"id"`
	Email     *string    `json:"email,omitempty"`
	FullName  *string    `json:"full_name,omitempty"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// Service defines the user-facing operations the auth middleware needs.
// Implemented by the profile package; declared here to avoid an import
// cycle between middleware and profile.
type Service interface {
	// GetOrCreateUserFromFirebaseClaims resolves a verified token to a session
	// user, lazily creating the backing profile row on first login.
	GetOrCreateUserFromFirebaseClaims(ctx context.Context, token *firebaseauth.Token) (usr *SessionUser, wasCreated bool, err error)
}
