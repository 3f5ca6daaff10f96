// Copyright (c) 2026 Eda Media. All rights reserved.

/*
Package account handles user profile management, session transparency, and
the administrative user directory.

It lets users view and update their own identity data, inspect and revoke
their active device sessions, and gives administrators role management over
the newsroom staff. The package depends on the auth package for the User
entity; it owns no credential logic.
*/
package account

import (
	"context"
	"time"

	"github.com/edamedia/eda/internal/platform/sec"
	"github.com/edamedia/eda/internal/users/auth"
	"github.com/edamedia/eda/pkg/pagination"
)

// # Views

// SessionInfo is the transport-safe view of an active session. Token
// hashes never leave the storage layer.
type SessionInfo struct {
	ID        string    `json:"id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	IsCurrent bool      `json:"is_current"`
}

// PublicProfile is the subset of a user account exposed on author bylines.
type PublicProfile struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListFilter narrows the administrative user directory.
type ListFilter struct {
	Role   sec.UserRole // Zero value means all roles.
	Search string       // Matches username or display name.
	pagination.Params
}

// # Repository Contracts

// AccountRepository is the persistence contract for account directory
// operations. Lookup and mutation of single accounts reuses the auth
// package's repository.
type AccountRepository interface {
	FindByID(context context.Context, id string) (*auth.User, error)
	Update(context context.Context, user *auth.User) error
	SoftDelete(context context.Context, id string) error

	// List returns a page of accounts plus the total match count.
	List(context context.Context, filter ListFilter) ([]auth.User, int, error)

	// UpdateRole changes an account's role.
	UpdateRole(context context.Context, userID string, role sec.UserRole) error
}

// SessionRepository is the visibility and revocation contract for the
// session security endpoints. Revocations are always scoped to the owning
// user so one account can never touch another's sessions. The current
// session is identified by the hash of the refresh token on the request,
// since session IDs are never handed to browsers.
type SessionRepository interface {
	FindActiveByUserID(context context.Context, userID, currentTokenHash string) ([]SessionInfo, error)
	Revoke(context context.Context, userID, sessionID string) error
	RevokeOthers(context context.Context, userID, currentTokenHash string) error
	RevokeAll(context context.Context, userID string) error
}

// # Field Identifiers

const (
	FieldDisplayName = "display_name"
	FieldBio         = "bio"
	FieldAvatarURL   = "avatar_url"
	FieldRole        = "role"
)
