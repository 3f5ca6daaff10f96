// Copyright (c) 2026 Eda Media. All rights reserved.

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	FindByID(context context.Context, id string) (*User, error)
	FindByEmail(context context.Context, email string) (*User, error)
	FindByUsername(context context.Context, username string) (*User, error)
	Create(context context.Context, user *User) error
	Update(context context.Context, user *User) error
	UpdatePassword(context context.Context, userID, newHash string) error
	MarkVerified(context context.Context, userID string) error
	SoftDelete(context context.Context, id string) error
}

// # Session Data Access

// SessionRepository is the persistence contract for refresh-token sessions.
type SessionRepository interface {
	Create(context context.Context, session *Session) error

	// FindByTokenHash returns the matching session only while it is
	// unexpired and unrevoked.
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	Revoke(context context.Context, sessionID string) error
	RevokeAll(context context.Context, userID string) error

	// RevokeOthers revokes every session of userID except currentSessionID.
	RevokeOthers(context context.Context, userID, currentSessionID string) error

	// DeleteExpired physically removes sessions past their expiry.
	DeleteExpired(context context.Context) error
}

// # Volatile Data Access

// TokenStore is the contract for short-lived tokens (password reset, email
// verification) mapping token -> userID with a TTL.
type TokenStore interface {
	Set(context context.Context, token string, userID string, ttl time.Duration) error

	// Get returns the userID for token, or a NotFound error when the token
	// is absent or expired.
	Get(context context.Context, token string) (string, error)

	Delete(context context.Context, token string) error
}
