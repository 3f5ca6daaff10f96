// Copyright (c) 2026 Eda Media. All rights reserved.

/*
Package auth implements identity and session management for the Eda API.

It covers registration, credential login, refresh-token rotation, password
recovery, and email verification. Persistent identities live in PostgreSQL;
volatile recovery and verification tokens live in Redis with a TTL.

# Architecture

  - Service: orchestrates the authentication use cases.
  - Repositories: domain-defined interfaces backed by Postgres (accounts,
    sessions) and Redis (volatile tokens).
  - sec: bcrypt password hashing and RS256 JWT signing.
*/
package auth

import (
	"time"

	"github.com/edamedia/eda/internal/platform/sec"
)

// # Domain Entities

// User represents a registered account on the Eda platform.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Never serialized.
	DisplayName  string       `json:"display_name"`
	Bio          string       `json:"bio,omitempty"`
	AvatarURL    string       `json:"avatar_url,omitempty"`
	Role         sec.UserRole `json:"role"`
	IsVerified   bool         `json:"is_verified"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Session represents an active refresh-token session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"` // SHA-256 of the refresh token. Never serialized.
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	IsRevoked bool      `json:"is_revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation in the authentication domain.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldDisplayName     = "display_name"
	FieldLogin           = "login"
	FieldToken           = "token"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
)
