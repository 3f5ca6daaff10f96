// Copyright (c) 2026 Eda Media. All rights reserved.

package auth

import "time"

// # Token Lifetimes

const (
	// AccessTokenTTL keeps JWTs short-lived to limit leaked-token impact.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is the session lifetime before a re-login is required.
	RefreshTokenTTL = 30 * 24 * time.Hour

	// ResetTokenTTL bounds the password-recovery window.
	ResetTokenTTL = 1 * time.Hour

	// VerificationTokenTTL gives users a day to confirm their email.
	VerificationTokenTTL = 24 * time.Hour
)

// # Token Sizes

const (
	// SecureTokenLength is the byte length of random refresh, reset, and
	// verification tokens before hex encoding.
	SecureTokenLength = 32
)
