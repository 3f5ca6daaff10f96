// Copyright (c) 2026 Eda Media. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/sec"
	"github.com/edamedia/eda/internal/platform/validate"
	"github.com/edamedia/eda/pkg/uuid"
)

// TokenProvider is the JWT signing capability consumed by this service.
type TokenProvider interface {
	GenerateAccessToken(userID, username string, role sec.UserRole, timeToLive time.Duration) (string, error)
}

// Service implements the authentication use cases.
//
// # Review Process
//
// Changes to hashing, registration, or login logic are security-sensitive
// and require a second reviewer.
type Service struct {
	users         UserRepository
	sessions      SessionRepository
	resetTokens   TokenStore
	verifyTokens  TokenStore
	tokenProvider TokenProvider
	logger        *slog.Logger
}

func NewService(
	users UserRepository,
	sessions SessionRepository,
	resetTokens TokenStore,
	verifyTokens TokenStore,
	tokenProvider TokenProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:         users,
		sessions:      sessions,
		resetTokens:   resetTokens,
		verifyTokens:  verifyTokens,
		tokenProvider: tokenProvider,
		logger:        logger,
	}
}

// # Registration

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// Register validates, hashes, and persists a new user account, and seeds
// an email-verification token in Redis.
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).MinLen(FieldUsername, input.Username, 3).MaxLen(FieldUsername, input.Username, 30)
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password).MinLen(FieldPassword, input.Password, 8)
	validator.MaxLen(FieldDisplayName, input.DisplayName, 100)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Uniqueness checks return client-safe conflicts before hashing work.
	if _, err := service.users.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if _, err := service.users.FindByUsername(context, input.Username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth: password hashing failed: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		DisplayName:  input.DisplayName,
		Role:         sec.RoleMember,
		IsVerified:   false,
	}

	if err := service.users.Create(context, user); err != nil {
		return nil, err
	}

	// Verification token is best effort; registration does not fail when
	// Redis is briefly unavailable.
	token, err := sec.GenerateSecureToken(SecureTokenLength)
	if err == nil {
		_ = service.verifyTokens.Set(context, token, user.ID, VerificationTokenTTL)
		// TODO: hand the verification link to the transactional mail worker
	}

	service.logger.Info("user_registered", slog.String("user_id", user.ID), slog.String("username", user.Username))
	return user, nil
}

// # Login & Sessions

// LoginInput defines credentials for an authentication attempt. Login
// accepts either the username or the email address.
type LoginInput struct {
	Login     string `json:"login"`
	Password  string `json:"password"`
	UserAgent string `json:"-"`
	IPAddress string `json:"-"`
}

// LoginSession is a successfully established session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

// Login validates credentials and issues an access/refresh token pair.
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	user, err := service.users.FindByEmail(context, input.Login)
	if err != nil {
		user, err = service.users.FindByUsername(context, input.Login)
	}

	// Generic message on both failures to prevent account enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.issueSession(context, user, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_logged_in", slog.String("user_id", user.ID))
	return session, nil
}

// Logout revokes the session behind refreshToken. Unknown tokens are
// treated as success so logout stays idempotent.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	session, err := service.sessions.FindByTokenHash(context, sec.HashToken(refreshToken))
	if err != nil {
		return nil
	}

	if err := service.sessions.Revoke(context, session.ID); err != nil {
		return fmt.Errorf("auth: logout revocation failed: %w", err)
	}
	return nil
}

// RefreshSession rotates a refresh token: the presented token is revoked
// and a fresh pair is issued, so a replayed token is always dead.
func (service *Service) RefreshSession(context context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	session, err := service.sessions.FindByTokenHash(context, sec.HashToken(refreshToken))
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	if err := service.sessions.Revoke(context, session.ID); err != nil {
		return nil, fmt.Errorf("auth: refresh revocation failed: %w", err)
	}

	user, err := service.users.FindByID(context, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("User not found or suspended")
	}

	return service.issueSession(context, user, userAgent, ipAddress)
}

// issueSession signs an access token and persists a new refresh session.
func (service *Service) issueSession(context context.Context, user *User, userAgent, ipAddress string) (*LoginSession, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, user.Role, AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth: access token signing failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(SecureTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth: refresh token generation failed: %w", err)
	}

	expiresAt := time.Now().Add(RefreshTokenTTL)
	session := &Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: sec.HashToken(refreshToken),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: expiresAt,
	}

	if err := service.sessions.Create(context, session); err != nil {
		return nil, err
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		User:                  user,
	}, nil
}

// # Password Recovery

// RequestPasswordReset starts the forgot-password flow and returns the
// reset token. Unknown emails return an empty token and no error to
// prevent account enumeration.
func (service *Service) RequestPasswordReset(context context.Context, email string) (string, error) {
	user, err := service.users.FindByEmail(context, email)
	if err != nil {
		return "", nil
	}

	token, err := sec.GenerateSecureToken(SecureTokenLength)
	if err != nil {
		return "", fmt.Errorf("auth: reset token generation failed: %w", err)
	}

	if err := service.resetTokens.Set(context, token, user.ID, ResetTokenTTL); err != nil {
		return "", err
	}

	return token, nil
}

// ResetPassword completes the forgot-password flow and revokes every
// active session of the account.
func (service *Service) ResetPassword(context context.Context, token, newPassword string) error {
	validator := &validate.Validator{}
	validator.Required(FieldNewPassword, newPassword).MinLen(FieldNewPassword, newPassword, 8)
	if err := validator.Err(); err != nil {
		return err
	}

	userID, err := service.resetTokens.Get(context, token)
	if err != nil {
		return err
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth: password hashing failed: %w", err)
	}

	if err := service.users.UpdatePassword(context, userID, hashedPassword); err != nil {
		return err
	}

	_ = service.sessions.RevokeAll(context, userID)
	_ = service.resetTokens.Delete(context, token)

	service.logger.Info("password_reset_completed", slog.String("user_id", userID))
	return nil
}

// ChangePassword updates the credentials of an authenticated user and
// revokes every OTHER session, forcing re-login on other devices.
func (service *Service) ChangePassword(context context.Context, userID, currentPassword, newPassword, currentRefreshToken string) error {
	validator := &validate.Validator{}
	validator.Required(FieldNewPassword, newPassword).MinLen(FieldNewPassword, newPassword, 8)
	if err := validator.Err(); err != nil {
		return err
	}

	user, err := service.users.FindByID(context, userID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth: password hashing failed: %w", err)
	}

	if err := service.users.UpdatePassword(context, userID, hashedPassword); err != nil {
		return err
	}

	session, err := service.sessions.FindByTokenHash(context, sec.HashToken(currentRefreshToken))
	if err == nil {
		_ = service.sessions.RevokeOthers(context, userID, session.ID)
	}

	return nil
}

// # Email Verification

// VerifyEmail confirms an account's email address using the token sent at
// registration time.
func (service *Service) VerifyEmail(context context.Context, token string) error {
	userID, err := service.verifyTokens.Get(context, token)
	if err != nil {
		return err
	}

	if err := service.users.MarkVerified(context, userID); err != nil {
		return err
	}

	_ = service.verifyTokens.Delete(context, token)

	service.logger.Info("email_verified", slog.String("user_id", userID))
	return nil
}
