// Copyright (c) 2026 Eda Media. All rights reserved.

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/sec"
	"github.com/edamedia/eda/internal/platform/validate"
	"github.com/edamedia/eda/internal/users/auth"
)

// # Service Layer

// Service orchestrates profile, session-security, and directory use cases.
type Service struct {
	accounts AccountRepository
	sessions SessionRepository
	logger   *slog.Logger
}

func NewService(accounts AccountRepository, sessions SessionRepository, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		sessions: sessions,
		logger:   logger,
	}
}

// # Profile Management

// GetProfile retrieves the full private identity of a user.
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	return service.accounts.FindByID(context, userID)
}

// GetPublicProfile retrieves the byline view of a user for public pages.
func (service *Service) GetPublicProfile(context context.Context, userID string) (*PublicProfile, error) {
	user, err := service.accounts.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	return &PublicProfile{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Bio:         user.Bio,
		AvatarURL:   user.AvatarURL,
		CreatedAt:   user.CreatedAt,
	}, nil
}

// UpdateProfileInput defines the mutable subset of profile fields. Nil
// pointers mean "leave unchanged".
type UpdateProfileInput struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
}

// UpdateProfile applies a partial set of changes to a user's profile.
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*auth.User, error) {
	validator := &validate.Validator{}
	if input.DisplayName != nil {
		validator.MinLen(FieldDisplayName, *input.DisplayName, 2).MaxLen(FieldDisplayName, *input.DisplayName, 100)
	}
	if input.Bio != nil {
		validator.MaxLen(FieldBio, *input.Bio, 500)
	}
	if input.AvatarURL != nil && *input.AvatarURL != "" {
		validator.URL(FieldAvatarURL, *input.AvatarURL)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.accounts.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}

	if err := service.accounts.Update(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", userID))
	return user, nil
}

// DeleteAccount soft-deletes an account and terminates every active
// session, forcing a global sign-out.
func (service *Service) DeleteAccount(context context.Context, userID string) error {
	if err := service.accounts.SoftDelete(context, userID); err != nil {
		return err
	}

	_ = service.sessions.RevokeAll(context, userID)

	service.logger.Warn("user_account_deleted", slog.String("user_id", userID))
	return nil
}

// # Session Security

// ListSessions lists all active device sessions for a user. The session
// matching currentTokenHash (if any) is flagged IsCurrent.
func (service *Service) ListSessions(context context.Context, userID, currentTokenHash string) ([]SessionInfo, error) {
	sessions, err := service.sessions.FindActiveByUserID(context, userID, currentTokenHash)
	if err != nil {
		return nil, fmt.Errorf("account: list sessions failed: %w", err)
	}
	return sessions, nil
}

// RevokeSession terminates one session owned by the user.
func (service *Service) RevokeSession(context context.Context, userID, sessionID string) error {
	if err := service.sessions.Revoke(context, userID, sessionID); err != nil {
		return err
	}

	service.logger.Info("user_session_revoked",
		slog.String("user_id", userID),
		slog.String("session_id", sessionID),
	)
	return nil
}

// RevokeOtherSessions terminates all of a user's sessions except the one
// making the request.
func (service *Service) RevokeOtherSessions(context context.Context, userID, currentTokenHash string) error {
	if err := service.sessions.RevokeOthers(context, userID, currentTokenHash); err != nil {
		return err
	}

	service.logger.Info("user_other_sessions_revoked", slog.String("user_id", userID))
	return nil
}

// # Administrative Directory

// ListUsers returns a page of accounts for the admin user directory.
func (service *Service) ListUsers(context context.Context, filter ListFilter) ([]auth.User, int, error) {
	return service.accounts.List(context, filter)
}

// ChangeRole updates the authorization level of a target account. Actors
// cannot change their own role, so an instance always keeps at least the
// admin performing the change.
func (service *Service) ChangeRole(context context.Context, actorID, targetID string, role sec.UserRole) error {
	validator := &validate.Validator{}
	validator.OneOf(FieldRole, string(role),
		string(sec.RoleAdmin), string(sec.RoleEditor), string(sec.RoleAuthor), string(sec.RoleMember),
	)
	if err := validator.Err(); err != nil {
		return err
	}

	if actorID == targetID {
		return apperr.Forbidden("You cannot change your own role")
	}

	if err := service.accounts.UpdateRole(context, targetID, role); err != nil {
		return err
	}

	service.logger.Info("user_role_changed",
		slog.String("actor_id", actorID),
		slog.String("user_id", targetID),
		slog.String("role", string(role)),
	)
	return nil
}
