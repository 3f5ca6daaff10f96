// Copyright (c) 2026 Eda Media. All rights reserved.

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/dberr"
	"github.com/edamedia/eda/internal/platform/sec"
	"github.com/edamedia/eda/internal/users/account"
	"github.com/edamedia/eda/internal/users/auth"
)

// # Stubs

type stubAccountRepository struct {
	users       map[string]*auth.User
	roleChanges map[string]sec.UserRole
}

func newStubAccountRepository(users ...*auth.User) *stubAccountRepository {
	repo := &stubAccountRepository{
		users:       map[string]*auth.User{},
		roleChanges: map[string]sec.UserRole{},
	}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *stubAccountRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *stubAccountRepository) Update(_ context.Context, user *auth.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubAccountRepository) SoftDelete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubAccountRepository) List(_ context.Context, _ account.ListFilter) ([]auth.User, int, error) {
	users := []auth.User{}
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, len(users), nil
}

func (r *stubAccountRepository) UpdateRole(_ context.Context, userID string, role sec.UserRole) error {
	user, ok := r.users[userID]
	if !ok {
		return dberr.ErrNotFound
	}
	user.Role = role
	r.roleChanges[userID] = role
	return nil
}

type stubSessionRepository struct {
	revokedAllFor string
}

func (r *stubSessionRepository) FindActiveByUserID(_ context.Context, _, _ string) ([]account.SessionInfo, error) {
	return nil, nil
}
func (r *stubSessionRepository) Revoke(_ context.Context, _, _ string) error        { return nil }
func (r *stubSessionRepository) RevokeOthers(_ context.Context, _, _ string) error  { return nil }
func (r *stubSessionRepository) RevokeAll(_ context.Context, userID string) error {
	r.revokedAllFor = userID
	return nil
}

func newService(accounts account.AccountRepository, sessions account.SessionRepository) *account.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return account.NewService(accounts, sessions, logger)
}

// # Tests

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	repo := newStubAccountRepository(&auth.User{
		ID:          "u1",
		Username:    "mariana",
		DisplayName: "Mariana",
		Bio:         "Editora de saude",
	})
	service := newService(repo, &stubSessionRepository{})

	newName := "Mariana Prado"
	updated, err := service.UpdateProfile(context.Background(), "u1", account.UpdateProfileInput{
		DisplayName: &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, "Mariana Prado", updated.DisplayName)
	// Fields not present in the input stay untouched.
	assert.Equal(t, "Editora de saude", updated.Bio)
}

func TestUpdateProfile_Validation(t *testing.T) {
	repo := newStubAccountRepository(&auth.User{ID: "u1"})
	service := newService(repo, &stubSessionRepository{})

	badURL := "not a url"
	_, err := service.UpdateProfile(context.Background(), "u1", account.UpdateProfileInput{
		AvatarURL: &badURL,
	})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

/*
TestDeleteAccount verifies that deletion revokes every session so the
account is signed out everywhere at once.
*/
func TestDeleteAccount(t *testing.T) {
	repo := newStubAccountRepository(&auth.User{ID: "u1"})
	sessions := &stubSessionRepository{}
	service := newService(repo, sessions)

	require.NoError(t, service.DeleteAccount(context.Background(), "u1"))
	assert.Equal(t, "u1", sessions.revokedAllFor)
}

func TestGetPublicProfile_OmitsPrivateFields(t *testing.T) {
	repo := newStubAccountRepository(&auth.User{
		ID:       "u1",
		Username: "mariana",
		Email:    "mariana@example.com",
		Role:     sec.RoleEditor,
	})
	service := newService(repo, &stubSessionRepository{})

	profile, err := service.GetPublicProfile(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "mariana", profile.Username)
	// The public DTO has no email or role fields at all; spot-check identity.
	assert.Equal(t, "u1", profile.ID)
}

func TestChangeRole(t *testing.T) {
	repo := newStubAccountRepository(
		&auth.User{ID: "admin-1", Role: sec.RoleAdmin},
		&auth.User{ID: "u2", Role: sec.RoleMember},
	)
	service := newService(repo, &stubSessionRepository{})

	require.NoError(t, service.ChangeRole(context.Background(), "admin-1", "u2", sec.RoleAuthor))
	assert.Equal(t, sec.RoleAuthor, repo.roleChanges["u2"])
}

func TestChangeRole_Guards(t *testing.T) {
	repo := newStubAccountRepository(&auth.User{ID: "admin-1", Role: sec.RoleAdmin})
	service := newService(repo, &stubSessionRepository{})

	t.Run("self change forbidden", func(t *testing.T) {
		err := service.ChangeRole(context.Background(), "admin-1", "admin-1", sec.RoleMember)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		err := service.ChangeRole(context.Background(), "admin-1", "u2", sec.UserRole("superuser"))
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}
