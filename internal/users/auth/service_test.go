// Copyright (c) 2026 Eda Media. All rights reserved.

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/dberr"
	"github.com/edamedia/eda/internal/platform/sec"
	"github.com/edamedia/eda/internal/users/auth"
)

// # Stubs

type memoryUserRepository struct {
	users map[string]*auth.User // keyed by ID
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: map[string]*auth.User{}}
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *auth.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	user, ok := r.users[userID]
	if !ok {
		return dberr.ErrNotFound
	}
	user.PasswordHash = newHash
	return nil
}

func (r *memoryUserRepository) MarkVerified(_ context.Context, userID string) error {
	user, ok := r.users[userID]
	if !ok {
		return dberr.ErrNotFound
	}
	user.IsVerified = true
	return nil
}

func (r *memoryUserRepository) SoftDelete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type memorySessionRepository struct {
	sessions map[string]*auth.Session // keyed by ID
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{sessions: map[string]*auth.Session{}}
}

func (r *memorySessionRepository) Create(_ context.Context, session *auth.Session) error {
	session.CreatedAt = time.Now()
	r.sessions[session.ID] = session
	return nil
}

func (r *memorySessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	for _, session := range r.sessions {
		if session.TokenHash == tokenHash && !session.IsRevoked && session.ExpiresAt.After(time.Now()) {
			return session, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *memorySessionRepository) Revoke(_ context.Context, sessionID string) error {
	if session, ok := r.sessions[sessionID]; ok {
		session.IsRevoked = true
	}
	return nil
}

func (r *memorySessionRepository) RevokeAll(_ context.Context, userID string) error {
	for _, session := range r.sessions {
		if session.UserID == userID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (r *memorySessionRepository) RevokeOthers(_ context.Context, userID, currentSessionID string) error {
	for _, session := range r.sessions {
		if session.UserID == userID && session.ID != currentSessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (r *memorySessionRepository) DeleteExpired(_ context.Context) error { return nil }

func (r *memorySessionRepository) active(userID string) int {
	count := 0
	for _, session := range r.sessions {
		if session.UserID == userID && !session.IsRevoked {
			count++
		}
	}
	return count
}

type memoryTokenStore struct {
	tokens map[string]string
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: map[string]string{}}
}

func (s *memoryTokenStore) Set(_ context.Context, token, userID string, _ time.Duration) error {
	s.tokens[token] = userID
	return nil
}

func (s *memoryTokenStore) Get(_ context.Context, token string) (string, error) {
	if userID, ok := s.tokens[token]; ok {
		return userID, nil
	}
	return "", apperr.NotFound("Token is invalid or expired")
}

func (s *memoryTokenStore) Delete(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

type staticTokenProvider struct{}

func (staticTokenProvider) GenerateAccessToken(userID, _ string, _ sec.UserRole, _ time.Duration) (string, error) {
	return "jwt-for-" + userID, nil
}

type fixture struct {
	service  *auth.Service
	users    *memoryUserRepository
	sessions *memorySessionRepository
	reset    *memoryTokenStore
	verify   *memoryTokenStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := newMemoryUserRepository()
	sessions := newMemorySessionRepository()
	reset := newMemoryTokenStore()
	verify := newMemoryTokenStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		service:  auth.NewService(users, sessions, reset, verify, staticTokenProvider{}, logger),
		users:    users,
		sessions: sessions,
		reset:    reset,
		verify:   verify,
	}
}

func (f *fixture) registerUser(t *testing.T, username, email, password string) *auth.User {
	t.Helper()

	user, err := f.service.Register(context.Background(), auth.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

// # Registration

/*
TestRegister verifies the happy path: a new account gets a hashed password,
the member role, and a pending verification token.
*/
func TestRegister(t *testing.T) {
	f := newFixture(t)

	user := f.registerUser(t, "mariana", "mariana@example.com", "s3nh4-forte")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, sec.RoleMember, user.Role)
	assert.False(t, user.IsVerified)
	assert.NotEqual(t, "s3nh4-forte", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("s3nh4-forte", user.PasswordHash))
	assert.Len(t, f.verify.tokens, 1)
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)

	testCases := []struct {
		name  string
		input auth.RegisterInput
		field string
	}{
		{
			name:  "short username",
			input: auth.RegisterInput{Username: "ab", Email: "a@b.com", Password: "long-enough"},
			field: "username",
		},
		{
			name:  "invalid email",
			input: auth.RegisterInput{Username: "valid", Email: "not-an-email", Password: "long-enough"},
			field: "email",
		},
		{
			name:  "short password",
			input: auth.RegisterInput{Username: "valid", Email: "a@b.com", Password: "short"},
			field: "password",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.Register(context.Background(), tc.input)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tc.field, appErr.Details[0].Field)
		})
	}
}

func TestRegister_Conflicts(t *testing.T) {
	f := newFixture(t)
	f.registerUser(t, "mariana", "mariana@example.com", "s3nh4-forte")

	_, err := f.service.Register(context.Background(), auth.RegisterInput{
		Username: "outra", Email: "mariana@example.com", Password: "s3nh4-forte",
	})
	assert.ErrorContains(t, err, "Email is already registered")

	_, err = f.service.Register(context.Background(), auth.RegisterInput{
		Username: "mariana", Email: "outra@example.com", Password: "s3nh4-forte",
	})
	assert.ErrorContains(t, err, "Username is already taken")
}

// # Login & Sessions

/*
TestLogin verifies that both email and username are accepted as the login
identifier and that a refresh session is persisted.
*/
func TestLogin(t *testing.T) {
	f := newFixture(t)
	user := f.registerUser(t, "mariana", "mariana@example.com", "s3nh4-forte")

	byEmail, err := f.service.Login(context.Background(), auth.LoginInput{
		Login: "mariana@example.com", Password: "s3nh4-forte",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-for-"+user.ID, byEmail.AccessToken)
	assert.NotEmpty(t, byEmail.RefreshToken)

	byUsername, err := f.service.Login(context.Background(), auth.LoginInput{
		Login: "mariana", Password: "s3nh4-forte",
	})
	require.NoError(t, err)
	assert.NotEqual(t, byEmail.RefreshToken, byUsername.RefreshToken)
	assert.Equal(t, 2, f.sessions.active(user.ID))
}

/*
TestLogin_GenericFailure verifies that unknown accounts and wrong passwords
produce the exact same message, so responses cannot be used to enumerate
registered emails.
*/
func TestLogin_GenericFailure(t *testing.T) {
	f := newFixture(t)
	f.registerUser(t, "mariana", "mariana@example.com", "s3nh4-forte")

	_, unknownErr := f.service.Login(context.Background(), auth.LoginInput{
		Login: "ghost@example.com", Password: "whatever-pass",
	})
	_, wrongErr := f.service.Login(context.Background(), auth.LoginInput{
		Login: "mariana@example.com", Password: "wrong-pass",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

/*
TestRefreshSession verifies refresh-token rotation: the presented token is
revoked and cannot be replayed after the exchange.
*/
func TestRefreshSession(t *testing.T) {
	f := newFixture(t)
	user := f.registerUser(t, "mariana", "mariana@example.com", "s3nh4-forte")

	first, err := f.service.Login(context.Background(), auth.LoginInput{
		Login: "mariana", Password: "s3nh4-forte",
	})
	require.NoError(t, err)

	second, err := f.service.RefreshSession(context.Background(), first.RefreshToken, "agent", "10.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Equal(t, 1, f.sessions.active(user.ID))

	// Replaying the consumed token must fail.
	_, err = f.service.RefreshSession(context.Background(), first.RefreshToken, "agent", "10.0.0.1")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestLogout_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.registerUser(t, "mariana", "mariana@example.com", "s3nh4-forte")

	session, err := f.service.Login(context.Background(), auth.LoginInput{
		Login: "mariana", Password: "s3nh4-forte",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(context.Background(), session.RefreshToken))
	require.NoError(t, f.service.Logout(context.Background(), session.RefreshToken))
	require.NoError(t, f.service.Logout(context.Background(), "never-issued"))
}

// # Password Recovery

/*
TestPasswordResetFlow verifies the full forgot-password path: the issued
token resets the password once, every session is revoked, and the token
cannot be reused.
*/
func TestPasswordResetFlow(t *testing.T) {
	f := newFixture(t)
	user := f.registerUser(t, "mariana", "mariana@example.com", "s3nh4-forte")

	_, err := f.service.Login(context.Background(), auth.LoginInput{
		Login: "mariana", Password: "s3nh4-forte",
	})
	require.NoError(t, err)

	token, err := f.service.RequestPasswordReset(context.Background(), "mariana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, f.service.ResetPassword(context.Background(), token, "nova-s3nh4"))
	assert.Equal(t, 0, f.sessions.active(user.ID))

	_, err = f.service.Login(context.Background(), auth.LoginInput{
		Login: "mariana", Password: "nova-s3nh4",
	})
	require.NoError(t, err)

	err = f.service.ResetPassword(context.Background(), token, "outra-s3nh4")
	assert.ErrorContains(t, err, "invalid or expired")
}

func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	f := newFixture(t)

	token, err := f.service.RequestPasswordReset(context.Background(), "ghost@example.com")

	// No error and no token: the caller cannot tell the email is unknown.
	require.NoError(t, err)
	assert.Empty(t, token)
}

/*
TestChangePassword verifies that changing the password keeps the current
session alive while revoking every other device.
*/
func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	user := f.registerUser(t, "mariana", "mariana@example.com", "s3nh4-forte")

	current, err := f.service.Login(context.Background(), auth.LoginInput{
		Login: "mariana", Password: "s3nh4-forte",
	})
	require.NoError(t, err)
	_, err = f.service.Login(context.Background(), auth.LoginInput{
		Login: "mariana", Password: "s3nh4-forte",
	})
	require.NoError(t, err)

	err = f.service.ChangePassword(context.Background(), user.ID, "s3nh4-forte", "nova-s3nh4", current.RefreshToken)
	require.NoError(t, err)

	assert.Equal(t, 1, f.sessions.active(user.ID))
	assert.True(t, sec.CheckPasswordHash("nova-s3nh4", f.users.users[user.ID].PasswordHash))
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	f := newFixture(t)
	user := f.registerUser(t, "mariana", "mariana@example.com", "s3nh4-forte")

	err := f.service.ChangePassword(context.Background(), user.ID, "wrong-pass", "nova-s3nh4", "any-token")

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

// # Email Verification

func TestVerifyEmail(t *testing.T) {
	f := newFixture(t)
	user := f.registerUser(t, "mariana", "mariana@example.com", "s3nh4-forte")

	var token string
	for issued := range f.verify.tokens {
		token = issued
	}
	require.NotEmpty(t, token)

	require.NoError(t, f.service.VerifyEmail(context.Background(), token))
	assert.True(t, f.users.users[user.ID].IsVerified)

	err := f.service.VerifyEmail(context.Background(), token)
	assert.ErrorContains(t, err, "invalid or expired")
}
