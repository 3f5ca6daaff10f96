// Copyright (c) 2026 Eda Media. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/users/auth"
)

func newTokenStore(t *testing.T) (*auth.RedisTokenStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return auth.NewResetTokenStore(client), server
}

/*
TestTokenStore_RoundTrip verifies that a stored token resolves back to its
user ID and that deletion invalidates it.
*/
func TestTokenStore_RoundTrip(t *testing.T) {
	store, _ := newTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok-abc", "user-1", time.Minute))

	userID, err := store.Get(ctx, "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	require.NoError(t, store.Delete(ctx, "tok-abc"))

	_, err = store.Get(ctx, "tok-abc")
	assert.ErrorContains(t, err, "invalid or expired")
}

/*
TestTokenStore_Expiry verifies that tokens disappear once their TTL
elapses, using miniredis's virtual clock.
*/
func TestTokenStore_Expiry(t *testing.T) {
	store, server := newTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok-ttl", "user-2", time.Minute))

	server.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "tok-ttl")
	require.Error(t, err)

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

/*
TestTokenStore_UnknownToken verifies the client-safe error for tokens that
were never issued.
*/
func TestTokenStore_UnknownToken(t *testing.T) {
	store, _ := newTokenStore(t)

	_, err := store.Get(context.Background(), "never-issued")

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

/*
TestTokenStore_PrefixIsolation verifies that the reset and verification
stores do not see each other's tokens even on the same Redis instance.
*/
func TestTokenStore_PrefixIsolation(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	resetStore := auth.NewResetTokenStore(client)
	verifyStore := auth.NewVerificationTokenStore(client)
	ctx := context.Background()

	require.NoError(t, resetStore.Set(ctx, "tok-shared", "user-reset", time.Minute))
	require.NoError(t, verifyStore.Set(ctx, "tok-shared", "user-verify", time.Minute))

	resetID, err := resetStore.Get(ctx, "tok-shared")
	require.NoError(t, err)
	verifyID, err := verifyStore.Get(ctx, "tok-shared")
	require.NoError(t, err)

	assert.Equal(t, "user-reset", resetID)
	assert.Equal(t, "user-verify", verifyID)
}
