// Copyright (c) 2026 Eda Media. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edamedia/eda/internal/platform/ctxutil"
	"github.com/edamedia/eda/internal/platform/sec"
)

/*
TestRequestID_RoundTrip verifies storage and retrieval of the correlation ID.
*/
func TestRequestID_RoundTrip(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestLogger_FallsBackToDefault verifies that a context without an attached
logger yields the process-wide default instead of nil.
*/
func TestLogger_FallsBackToDefault(t *testing.T) {
	logger := ctxutil.GetLogger(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, slog.Default(), logger)
}

/*
TestLogger_RoundTrip verifies storage and retrieval of a request-scoped logger.
*/
func TestLogger_RoundTrip(t *testing.T) {
	custom := slog.Default().With(slog.String("request_id", "abc"))
	ctx := ctxutil.WithLogger(context.Background(), custom)

	assert.Same(t, custom, ctxutil.GetLogger(ctx))
}

/*
TestAuthUser_RoundTrip verifies storage and retrieval of auth claims,
and the nil result for anonymous contexts.
*/
func TestAuthUser_RoundTrip(t *testing.T) {
	assert.Nil(t, ctxutil.GetAuthUser(context.Background()))

	claims := &sec.AuthClaims{UserID: "u1", Username: "ana", Role: sec.RoleEditor}
	ctx := ctxutil.WithAuthUser(context.Background(), claims)

	got := ctxutil.GetAuthUser(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, sec.RoleEditor, got.Role)
}
