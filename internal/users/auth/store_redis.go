// Copyright (c) 2026 Eda Media. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edamedia/eda/internal/platform/apperr"
	"github.com/edamedia/eda/internal/platform/constants"
)

// # Volatile Token Store

// RedisTokenStore implements [TokenStore] on Redis. The key prefix keeps
// reset and verification tokens in separate namespaces, so one store type
// serves both flows.
type RedisTokenStore struct {
	client *redis.Client
	prefix string
}

// NewResetTokenStore creates the Redis store for password-reset tokens.
func NewResetTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client, prefix: constants.RedisPrefixResetToken}
}

// NewVerificationTokenStore creates the Redis store for email-verification tokens.
func NewVerificationTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client, prefix: constants.RedisPrefixVerifyToken}
}

func (store *RedisTokenStore) key(token string) string {
	return store.prefix + token
}

// Set stores token -> userID with the given TTL.
func (store *RedisTokenStore) Set(context context.Context, token string, userID string, ttl time.Duration) error {
	if err := store.client.Set(context, store.key(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("auth: token store set failed: %w", err)
	}
	return nil
}

// Get returns the userID for token. Absent or expired tokens map to a
// client-safe NotFound error.
func (store *RedisTokenStore) Get(context context.Context, token string) (string, error) {
	userID, err := store.client.Get(context, store.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Token is invalid or expired")
		}
		return "", fmt.Errorf("auth: token store get failed: %w", err)
	}
	return userID, nil
}

// Delete removes a consumed token.
func (store *RedisTokenStore) Delete(context context.Context, token string) error {
	if err := store.client.Del(context, store.key(token)).Err(); err != nil {
		return fmt.Errorf("auth: token store delete failed: %w", err)
	}
	return nil
}
