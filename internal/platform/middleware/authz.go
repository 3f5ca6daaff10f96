// Copyright (c) 2026 Eda Media. All rights reserved.

package middleware

import (
	"net/http"
	"strings"

	"github.com/edamedia/eda/internal/platform/constants"
	"github.com/edamedia/eda/internal/platform/ctxutil"
	"github.com/edamedia/eda/internal/platform/sec"
)

// # Authentication & Authorization

// TokenVerifier abstracts the JWT validation capability needed by the
// authentication middleware.
type TokenVerifier interface {
	VerifyAccessToken(tokenString string) (*sec.AuthClaims, error)
}

// Authenticate parses the Authorization header and, when a valid bearer
// token is present, attaches the resulting claims to the request context.
//
// It never rejects requests on its own: anonymous requests continue
// unauthenticated, and route-level guards decide whether that is allowed.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Extract the bearer token from the Authorization header
			authHeader := request.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			tokenString, found := strings.CutPrefix(authHeader, constants.AuthHeaderPrefix)
			if !found || tokenString == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// 2. Verify the token signature and expiry
			claims, err := verifier.VerifyAccessToken(tokenString)
			if err != nil {
				// A present-but-invalid token is rejected immediately so the
				// client learns its session is stale.
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
				return
			}

			// 3. Attach the verified identity to the request context
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that carry no authenticated identity.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			if ctxutil.GetAuthUser(request.Context()) == nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// RequireRole rejects authenticated requests whose role is below the
// given minimum. It implies RequireAuth.
func RequireRole(minimum sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}

			if !claims.Role.AtLeast(minimum) {
				writeError(writer, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
