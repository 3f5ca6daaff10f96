// Copyright (c) 2026 Eda Media. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edamedia/eda/internal/platform/database/schema"
	"github.com/edamedia/eda/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// userColumns is the scan list shared by every account lookup.
var userColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
	schema.UsersAccount.ID, schema.UsersAccount.Username, schema.UsersAccount.Email,
	schema.UsersAccount.PasswordHash, schema.UsersAccount.DisplayName, schema.UsersAccount.Bio,
	schema.UsersAccount.AvatarURL, schema.UsersAccount.Role, schema.UsersAccount.IsVerified,
	schema.UsersAccount.CreatedAt, schema.UsersAccount.UpdatedAt,
)

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email,
		&user.PasswordHash, &user.DisplayName, &user.Bio,
		&user.AvatarURL, &user.Role, &user.IsVerified,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (repository *PostgresUserRepository) findBy(context context.Context, column string, value string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		userColumns, schema.UsersAccount.Table, column, schema.UsersAccount.DeletedAt,
	)

	user, err := scanUser(repository.pool.QueryRow(context, query, value))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user")
	}
	return user, nil
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	return repository.findBy(context, schema.UsersAccount.ID, id)
}

func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findBy(context, schema.UsersAccount.Email, email)
}

func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findBy(context, schema.UsersAccount.Username, username)
}

func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW(), true)
		RETURNING %s, %s
	`,
		schema.UsersAccount.Table,
		schema.UsersAccount.ID, schema.UsersAccount.Username, schema.UsersAccount.Email,
		schema.UsersAccount.PasswordHash, schema.UsersAccount.DisplayName, schema.UsersAccount.Role,
		schema.UsersAccount.CreatedAt, schema.UsersAccount.UpdatedAt, schema.UsersAccount.IsActive,
		schema.UsersAccount.CreatedAt, schema.UsersAccount.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		user.ID, user.Username, user.Email,
		user.PasswordHash, user.DisplayName, user.Role,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresUserRepository) Update(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.UsersAccount.Table,
		schema.UsersAccount.DisplayName, schema.UsersAccount.Bio, schema.UsersAccount.AvatarURL,
		schema.UsersAccount.UpdatedAt,
		schema.UsersAccount.ID, schema.UsersAccount.DeletedAt,
		schema.UsersAccount.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, user.ID, user.DisplayName, user.Bio, user.AvatarURL).Scan(&user.UpdatedAt)
	return dberr.Wrap(err, "update_user")
}

func (repository *PostgresUserRepository) UpdatePassword(context context.Context, userID, newHash string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.UsersAccount.Table, schema.UsersAccount.PasswordHash, schema.UsersAccount.UpdatedAt,
		schema.UsersAccount.ID, schema.UsersAccount.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, userID, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_password")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresUserRepository) MarkVerified(context context.Context, userID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = true, %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.UsersAccount.Table, schema.UsersAccount.IsVerified, schema.UsersAccount.UpdatedAt,
		schema.UsersAccount.ID, schema.UsersAccount.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, userID)
	if err != nil {
		return dberr.Wrap(err, "mark_verified")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresUserRepository) SoftDelete(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.UsersAccount.Table, schema.UsersAccount.DeletedAt,
		schema.UsersAccount.ID, schema.UsersAccount.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "soft_delete_user")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Session Repository

// PostgresSessionRepository implements [SessionRepository] using pgx.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

func (repository *PostgresSessionRepository) Create(context context.Context, session *Session) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s
	`,
		schema.UsersSession.Table,
		schema.UsersSession.ID, schema.UsersSession.UserID, schema.UsersSession.TokenHash,
		schema.UsersSession.UserAgent, schema.UsersSession.IP, schema.UsersSession.ExpiresAt,
		schema.UsersSession.CreatedAt,
		schema.UsersSession.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		session.ID, session.UserID, session.TokenHash,
		session.UserAgent, session.IPAddress, session.ExpiresAt,
	).Scan(&session.CreatedAt)

	return dberr.Wrap(err, "create_session")
}

func (repository *PostgresSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL AND %s > NOW()
	`,
		schema.UsersSession.ID, schema.UsersSession.UserID, schema.UsersSession.TokenHash,
		schema.UsersSession.UserAgent, schema.UsersSession.IP, schema.UsersSession.ExpiresAt,
		schema.UsersSession.CreatedAt,
		schema.UsersSession.Table,
		schema.UsersSession.TokenHash, schema.UsersSession.RevokedAt, schema.UsersSession.ExpiresAt,
	)

	session := &Session{}
	var expiresAt, createdAt time.Time
	err := repository.pool.QueryRow(context, query, tokenHash).Scan(
		&session.ID, &session.UserID, &session.TokenHash,
		&session.UserAgent, &session.IPAddress, &expiresAt, &createdAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_session")
	}

	session.ExpiresAt = expiresAt
	session.CreatedAt = createdAt
	return session, nil
}

func (repository *PostgresSessionRepository) Revoke(context context.Context, sessionID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.UsersSession.Table, schema.UsersSession.RevokedAt,
		schema.UsersSession.ID, schema.UsersSession.RevokedAt,
	)

	_, err := repository.pool.Exec(context, query, sessionID)
	return dberr.Wrap(err, "revoke_session")
}

func (repository *PostgresSessionRepository) RevokeAll(context context.Context, userID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.UsersSession.Table, schema.UsersSession.RevokedAt,
		schema.UsersSession.UserID, schema.UsersSession.RevokedAt,
	)

	_, err := repository.pool.Exec(context, query, userID)
	return dberr.Wrap(err, "revoke_all_sessions")
}

func (repository *PostgresSessionRepository) RevokeOthers(context context.Context, userID, currentSessionID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s <> $2 AND %s IS NULL`,
		schema.UsersSession.Table, schema.UsersSession.RevokedAt,
		schema.UsersSession.UserID, schema.UsersSession.ID, schema.UsersSession.RevokedAt,
	)

	_, err := repository.pool.Exec(context, query, userID, currentSessionID)
	return dberr.Wrap(err, "revoke_other_sessions")
}

func (repository *PostgresSessionRepository) DeleteExpired(context context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s <= NOW()`,
		schema.UsersSession.Table, schema.UsersSession.ExpiresAt,
	)

	_, err := repository.pool.Exec(context, query)
	return dberr.Wrap(err, "delete_expired_sessions")
}
