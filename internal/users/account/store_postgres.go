// Copyright (c) 2026 Eda Media. All rights reserved.

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edamedia/eda/internal/platform/database/schema"
	"github.com/edamedia/eda/internal/platform/dberr"
	"github.com/edamedia/eda/internal/platform/sec"
	"github.com/edamedia/eda/internal/users/auth"
)

// # Account Repository

// PostgresAccountRepository implements [AccountRepository]. Single-account
// lookup and mutation are delegated to the auth package's repository; this
// type adds the directory queries on top.
type PostgresAccountRepository struct {
	*auth.PostgresUserRepository
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{
		PostgresUserRepository: auth.NewUserRepository(pool),
		pool:                   pool,
	}
}

func (repository *PostgresAccountRepository) List(context context.Context, filter ListFilter) ([]auth.User, int, error) {
	where := fmt.Sprintf("%s IS NULL", schema.UsersAccount.DeletedAt)
	args := []any{}

	if filter.Role != "" {
		args = append(args, filter.Role)
		where += fmt.Sprintf(" AND %s = $%d", schema.UsersAccount.Role, len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND (%s ILIKE $%d OR %s ILIKE $%d)",
			schema.UsersAccount.Username, len(args), schema.UsersAccount.DisplayName, len(args),
		)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, schema.UsersAccount.Table, where)

	var total int
	if err := repository.pool.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_users")
	}

	args = append(args, filter.Limit, filter.Offset())
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d
	`,
		schema.UsersAccount.ID, schema.UsersAccount.Username, schema.UsersAccount.Email,
		schema.UsersAccount.DisplayName, schema.UsersAccount.Bio, schema.UsersAccount.AvatarURL,
		schema.UsersAccount.Role, schema.UsersAccount.IsVerified, schema.UsersAccount.CreatedAt,
		schema.UsersAccount.Table,
		where,
		schema.UsersAccount.CreatedAt,
		len(args)-1, len(args),
	)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := []auth.User{}
	for rows.Next() {
		var user auth.User
		err := rows.Scan(
			&user.ID, &user.Username, &user.Email,
			&user.DisplayName, &user.Bio, &user.AvatarURL,
			&user.Role, &user.IsVerified, &user.CreatedAt,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}

	return users, total, dberr.Wrap(rows.Err(), "list_users")
}

func (repository *PostgresAccountRepository) UpdateRole(context context.Context, userID string, role sec.UserRole) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.UsersAccount.Table, schema.UsersAccount.Role, schema.UsersAccount.UpdatedAt,
		schema.UsersAccount.ID, schema.UsersAccount.DeletedAt,
	)

	cmd, err := repository.pool.Exec(context, query, userID, role)
	if err != nil {
		return dberr.Wrap(err, "update_role")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Session Repository

// PostgresSessionRepository implements [SessionRepository]. Every query is
// scoped by user ID so revocation cannot cross account boundaries.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

func (repository *PostgresSessionRepository) FindActiveByUserID(context context.Context, userID, currentTokenHash string) ([]SessionInfo, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, (%s = $2) AS iscurrent
		FROM %s
		WHERE %s = $1 AND %s IS NULL AND %s > NOW()
		ORDER BY %s DESC
	`,
		schema.UsersSession.ID, schema.UsersSession.UserAgent, schema.UsersSession.IP,
		schema.UsersSession.CreatedAt, schema.UsersSession.ExpiresAt, schema.UsersSession.TokenHash,
		schema.UsersSession.Table,
		schema.UsersSession.UserID, schema.UsersSession.RevokedAt, schema.UsersSession.ExpiresAt,
		schema.UsersSession.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, userID, currentTokenHash)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sessions")
	}
	defer rows.Close()

	sessions := []SessionInfo{}
	for rows.Next() {
		var session SessionInfo
		err := rows.Scan(&session.ID, &session.UserAgent, &session.IPAddress, &session.CreatedAt, &session.ExpiresAt, &session.IsCurrent)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_session")
		}
		sessions = append(sessions, session)
	}

	return sessions, dberr.Wrap(rows.Err(), "list_sessions")
}

func (repository *PostgresSessionRepository) Revoke(context context.Context, userID, sessionID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s = $2 AND %s IS NULL`,
		schema.UsersSession.Table, schema.UsersSession.RevokedAt,
		schema.UsersSession.ID, schema.UsersSession.UserID, schema.UsersSession.RevokedAt,
	)

	cmd, err := repository.pool.Exec(context, query, sessionID, userID)
	if err != nil {
		return dberr.Wrap(err, "revoke_session")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresSessionRepository) RevokeOthers(context context.Context, userID, currentTokenHash string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s <> $2 AND %s IS NULL`,
		schema.UsersSession.Table, schema.UsersSession.RevokedAt,
		schema.UsersSession.UserID, schema.UsersSession.TokenHash, schema.UsersSession.RevokedAt,
	)

	_, err := repository.pool.Exec(context, query, userID, currentTokenHash)
	return dberr.Wrap(err, "revoke_other_sessions")
}

func (repository *PostgresSessionRepository) RevokeAll(context context.Context, userID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.UsersSession.Table, schema.UsersSession.RevokedAt,
		schema.UsersSession.UserID, schema.UsersSession.RevokedAt,
	)

	_, err := repository.pool.Exec(context, query, userID)
	return dberr.Wrap(err, "revoke_all_sessions")
}
