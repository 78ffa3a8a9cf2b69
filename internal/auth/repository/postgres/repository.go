package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/develop-free/server-site/internal/auth/domain"
	apperr "github.com/develop-free/server-site/internal/errors"
)

const uniqueViolationCode = "23505"

// DB is the subset of pgxpool.Pool the repository needs. Satisfied by
// pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, login, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Login, user.Email, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperr.ErrDuplicateIdentity
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByLoginOrEmail is the credential-path lookup: a single round trip that
// matches either identifier and includes the password hash.
func (r *UserRepository) GetByLoginOrEmail(ctx context.Context, login, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, login, email, password_hash, role, created_at
		FROM users
		WHERE login = $1 OR email = $2
		LIMIT 1
	`, login, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by login or email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, login, email, role, created_at
		FROM users
		WHERE id = $1
	`, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.Email, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByRefreshToken(ctx context.Context, token string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT u.id, u.login, u.email, u.role, u.created_at
		FROM users u
		JOIN refresh_tokens rt ON rt.user_id = u.id
		WHERE rt.token = $1
	`, token)

	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.Email, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by refresh token: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) AddRefreshToken(ctx context.Context, rt *domain.RefreshToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO refresh_tokens (token, user_id, created_at)
		VALUES ($1, $2, $3)
	`, rt.Token, rt.UserID, rt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// RotateRefreshToken consumes oldToken and stores newToken in one statement.
// When two rotations race on the same token the DELETE succeeds for exactly
// one of them; the loser sees zero rows and must treat the token as invalid.
func (r *UserRepository) RotateRefreshToken(ctx context.Context, oldToken, newToken string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		WITH deleted AS (
			DELETE FROM refresh_tokens WHERE token = $1 RETURNING user_id
		)
		INSERT INTO refresh_tokens (token, user_id, created_at)
		SELECT $2, user_id, now() FROM deleted
	`, oldToken, newToken)
	if err != nil {
		return false, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepository) RemoveRefreshToken(ctx context.Context, userID, token string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM refresh_tokens WHERE user_id = $1 AND token = $2
	`, userID, token)
	if err != nil {
		return fmt.Errorf("failed to remove refresh token: %w", err)
	}
	return nil
}

func (r *UserRepository) ClearRefreshTokens(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM refresh_tokens WHERE user_id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh tokens: %w", err)
	}
	return nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, login, email, role, created_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Login, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID, role string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET role = $2 WHERE id = $1
	`, userID, role)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
