package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nhattranq/profilehub/internal/domain/user"
	"github.com/nhattranq/profilehub/pkg/apperror"
)

type postgresUserRepo struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepo(db *pgxpool.Pool) user.Repository {
	return &postgresUserRepo{db: db}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return constraint == "" || strings.Contains(pgErr.ConstraintName, constraint)
	}
	return false
}

func (r *postgresUserRepo) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, u.ID, u.Username, u.Email, u.PasswordHash)
	if err != nil {
		if isUniqueViolation(err, "username") {
			return apperror.NewConflict("user", "username", u.Username)
		}
		if isUniqueViolation(err, "email") {
			return apperror.NewConflict("user", "email", u.Email)
		}
		return apperror.NewInternal("failed to insert user", err)
	}
	return nil
}

func (r *postgresUserRepo) scanOne(ctx context.Context, query string, arg any) (*user.User, error) {
	u := &user.User{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperror.NewInternal("failed to query user", err)
	}
	return u, nil
}

func (r *postgresUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT id, username, email, password_hash FROM users WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *postgresUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT id, username, email, password_hash FROM users WHERE email = $1`
	return r.scanOne(ctx, query, email)
}

func (r *postgresUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT id, username, email, password_hash FROM users WHERE username = $1`
	return r.scanOne(ctx, query, username)
}

func (r *postgresUserRepo) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	query := `UPDATE users SET username = $2, updated_at = NOW() WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, username)
	if err != nil {
		if isUniqueViolation(err, "username") {
			return apperror.NewConflict("user", "username", username)
		}
		return apperror.NewInternal("failed to update username", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return apperror.NewInternal("failed to update password", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
