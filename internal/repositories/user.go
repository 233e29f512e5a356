package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/passvault/internal/errs"
	"github.com/sbilibin2017/passvault/internal/logger"
	"github.com/sbilibin2017/passvault/internal/models"
)

const (
	pgUniqueViolation = "23505"

	usersEmailIndex    = "users_email_lower_idx"
	usersUsernameIndex = "users_username_lower_idx"
)

const redacted = "[REDACTED]"

// UserReadRepository handles user lookups.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email compared case-insensitively, or nil if none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
		LIMIT 1
	`
	return r.getOne(ctx, query, email)
}

// GetByUsername returns the user with the given username compared case-insensitively, or nil if none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE LOWER(username) = LOWER($1)
		LIMIT 1
	`
	return r.getOne(ctx, query, username)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg string) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logger.Log.Debugw("db query",
		"query", oneLine(query),
		"args", []any{arg},
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user inserts.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns its id. A unique index violation is
// reported as errs.ErrEmailTaken or errs.ErrUsernameTaken.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	userID := uuid.New()

	_, err := r.db.ExecContext(ctx, query, userID, username, email, passwordHash)

	logger.Log.Debugw("db query",
		"query", oneLine(query),
		"args", []any{userID, username, email, redacted},
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			switch pgErr.ConstraintName {
			case usersEmailIndex:
				return uuid.Nil, errs.ErrEmailTaken
			case usersUsernameIndex:
				return uuid.Nil, errs.ErrUsernameTaken
			}
		}
		return uuid.Nil, err
	}
	return userID, nil
}

// oneLine collapses a multi-line query for logging.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
