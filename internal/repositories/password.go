package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/passvault/internal/logger"
	"github.com/sbilibin2017/passvault/internal/models"
)

// PasswordReadRepository handles credential reads.
type PasswordReadRepository struct {
	db *sqlx.DB
}

func NewPasswordReadRepository(db *sqlx.DB) *PasswordReadRepository {
	return &PasswordReadRepository{db: db}
}

// ListByOwner returns every credential owned by ownerID, newest first.
func (r *PasswordReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.PasswordDB, error) {
	const query = `
		SELECT id, owner_id, site, username, password, created_at, updated_at
		FROM passwords
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`

	passwords := []models.PasswordDB{}
	err := r.db.SelectContext(ctx, &passwords, query, ownerID)

	logger.Log.Debugw("db query",
		"query", oneLine(query),
		"args", []any{ownerID},
		"result", len(passwords),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return passwords, nil
}

// PasswordWriteRepository handles credential writes. Every statement is
// conditioned on owner_id so a foreign record behaves like a missing one.
type PasswordWriteRepository struct {
	db *sqlx.DB
}

func NewPasswordWriteRepository(db *sqlx.DB) *PasswordWriteRepository {
	return &PasswordWriteRepository{db: db}
}

// Save inserts a credential for ownerID and returns its id.
func (r *PasswordWriteRepository) Save(ctx context.Context, ownerID uuid.UUID, site, username, password string) (uuid.UUID, error) {
	const query = `
		INSERT INTO passwords (id, owner_id, site, username, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	passwordID := uuid.New()

	_, err := r.db.ExecContext(ctx, query, passwordID, ownerID, site, username, password)

	logger.Log.Debugw("db query",
		"query", oneLine(query),
		"args", []any{passwordID, ownerID, site, username, redacted},
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return passwordID, nil
}

// Update replaces site, username and password of a credential owned by ownerID.
// It reports false when no such record belongs to ownerID.
func (r *PasswordWriteRepository) Update(ctx context.Context, passwordID, ownerID uuid.UUID, site, username, password string) (bool, error) {
	const query = `
		UPDATE passwords
		SET site = $3, username = $4, password = $5, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, passwordID, ownerID, site, username, password)
	rowsAffected := affected(res, err)

	logger.Log.Debugw("db query",
		"query", oneLine(query),
		"args", []any{passwordID, ownerID, site, username, redacted},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes a credential owned by ownerID. It reports false when no such
// record belongs to ownerID.
func (r *PasswordWriteRepository) Delete(ctx context.Context, passwordID, ownerID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM passwords
		WHERE id = $1 AND owner_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, passwordID, ownerID)
	rowsAffected := affected(res, err)

	logger.Log.Debugw("db query",
		"query", oneLine(query),
		"args", []any{passwordID, ownerID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func affected(res sql.Result, err error) int64 {
	if err != nil || res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
