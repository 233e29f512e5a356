package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/passvault/internal/errs"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "pgx"), mock
}

var userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	userID := uuid.New()
	createdAt := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(email) = LOWER($1)")).
		WithArgs("alice@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(userID.String(), "alice", "alice@x.com", "$2a$hash", createdAt))

	user, err := repo.GetByEmail(context.Background(), "alice@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "$2a$hash", user.PasswordHash)
	assert.Equal(t, createdAt, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(username) = LOWER($1)")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.GetByUsername(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WillReturnError(errors.New("connection refused"))

	user, err := repo.GetByEmail(context.Background(), "alice@x.com")
	assert.EqualError(t, err, "connection refused")
	assert.Nil(t, user)
}

func TestUserWriteRepository_Save(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "success"},
		{
			name:    "duplicate email",
			execErr: &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: usersEmailIndex},
			wantErr: errs.ErrEmailTaken,
		},
		{
			name:    "duplicate username",
			execErr: &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: usersUsernameIndex},
			wantErr: errs.ErrUsernameTaken,
		},
		{
			name:    "other database error",
			execErr: errors.New("disk full"),
			wantErr: errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserWriteRepository(db)

			exec := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
				WithArgs(sqlmock.AnyArg(), "alice", "alice@x.com", "$2a$hash")
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			id, err := repo.Save(context.Background(), "alice", "alice@x.com", "$2a$hash")
			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, id)
			case errs.KindOf(tt.wantErr) == errs.KindConflict:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, id)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, uuid.Nil, id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "SELECT id FROM users WHERE id = $1", oneLine(`
		SELECT id
		FROM users
		WHERE id = $1
	`))
}
