package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var passwordColumns = []string{"id", "owner_id", "site", "username", "password", "created_at", "updated_at"}

func TestPasswordReadRepository_ListByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPasswordReadRepository(db)
	ownerID := uuid.New()
	newer, older := uuid.New(), uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE owner_id = $1 ORDER BY created_at DESC")).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows(passwordColumns).
			AddRow(newer.String(), ownerID.String(), "github.com", "alice", "pw2", now, now).
			AddRow(older.String(), ownerID.String(), "example.com", "alice", "pw1", now.Add(-time.Hour), now))

	passwords, err := repo.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, passwords, 2)
	assert.Equal(t, newer, passwords[0].PasswordID)
	assert.Equal(t, "github.com", passwords[0].Site)
	assert.Equal(t, ownerID, passwords[1].OwnerID)
	assert.Equal(t, "pw1", passwords[1].Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordReadRepository_ListByOwner_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPasswordReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM passwords")).
		WillReturnRows(sqlmock.NewRows(passwordColumns))

	passwords, err := repo.ListByOwner(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, passwords)
	assert.Empty(t, passwords)
}

func TestPasswordReadRepository_ListByOwner_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPasswordReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM passwords")).
		WillReturnError(errors.New("timeout"))

	passwords, err := repo.ListByOwner(context.Background(), uuid.New())
	assert.EqualError(t, err, "timeout")
	assert.Nil(t, passwords)
}

func TestPasswordWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPasswordWriteRepository(db)
	ownerID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO passwords")).
		WithArgs(sqlmock.AnyArg(), ownerID, "example.com", "alice", " p@ss ").
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Save(context.Background(), ownerID, "example.com", "alice", " p@ss ")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordWriteRepository_Update(t *testing.T) {
	tests := []struct {
		name      string
		rows      int64
		execErr   error
		wantFound bool
		wantErr   bool
	}{
		{name: "owned record", rows: 1, wantFound: true},
		{name: "missing or foreign record", rows: 0, wantFound: false},
		{name: "database error", execErr: errors.New("deadlock"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewPasswordWriteRepository(db)
			passwordID, ownerID := uuid.New(), uuid.New()

			exec := mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND owner_id = $2")).
				WithArgs(passwordID, ownerID, "example.com", "bob", "new")
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, tt.rows))
			}

			found, err := repo.Update(context.Background(), passwordID, ownerID, "example.com", "bob", "new")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantFound, found)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPasswordWriteRepository_Delete(t *testing.T) {
	tests := []struct {
		name      string
		rows      int64
		execErr   error
		wantFound bool
		wantErr   bool
	}{
		{name: "owned record", rows: 1, wantFound: true},
		{name: "missing or foreign record", rows: 0, wantFound: false},
		{name: "database error", execErr: errors.New("conn closed"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewPasswordWriteRepository(db)
			passwordID, ownerID := uuid.New(), uuid.New()

			exec := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM passwords WHERE id = $1 AND owner_id = $2")).
				WithArgs(passwordID, ownerID)
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, tt.rows))
			}

			found, err := repo.Delete(context.Background(), passwordID, ownerID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantFound, found)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
