package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/passvault/internal/errs"
	"github.com/sbilibin2017/passvault/internal/models"
	"github.com/sbilibin2017/passvault/internal/services"
)

func newAuthService(t *testing.T, ctrl *gomock.Controller) (*services.AuthService, *services.MockUserReader, *services.MockUserWriter, *services.MockTokenGenerator) {
	t.Helper()
	reader := services.NewMockUserReader(ctrl)
	writer := services.NewMockUserWriter(ctrl)
	tokens := services.NewMockTokenGenerator(ctrl)

	svc, err := services.NewAuthService(reader, writer, tokens, bcrypt.MinCost)
	require.NoError(t, err)
	return svc, reader, writer, tokens
}

func TestAuthService_Register(t *testing.T) {
	existing := &models.UserDB{UserID: uuid.New()}
	newID := uuid.New()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		setup    func(r *services.MockUserReader, w *services.MockUserWriter)
		wantID   uuid.UUID
		wantErr  error
		wantKind errs.Kind
	}{
		{
			name:     "successful registration normalizes input",
			username: "  alice ",
			email:    " Alice@X.com ",
			password: "secret1",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				r.EXPECT().GetByEmail(gomock.Any(), "alice@x.com").Return(nil, nil)
				r.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				w.EXPECT().Save(gomock.Any(), "alice", "alice@x.com", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, hash string) (uuid.UUID, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))
						return newID, nil
					})
			},
			wantID: newID,
		},
		{
			name:     "password longer than 72 bytes rejected before hashing",
			username: "alice",
			email:    "alice@x.com",
			password: strings.Repeat("a", 80),
			setup:    func(r *services.MockUserReader, w *services.MockUserWriter) {},
			wantKind: errs.KindValidation,
		},
		{
			name:     "duplicate email checked first",
			username: "alice",
			email:    "alice@x.com",
			password: "secret1",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				r.EXPECT().GetByEmail(gomock.Any(), "alice@x.com").Return(existing, nil)
			},
			wantErr: errs.ErrEmailTaken,
		},
		{
			name:     "duplicate username",
			username: "Alice",
			email:    "other@x.com",
			password: "secret1",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				r.EXPECT().GetByEmail(gomock.Any(), "other@x.com").Return(nil, nil)
				r.EXPECT().GetByUsername(gomock.Any(), "Alice").Return(existing, nil)
			},
			wantErr: errs.ErrUsernameTaken,
		},
		{
			name:     "unique index race reported as conflict",
			username: "alice",
			email:    "alice@x.com",
			password: "secret1",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				r.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
				r.EXPECT().GetByUsername(gomock.Any(), gomock.Any()).Return(nil, nil)
				w.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, errs.ErrEmailTaken)
			},
			wantErr: errs.ErrEmailTaken,
		},
		{
			name:     "invalid email",
			username: "alice",
			email:    "alice@x",
			password: "secret1",
			wantKind: errs.KindValidation,
		},
		{
			name:     "short username after trim",
			username: " a ",
			email:    "alice@x.com",
			password: "secret1",
			wantKind: errs.KindValidation,
		},
		{
			name:     "short password",
			username: "alice",
			email:    "alice@x.com",
			password: "12345",
			wantKind: errs.KindValidation,
		},
		{
			name:     "reader error",
			username: "eve",
			email:    "eve@x.com",
			password: "secret1",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				r.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantKind: errs.KindInternal,
		},
		{
			name:     "writer error",
			username: "carol",
			email:    "carol@x.com",
			password: "secret1",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				r.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
				r.EXPECT().GetByUsername(gomock.Any(), gomock.Any()).Return(nil, nil)
				w.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("save error"))
			},
			wantKind: errs.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, reader, writer, _ := newAuthService(t, ctrl)
			if tt.setup != nil {
				tt.setup(reader, writer)
			}

			id, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, id)
			case tt.wantID != uuid.Nil:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			default:
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, errs.KindOf(err))
			}
		})
	}
}

func TestAuthService_Register_ConflictNamesField(t *testing.T) {
	assert.Contains(t, errs.ErrEmailTaken.Error(), "Email")
	assert.Contains(t, errs.ErrUsernameTaken.Error(), "Username")
}

func TestAuthService_Login(t *testing.T) {
	password := "secret1"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}

	tests := []struct {
		name      string
		email     string
		password  string
		setup     func(r *services.MockUserReader, tg *services.MockTokenGenerator)
		wantToken string
		wantErr   error
		wantKind  errs.Kind
	}{
		{
			name:     "successful login",
			email:    " ALICE@x.com",
			password: password,
			setup: func(r *services.MockUserReader, tg *services.MockTokenGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), "alice@x.com").Return(user, nil)
				tg.EXPECT().Generate(gomock.Any(), user.UserID, "alice").Return("token123", nil)
			},
			wantToken: "token123",
		},
		{
			name:     "unknown email",
			email:    "bob@x.com",
			password: password,
			setup: func(r *services.MockUserReader, tg *services.MockTokenGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), "bob@x.com").Return(nil, nil)
			},
			wantErr: errs.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@x.com",
			password: "wrong",
			setup: func(r *services.MockUserReader, tg *services.MockTokenGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), "alice@x.com").Return(user, nil)
			},
			wantErr: errs.ErrInvalidCredentials,
		},
		{
			name:     "invalid email syntax",
			email:    "alice",
			password: password,
			wantKind: errs.KindValidation,
		},
		{
			name:     "missing password",
			email:    "alice@x.com",
			password: "",
			wantKind: errs.KindValidation,
		},
		{
			name:     "reader error",
			email:    "alice@x.com",
			password: password,
			setup: func(r *services.MockUserReader, tg *services.MockTokenGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantKind: errs.KindInternal,
		},
		{
			name:     "token generation error",
			email:    "alice@x.com",
			password: password,
			setup: func(r *services.MockUserReader, tg *services.MockTokenGenerator) {
				r.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
				tg.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("jwt error"))
			},
			wantKind: errs.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, reader, _, tokens := newAuthService(t, ctrl)
			if tt.setup != nil {
				tt.setup(reader, tokens)
			}

			token, summary, err := svc.Login(context.Background(), tt.email, tt.password)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				assert.Nil(t, summary)
			case tt.wantToken != "":
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, &models.UserSummary{ID: user.UserID, Username: "alice", Email: "alice@x.com"}, summary)
			default:
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, errs.KindOf(err))
				assert.Empty(t, token)
			}
		})
	}
}

func TestAuthService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _ := newAuthService(t, ctrl)
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)

	reader.EXPECT().GetByEmail(gomock.Any(), "ghost@x.com").Return(nil, nil)
	reader.EXPECT().GetByEmail(gomock.Any(), "alice@x.com").
		Return(&models.UserDB{UserID: uuid.New(), PasswordHash: string(hashed)}, nil)

	_, _, errUnknown := svc.Login(context.Background(), "ghost@x.com", "secret1")
	_, _, errWrong := svc.Login(context.Background(), "alice@x.com", "wrong-password")

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestNewAuthService_CostFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, err := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockTokenGenerator(ctrl),
		bcrypt.MaxCost+1,
	)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
