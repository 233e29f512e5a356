package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/passvault/internal/errs"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	token, err := j.Generate(ctx, userID, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "alice")
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, errs.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)

	claims, err := j.GetClaims(context.Background(), "invalid.token.string")
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_WrongSecret(t *testing.T) {
	j1 := New("secret1", time.Minute)
	j2 := New("secret2", time.Minute)
	ctx := context.Background()

	token, err := j1.Generate(ctx, uuid.New(), "bob")
	require.NoError(t, err)

	_, err = j2.GetClaims(ctx, token)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestJWT_RejectsOtherAlgorithms(t *testing.T) {
	j := New("secret", time.Minute)
	claims := Claims{
		UserID: uuid.New(),
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = j.GetClaims(context.Background(), token)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestJWT_MissingUserID(t *testing.T) {
	j := New("secret", time.Minute)
	token, err := j.Generate(context.Background(), uuid.Nil, "ghost")
	require.NoError(t, err)

	_, err = j.GetClaims(context.Background(), token)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectedErr   error
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", nil},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", nil},
		{"NoHeader", "", "", errs.ErrNoToken},
		{"BearerWithoutToken", "Bearer", "", errs.ErrNoToken},
		{"OtherScheme", "Basic dXNlcjpwYXNz", "", errs.ErrNoToken},
		{"TooManyParts", "Bearer a b c", "", errs.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
