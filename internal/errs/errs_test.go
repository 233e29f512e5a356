package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("Site is required"), KindValidation},
		{"conflict", ErrEmailTaken, KindConflict},
		{"authentication", ErrTokenExpired, KindAuthentication},
		{"not found", ErrPasswordNotFound, KindNotFound},
		{"wrapped", fmt.Errorf("update password: %w", ErrPasswordNotFound), KindNotFound},
		{"plain error", errors.New("connection refused"), KindInternal},
		{"nil", nil, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestCredentialErrorsShareMessage(t *testing.T) {
	assert.Equal(t, "Invalid email or password", ErrInvalidCredentials.Error())
	assert.Equal(t, "authentication", ErrInvalidCredentials.Kind.String())
}

func TestTokenErrorsAreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrNoToken.Message, ErrInvalidToken.Message)
	assert.NotEqual(t, ErrInvalidToken.Message, ErrTokenExpired.Message)
	assert.Equal(t, ErrNoToken.Kind, ErrTokenExpired.Kind)
}
