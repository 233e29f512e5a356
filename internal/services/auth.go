package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/passvault/internal/errs"
	"github.com/sbilibin2017/passvault/internal/logger"
	"github.com/sbilibin2017/passvault/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// DefaultBcryptCost is the hashing cost used when none is configured.
const DefaultBcryptCost = 12

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error)
}

// TokenGenerator defines an interface for generating access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	jwt       TokenGenerator
	cost      int
	dummyHash []byte
}

// NewAuthService creates a new AuthService instance. A cost outside bcrypt's
// accepted range falls back to DefaultBcryptCost.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator, cost int) (*AuthService, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	// Compared against when the email is unknown so both login failures cost one bcrypt run.
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("passvault-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %w", err)
	}

	return &AuthService{
		reader:    reader,
		writer:    writer,
		jwt:       jwt,
		cost:      cost,
		dummyHash: dummyHash,
	}, nil
}

// Register validates the input, checks email then username uniqueness and
// stores a new user with a bcrypt password hash.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validateStruct(registerInput{Username: username, Email: email, Password: password}); err != nil {
		return uuid.Nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return uuid.Nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return uuid.Nil, errs.ErrEmailTaken
	}

	existing, err = svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return uuid.Nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		logger.Log.Infow("username already taken", "username", username)
		return uuid.Nil, errs.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		if errs.KindOf(err) == errs.KindConflict {
			return uuid.Nil, err
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, fmt.Errorf("save user: %w", err)
	}

	logger.Log.Infow("user registered", "user_id", userID)
	return userID, nil
}

// Login verifies the credentials and returns a signed token with the user summary.
// An unknown email and a wrong password both return errs.ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserSummary, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validateStruct(loginInput{Email: email, Password: password}); err != nil {
		return "", nil, err
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	hash := svc.dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || user == nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", nil, errs.ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	summary := user.Summary()
	return token, &summary, nil
}
