package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/passvault/internal/errs"
	"github.com/sbilibin2017/passvault/internal/logger"
	"github.com/sbilibin2017/passvault/internal/models"
)

//go:generate mockgen -source=passwords.go -destination=mock_passwords.go -package=services

// PasswordReader defines read operations for stored credentials.
type PasswordReader interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.PasswordDB, error)
}

// PasswordWriter defines owner-scoped write operations for stored credentials.
// Update and Delete report false when the record does not exist or belongs to another user.
type PasswordWriter interface {
	Save(ctx context.Context, ownerID uuid.UUID, site, username, password string) (uuid.UUID, error)
	Update(ctx context.Context, passwordID, ownerID uuid.UUID, site, username, password string) (bool, error)
	Delete(ctx context.Context, passwordID, ownerID uuid.UUID) (bool, error)
}

// PasswordService manages the credentials of the calling user.
type PasswordService struct {
	reader PasswordReader
	writer PasswordWriter
}

// NewPasswordService creates a new PasswordService.
func NewPasswordService(reader PasswordReader, writer PasswordWriter) *PasswordService {
	return &PasswordService{
		reader: reader,
		writer: writer,
	}
}

// List returns the caller's credentials, newest first.
func (s *PasswordService) List(ctx context.Context, ownerID uuid.UUID) ([]models.PasswordDB, error) {
	passwords, err := s.reader.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list passwords", "owner_id", ownerID, "err", err)
		return nil, fmt.Errorf("list passwords: %w", err)
	}
	return passwords, nil
}

// Create stores a new credential for the caller and returns its id.
func (s *PasswordService) Create(ctx context.Context, ownerID uuid.UUID, site, username, password string) (uuid.UUID, error) {
	in, err := newPasswordInput(site, username, password)
	if err != nil {
		return uuid.Nil, err
	}

	passwordID, err := s.writer.Save(ctx, ownerID, in.Site, in.Username, in.Password)
	if err != nil {
		logger.Log.Errorw("failed to save password", "owner_id", ownerID, "err", err)
		return uuid.Nil, fmt.Errorf("save password: %w", err)
	}
	return passwordID, nil
}

// Update replaces a credential owned by the caller. A missing or foreign
// record yields errs.ErrPasswordNotFound.
func (s *PasswordService) Update(ctx context.Context, id string, ownerID uuid.UUID, site, username, password string) error {
	passwordID, err := parsePasswordID(id)
	if err != nil {
		return err
	}

	in, err := newPasswordInput(site, username, password)
	if err != nil {
		return err
	}

	found, err := s.writer.Update(ctx, passwordID, ownerID, in.Site, in.Username, in.Password)
	if err != nil {
		logger.Log.Errorw("failed to update password", "password_id", passwordID, "err", err)
		return fmt.Errorf("update password: %w", err)
	}
	if !found {
		logger.Log.Infow("password not found for owner", "password_id", passwordID, "owner_id", ownerID)
		return errs.ErrPasswordNotFound
	}
	return nil
}

// Delete permanently removes a credential owned by the caller. A missing or
// foreign record yields errs.ErrPasswordNotFound.
func (s *PasswordService) Delete(ctx context.Context, id string, ownerID uuid.UUID) error {
	passwordID, err := parsePasswordID(id)
	if err != nil {
		return err
	}

	found, err := s.writer.Delete(ctx, passwordID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to delete password", "password_id", passwordID, "err", err)
		return fmt.Errorf("delete password: %w", err)
	}
	if !found {
		logger.Log.Infow("password not found for owner", "password_id", passwordID, "owner_id", ownerID)
		return errs.ErrPasswordNotFound
	}
	return nil
}

func parsePasswordID(id string) (uuid.UUID, error) {
	passwordID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil || passwordID == uuid.Nil {
		return uuid.Nil, errs.ErrInvalidID
	}
	return passwordID, nil
}

// newPasswordInput trims site and username; the password is kept verbatim.
func newPasswordInput(site, username, password string) (passwordInput, error) {
	in := passwordInput{
		Site:     strings.TrimSpace(site),
		Username: strings.TrimSpace(username),
		Password: password,
	}
	if err := validateStruct(in); err != nil {
		return passwordInput{}, err
	}
	return in, nil
}
