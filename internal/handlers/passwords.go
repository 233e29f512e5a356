package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/passvault/internal/errs"
	"github.com/sbilibin2017/passvault/internal/middlewares"
	"github.com/sbilibin2017/passvault/internal/models"
)

//go:generate mockgen -source=passwords.go -destination=mock_passwords.go -package=handlers

// PasswordLister lists the caller's records.
type PasswordLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]models.PasswordDB, error)
}

// PasswordCreator stores a new record for the caller.
type PasswordCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, site, username, password string) (uuid.UUID, error)
}

// PasswordUpdater overwrites a record owned by the caller.
type PasswordUpdater interface {
	Update(ctx context.Context, id string, ownerID uuid.UUID, site, username, password string) error
}

// PasswordDeleter removes a record owned by the caller.
type PasswordDeleter interface {
	Delete(ctx context.Context, id string, ownerID uuid.UUID) error
}

// PasswordRequest is the body for create and update.
// swagger:model PasswordRequest
type PasswordRequest struct {
	// Site or service name, at least 3 characters
	// required: true
	// default: github.com
	Site string `json:"site"`

	// Account name on the site
	// required: true
	// default: alice
	Username string `json:"username"`

	// Stored secret, kept verbatim
	// required: true
	// default: hunter22
	Password string `json:"password"`
}

// CreatePasswordResponse carries the id of a new record.
// swagger:model CreatePasswordResponse
type CreatePasswordResponse struct {
	InsertedID uuid.UUID `json:"insertedId"`
}

// NewListPasswordsHandler returns the caller's records, newest first.
// @Summary List stored passwords
// @Tags passwords
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PasswordDB
// @Failure 401 {object} handlers.ErrorResponse "No token provided / Invalid token / Token expired"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /passwords [get]
func NewListPasswordsHandler(svc PasswordLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityOrUnauthorized(w, r)
		if !ok {
			return
		}

		records, err := svc.List(r.Context(), identity.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

// NewCreatePasswordHandler stores a record owned by the caller.
// @Summary Create a stored password
// @Tags passwords
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param passwordRequest body handlers.PasswordRequest true "Credential to store"
// @Success 201 {object} handlers.CreatePasswordResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "No token provided / Invalid token / Token expired"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /passwords [post]
func NewCreatePasswordHandler(svc PasswordCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityOrUnauthorized(w, r)
		if !ok {
			return
		}

		var req PasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		id, err := svc.Create(r.Context(), identity.UserID, req.Site, req.Username, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreatePasswordResponse{InsertedID: id})
	}
}

// NewUpdatePasswordHandler overwrites site, username and password of an owned record.
// @Summary Update a stored password
// @Tags passwords
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record id"
// @Param passwordRequest body handlers.PasswordRequest true "New values"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation failed / Invalid password id"
// @Failure 401 {object} handlers.ErrorResponse "No token provided / Invalid token / Token expired"
// @Failure 404 {object} handlers.ErrorResponse "Password not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /passwords/{id} [put]
func NewUpdatePasswordHandler(svc PasswordUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityOrUnauthorized(w, r)
		if !ok {
			return
		}

		var req PasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		err := svc.Update(r.Context(), chi.URLParam(r, "id"), identity.UserID, req.Site, req.Username, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password updated successfully"})
	}
}

// NewDeletePasswordHandler removes an owned record.
// @Summary Delete a stored password
// @Tags passwords
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid password id"
// @Failure 401 {object} handlers.ErrorResponse "No token provided / Invalid token / Token expired"
// @Failure 404 {object} handlers.ErrorResponse "Password not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /passwords/{id} [delete]
func NewDeletePasswordHandler(svc PasswordDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityOrUnauthorized(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "id"), identity.UserID); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password deleted successfully"})
	}
}

// identityOrUnauthorized reads the caller set by the auth middleware.
func identityOrUnauthorized(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, errs.ErrNoToken)
	}
	return identity, ok
}
