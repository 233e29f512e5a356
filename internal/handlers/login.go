package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/passvault/internal/errs"
	"github.com/sbilibin2017/passvault/internal/metrics"
	"github.com/sbilibin2017/passvault/internal/models"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Authenticator defines the interface for user login.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, *models.UserSummary, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT bearer token
	Token string `json:"token"`

	User models.UserSummary `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates by email and password and returns a signed token. Unknown email and wrong password give the same answer.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login credentials"
// @Success 200 {object} handlers.LoginResponse "Successful login"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch errs.KindOf(err) {
			case errs.KindAuthentication:
				metrics.RecordLogin(metrics.LoginInvalid)
			case errs.KindInternal:
				metrics.RecordLogin(metrics.LoginError)
			}
			writeError(w, r, err)
			return
		}

		metrics.RecordLogin(metrics.LoginSuccess)
		writeJSON(w, http.StatusOK, LoginResponse{
			Token: token,
			User:  *user,
		})
	}
}
