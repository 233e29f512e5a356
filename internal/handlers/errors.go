package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/passvault/internal/errs"
	"github.com/sbilibin2017/passvault/internal/logger"
)

// ErrorResponse is the body of every non-2xx response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid email or password
	Error string `json:"error"`
}

// MessageResponse is a plain confirmation body.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	msgInvalidBody = "Invalid request body"
	msgInternal    = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Warnw("failed to encode response", "err", err)
	}
}

// writeError maps an error kind to its HTTP status. Anything unclassified is
// logged and answered with a generic 500 body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch errs.KindOf(err) {
	case errs.KindValidation, errs.KindConflict:
		status = http.StatusBadRequest
	case errs.KindAuthentication:
		status = http.StatusUnauthorized
	case errs.KindNotFound:
		status = http.StatusNotFound
	default:
		logger.Log.Errorw("internal server error",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
		return
	}

	var e *errs.Error
	errors.As(err, &e)
	writeJSON(w, status, ErrorResponse{Error: e.Message})
}

// decodeJSON reads a single JSON object from the body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Debugw("invalid request body", "path", r.URL.Path, "err", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return false
	}
	return true
}

// NotFoundHandler answers unmatched routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Route not found"})
}

// MethodNotAllowedHandler answers known routes called with the wrong method.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}
