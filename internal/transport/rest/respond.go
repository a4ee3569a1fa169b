package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tdt-studio/portfolio-tracker/internal/domain"
	"github.com/tdt-studio/portfolio-tracker/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a JSON request body into dst. An empty body is an error.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON request body")
	}
	return nil
}

// identity returns the verified caller or writes a 401.
func identity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	id, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return id, ok
}

// handleError maps a service error onto a status code and JSON body. op
// names the failed operation in 500 responses, e.g. "Failed to save rating".
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, op string, err error) {
	var (
		ve *domain.ValidationError
		se *domain.SchemaError
	)
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, validationMessage(ve))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, capitalize(err.Error()))
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, capitalize(err.Error()))
	case errors.Is(err, domain.ErrStorageUnavailable):
		log.WarnContext(r.Context(), "storage unavailable", slog.String("op", op), slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "Database not configured")
	case errors.As(err, &se):
		log.ErrorContext(r.Context(), "schema not provisioned",
			slog.String("op", op),
			slog.String("relation", se.Relation))
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("Database table not found. Please run the database migrations (%s)", se.Migration))
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("op", op), slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, op+": "+err.Error())
	}
}

func validationMessage(ve *domain.ValidationError) string {
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return capitalize(strings.Join(parts, "; "))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
