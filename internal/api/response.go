package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/khata-dev/khata/internal/identity"
	"github.com/khata-dev/khata/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps core error kinds onto HTTP statuses: validation
// failures are 422, missing references 404, bad credentials 401,
// everything else 500.
func writeError(w http.ResponseWriter, err error) {
	var ve model.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: ve.Reason})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, identity.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

type contextKey string

const usernameKey contextKey = "username"

func withUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

func usernameFrom(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

// recordActor attributes a successful mutation to the session's user.
// Unauthenticated requests (auth not required) leave no attribution row.
func (s *Server) recordActor(r *http.Request, details string) {
	if username := usernameFrom(r.Context()); username != "" {
		s.auditLog.Record("Session Activity", fmt.Sprintf("User '%s' %s", username, details))
	}
}
