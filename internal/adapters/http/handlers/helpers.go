package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/jsoncodec"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/logging"
)

// bindingIDParam reads the binding id path parameter. Binding ids are
// instance names, so any non-blank string is accepted.
func bindingIDParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if strings.TrimSpace(id) == "" {
		return "", &domain.ValidationError{
			Fields: map[string]string{"id": domain.MsgRequired},
		}
	}
	return id, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := jsoncodec.Encode(w, v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}
