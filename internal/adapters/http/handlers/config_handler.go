package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/solace-autoconfig/internal/adapters/http/dto"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
	"github.com/jsamuelsen11/solace-autoconfig/internal/ports"
)

// ConfigHandler exposes the discovered bindings and the resolved broker
// configuration. Every response masks credentials.
type ConfigHandler struct {
	service ports.AutoConfigService
}

// NewConfigHandler creates a ConfigHandler backed by service.
func NewConfigHandler(service ports.AutoConfigService) *ConfigHandler {
	return &ConfigHandler{service: service}
}

// ListBindings handles GET /api/v1/bindings. The legacy query parameter
// switches to the legacy field names.
func (h *ConfigHandler) ListBindings(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.Bindings(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if r.URL.Query().Has("legacy") {
		writeJSON(w, r, http.StatusOK, dto.ToLegacyBindingListResponse(records))
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBindingListResponse(records))
}

// GetBinding handles GET /api/v1/bindings/{id}.
func (h *ConfigHandler) GetBinding(w http.ResponseWriter, r *http.Request) {
	id, err := bindingIDParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	record, err := h.service.Binding(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToBindingResponse(&record))
}

// GetConfig handles GET /api/v1/config. With a binding query parameter the
// configuration is resolved against that binding instead of the first.
func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.resolve(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToConfigResponse(resolved))
}

// GetProperties handles GET /api/v1/config/properties and returns the
// broker client property bag. Accepts the same binding parameter as
// GetConfig.
func (h *ConfigHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.resolve(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToPropertiesResponse(resolved))
}

func (h *ConfigHandler) resolve(r *http.Request) (settings.Resolved, error) {
	if id := r.URL.Query().Get("binding"); id != "" {
		return h.service.ResolveByID(r.Context(), id)
	}
	return h.service.Resolve(r.Context())
}
