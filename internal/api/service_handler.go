package api

import (
	"log/slog"
	"net/http"

	"github.com/servicehub/servicehub-api/internal/api/shared"
	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/servicehub/servicehub-api/internal/platform/logger"
	"github.com/servicehub/servicehub-api/internal/store"
)

// ServiceHandler handles service listing requests.
type ServiceHandler struct {
	services store.ServiceStore
	logger   *slog.Logger
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(services store.ServiceStore, logger *slog.Logger) *ServiceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ServiceHandler{
		services: services,
		logger:   logger.With(slog.String("handler", "service")),
	}
}

func (h *ServiceHandler) log(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), h.logger)
}

// List handles GET /services?keyword=&category=&page=&limit=
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	q := store.ServiceQuery{
		Keyword:  r.URL.Query().Get("keyword"),
		Category: r.URL.Query().Get("category"),
		Page:     page,
		Limit:    limit,
	}

	result, err := h.services.List(r.Context(), q)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch services")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Featured handles GET /services/featured
func (h *ServiceHandler) Featured(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.Featured(r.Context(), store.FeaturedLimit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch featured services")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, services)
}

// Get handles GET /service/{id}
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", "service ID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	service, err := h.services.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch service")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, service)
}

// Mine handles GET /service/me/{email}. Only the owner may list them.
func (h *ServiceHandler) Mine(w http.ResponseWriter, r *http.Request) {
	email, ok := requireOwner(w, r, "email")
	if !ok {
		return
	}

	services, err := h.services.ListByOwner(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch services")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, services)
}

// Create handles POST /service/add
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var service domain.Service
	if !decodeAndValidate(w, r, &service) {
		return
	}

	result, err := h.services.Create(r.Context(), &service)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create service")
		return
	}

	h.log(r).Info("service created", slog.String("service_id", result.InsertedID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusCreated, result)
}

// Update handles PUT /service/update/{id}
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", "service ID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var patch domain.ServicePatch
	if !decodeAndValidate(w, r, &patch) {
		return
	}
	if patch.IsEmpty() {
		HandleAPIError(w, r, domain.ErrEmptyPatch, "")
		return
	}

	result, err := h.services.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update service")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Delete handles DELETE /service/delete/{id}
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", "service ID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.services.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete service")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
