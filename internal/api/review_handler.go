package api

import (
	"log/slog"
	"net/http"

	"github.com/servicehub/servicehub-api/internal/api/shared"
	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/servicehub/servicehub-api/internal/platform/logger"
	"github.com/servicehub/servicehub-api/internal/store"
)

// ReviewHandler handles review requests.
type ReviewHandler struct {
	reviews store.ReviewStore
	logger  *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviews store.ReviewStore, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		reviews: reviews,
		logger:  logger.With(slog.String("handler", "review")),
	}
}

// All handles GET /reviews/all
func (h *ReviewHandler) All(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch reviews")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reviews)
}

// ByService handles GET /reviews/{serviceId}. The service id is matched as
// a plain string, so unknown services simply have no reviews.
func (h *ReviewHandler) ByService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := pathParam(r, "serviceId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	reviews, err := h.reviews.ListByService(r.Context(), serviceID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch reviews")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reviews)
}

// Mine handles GET /reviews/me/{email}
func (h *ReviewHandler) Mine(w http.ResponseWriter, r *http.Request) {
	email, ok := requireOwner(w, r, "email")
	if !ok {
		return
	}

	reviews, err := h.reviews.ListByOwner(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch reviews")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reviews)
}

// Get handles GET /review/{id}
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", "review ID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	review, err := h.reviews.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch review")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, review)
}

// Create handles POST /reviews/add
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if !decodeAndValidate(w, r, &review) {
		return
	}

	result, err := h.reviews.Create(r.Context(), &review)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create review")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("review created", slog.String("review_id", result.InsertedID.Hex()), slog.String("service_id", review.ServiceID))
	shared.RespondWithJSON(w, r, http.StatusCreated, result)
}

// Update handles PUT /review/update/{id}
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", "review ID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var patch domain.ReviewPatch
	if !decodeAndValidate(w, r, &patch) {
		return
	}
	if patch.IsEmpty() {
		HandleAPIError(w, r, domain.ErrEmptyPatch, "")
		return
	}

	result, err := h.reviews.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update review")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Delete handles DELETE /review/delete/{id}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", "review ID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.reviews.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete review")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
