package api

import (
	"log/slog"
	"net/http"

	"github.com/servicehub/servicehub-api/internal/api/shared"
	"github.com/servicehub/servicehub-api/internal/domain"
	"github.com/servicehub/servicehub-api/internal/store"
)

// UserHandler handles user profile requests.
type UserHandler struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users store.UserStore, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		users:  users,
		logger: logger.With(slog.String("handler", "user")),
	}
}

// Register handles POST /users/add. A new user is answered with 201; an
// email that is already registered with 200 and existing=true.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if !decodeAndValidate(w, r, &user) {
		return
	}

	result, err := h.users.Register(r.Context(), &user)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to register user")
		return
	}

	status := http.StatusCreated
	if result.Existing {
		status = http.StatusOK
	}
	shared.RespondWithJSON(w, r, status, result)
}

// List handles GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch users")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}
