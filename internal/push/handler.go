package push

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hoteldesk/hoteldesk/internal/platform/httpx"
	"github.com/hoteldesk/hoteldesk/internal/shared"
)

// Handler serves push subscription and broadcast endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountSubscriptionRoutes registers the subscription save available to any
// authenticated role.
func (h *Handler) MountSubscriptionRoutes(r chi.Router) {
	r.Post("/subscription", h.saveSubscription)
}

// MountBroadcastRoutes registers the admin-only broadcast trigger.
func (h *Handler) MountBroadcastRoutes(r chi.Router) {
	r.Post("/broadcast", h.broadcast)
}

func (h *Handler) saveSubscription(w http.ResponseWriter, r *http.Request) {
	var subscription json.RawMessage
	if err := httpx.DecodeJSON(r, &subscription); err != nil || len(subscription) == 0 {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "subscription body required")
		return
	}
	sess := shared.SessionFromContext(r.Context())
	if err := h.service.SaveSubscription(r.Context(), sess.Token(), subscription); err != nil {
		h.logger.Error("save subscription", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "subscription saved"})
}

type broadcastPayload struct {
	Title string `json:"title" validate:"required,max=120"`
	Body  string `json:"body" validate:"required,max=500"`
}

func (h *Handler) broadcast(w http.ResponseWriter, r *http.Request) {
	var payload broadcastPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.Broadcast(r.Context(), payload.Title, payload.Body); err != nil {
		h.logger.Error("enqueue broadcast", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "could not enqueue broadcast")
		return
	}
	httpx.JSON(w, http.StatusAccepted, map[string]string{"message": "broadcast queued"})
}
