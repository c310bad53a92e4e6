package admin

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hoteldesk/hoteldesk/internal/platform/httpx"
	"github.com/hoteldesk/hoteldesk/internal/shared"
)

// Handler serves the admin CRUD endpoints. The router mounts it behind the
// admin role guard.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// resource binds a route segment to its upstream collection and the payload
// type validated before forwarding.
type resource struct {
	route    string
	upstream string
	payload  func() any
}

func (h *Handler) resources() []resource {
	return []resource{
		{route: "categories", upstream: "/admin/categories", payload: func() any { return &CategoryRequest{} }},
		{route: "users", upstream: "/admin/users", payload: func() any { return &UserRequest{} }},
		{route: "managers", upstream: "/admin/managers", payload: func() any { return &ManagerRequest{} }},
		{route: "hotels", upstream: "/admin/hotels", payload: func() any { return &HotelRequest{} }},
	}
}

// MountRoutes registers the CRUD surface for every admin resource.
func (h *Handler) MountRoutes(r chi.Router) {
	for _, res := range h.resources() {
		res := res
		r.Route("/"+res.route, func(r chi.Router) {
			r.Get("/", h.list(res))
			r.Post("/", h.create(res))
			r.Get("/{id}", h.get(res))
			r.Put("/{id}", h.update(res))
			r.Delete("/{id}", h.remove(res))
		})
	}
}

func (h *Handler) list(res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		out, err := h.service.List(r.Context(), sess.Token(), res.upstream, r.URL.Query())
		if err != nil {
			h.logger.Error("admin list", slog.String("resource", res.route), slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, out)
	}
}

func (h *Handler) get(res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		out, err := h.service.Get(r.Context(), sess.Token(), res.upstream+"/"+chi.URLParam(r, "id"))
		if err != nil {
			h.logger.Error("admin get", slog.String("resource", res.route), slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, out)
	}
}

func (h *Handler) create(res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := res.payload()
		if !h.decodeAndValidate(w, r, payload) {
			return
		}
		sess := shared.SessionFromContext(r.Context())
		out, err := h.service.Create(r.Context(), sess.Token(), res.upstream, payload)
		if err != nil {
			h.logger.Error("admin create", slog.String("resource", res.route), slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, out)
	}
}

func (h *Handler) update(res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := res.payload()
		if !h.decodeAndValidate(w, r, payload) {
			return
		}
		sess := shared.SessionFromContext(r.Context())
		out, err := h.service.Update(r.Context(), sess.Token(), res.upstream+"/"+chi.URLParam(r, "id"), payload)
		if err != nil {
			h.logger.Error("admin update", slog.String("resource", res.route), slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, out)
	}
}

func (h *Handler) remove(res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		if err := h.service.Delete(r.Context(), sess.Token(), res.upstream+"/"+chi.URLParam(r, "id")); err != nil {
			h.logger.Error("admin delete", slog.String("resource", res.route), slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"message": "deleted"})
	}
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, payload any) bool {
	if err := httpx.DecodeJSON(r, payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return false
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return false
	}
	return true
}
