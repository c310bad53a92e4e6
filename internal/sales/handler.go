package sales

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hoteldesk/hoteldesk/internal/platform/httpx"
	"github.com/hoteldesk/hoteldesk/internal/shared"
)

// Handler serves the sales screens: daily and box listings, CSV export, and
// the staff entry endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers sales routes. The surrounding router applies the
// role guard; every role that reports or reviews sales passes through here.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/daily", h.listDaily)
	r.Get("/boxes", h.listBoxes)
	r.Get("/export.csv", h.exportCSV)
	r.Post("/daily", h.createDaily)
	r.Post("/boxes", h.createBox)
}

func (h *Handler) listDaily(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseQuery(w, r)
	if !ok {
		return
	}
	sess := shared.SessionFromContext(r.Context())
	groups, err := h.service.DailySales(r.Context(), sess.Token(), q)
	if err != nil {
		h.logger.Error("list daily sales", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, FromGroups(groups, q.Order))
}

func (h *Handler) listBoxes(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseQuery(w, r)
	if !ok {
		return
	}
	sess := shared.SessionFromContext(r.Context())
	groups, err := h.service.BoxSales(r.Context(), sess.Token(), q)
	if err != nil {
		h.logger.Error("list box sales", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, FromGroups(groups, q.Order))
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseQuery(w, r)
	if !ok {
		return
	}
	sess := shared.SessionFromContext(r.Context())

	var (
		groups []DayGroup
		err    error
	)
	if r.URL.Query().Get("kind") == "boxes" {
		groups, err = h.service.BoxSales(r.Context(), sess.Token(), q)
	} else {
		groups, err = h.service.DailySales(r.Context(), sess.Token(), q)
	}
	if err != nil {
		h.logger.Error("export sales csv", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sales.csv"`)
	if err := WriteCSV(w, groups); err != nil {
		h.logger.Error("write sales csv", slog.Any("error", err))
	}
}

func (h *Handler) createDaily(w http.ResponseWriter, r *http.Request) {
	var payload CreateSaleRequest
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if !h.authorizeEntry(w, r, &payload.HotelID) {
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	sess := shared.SessionFromContext(r.Context())
	created, err := h.service.SubmitDailySale(r.Context(), sess.Token(), payload)
	if err != nil {
		h.logger.Error("create daily sale", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) createBox(w http.ResponseWriter, r *http.Request) {
	var payload CreateBoxSaleRequest
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if !h.authorizeEntry(w, r, &payload.HotelID) {
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	sess := shared.SessionFromContext(r.Context())
	created, err := h.service.SubmitBoxSale(r.Context(), sess.Token(), payload)
	if err != nil {
		h.logger.Error("create box sale", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// parseQuery resolves listing parameters and scopes hotel_id by role: staff
// are pinned to their own hotel, managers to one of their managed hotels.
// From and to are required before any upstream call is made.
func (h *Handler) parseQuery(w http.ResponseWriter, r *http.Request) (Query, bool) {
	params := r.URL.Query()
	q := Query{
		From:   params.Get("from"),
		To:     params.Get("to"),
		Search: params.Get("q"),
		Order:  ParseOrder(params.Get("order")),
	}
	if q.From == "" || q.To == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "from and to query parameters are required")
		return Query{}, false
	}
	if raw := params.Get("hotel_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "hotel_id must be a positive integer")
			return Query{}, false
		}
		q.HotelID = id
	}

	identity := shared.IdentityFromContext(r.Context())
	switch identity.Role {
	case shared.RoleStaff:
		if identity.Hotel == nil {
			httpx.Problem(w, http.StatusForbidden, "Forbidden", "no hotel assigned to this account")
			return Query{}, false
		}
		q.HotelID = identity.Hotel.ID
	case shared.RoleManager:
		if q.HotelID != 0 && !managesHotel(identity, q.HotelID) {
			httpx.Problem(w, http.StatusForbidden, "Forbidden", "hotel not managed by this account")
			return Query{}, false
		}
	}
	return q, true
}

// authorizeEntry pins the write target the same way parseQuery pins reads.
func (h *Handler) authorizeEntry(w http.ResponseWriter, r *http.Request, hotelID *int64) bool {
	identity := shared.IdentityFromContext(r.Context())
	switch identity.Role {
	case shared.RoleStaff:
		if identity.Hotel == nil {
			httpx.Problem(w, http.StatusForbidden, "Forbidden", "no hotel assigned to this account")
			return false
		}
		*hotelID = identity.Hotel.ID
	case shared.RoleManager:
		if !managesHotel(identity, *hotelID) {
			httpx.Problem(w, http.StatusForbidden, "Forbidden", "hotel not managed by this account")
			return false
		}
	}
	return true
}

func managesHotel(identity *shared.Identity, hotelID int64) bool {
	for _, hotel := range identity.Hotels {
		if hotel.ID == hotelID {
			return true
		}
	}
	return false
}
