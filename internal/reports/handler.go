package reports

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hoteldesk/hoteldesk/internal/platform/httpx"
	"github.com/hoteldesk/hoteldesk/internal/shared"
)

// Handler serves the admin reporting views.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers report routes; the router guards them as admin-only.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales-by-city", h.salesByCity)
	r.Get("/sales-by-city.csv", h.salesByCityCSV)
	r.Get("/compare-hotels", h.compareHotels)
	r.Get("/compare-hotels.csv", h.compareHotelsCSV)
	r.Get("/expenses", h.expensesOverview)
	r.Get("/activity-logs", h.activityLogs)
	r.Get("/missing-sales", h.missingSales)
}

func (h *Handler) salesByCity(w http.ResponseWriter, r *http.Request) {
	from, to, ok := requireRange(w, r)
	if !ok {
		return
	}
	sess := shared.SessionFromContext(r.Context())
	groups, err := h.service.SalesByCity(r.Context(), sess.Token(), from, to)
	if err != nil {
		h.logger.Error("sales by city", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"cities": groups})
}

func (h *Handler) salesByCityCSV(w http.ResponseWriter, r *http.Request) {
	from, to, ok := requireRange(w, r)
	if !ok {
		return
	}
	sess := shared.SessionFromContext(r.Context())
	groups, err := h.service.SalesByCity(r.Context(), sess.Token(), from, to)
	if err != nil {
		h.logger.Error("sales by city csv", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sales-by-city.csv"`)
	if err := WriteCityCSV(w, groups); err != nil {
		h.logger.Error("write city csv", slog.Any("error", err))
	}
}

func (h *Handler) compareHotels(w http.ResponseWriter, r *http.Request) {
	from, to, ok := requireRange(w, r)
	if !ok {
		return
	}
	sess := shared.SessionFromContext(r.Context())
	comparison, err := h.service.CompareHotels(r.Context(), sess.Token(), from, to)
	if err != nil {
		h.logger.Error("compare hotels", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, comparison)
}

func (h *Handler) compareHotelsCSV(w http.ResponseWriter, r *http.Request) {
	from, to, ok := requireRange(w, r)
	if !ok {
		return
	}
	sess := shared.SessionFromContext(r.Context())
	comparison, err := h.service.CompareHotels(r.Context(), sess.Token(), from, to)
	if err != nil {
		h.logger.Error("compare hotels csv", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="compare-hotels.csv"`)
	if err := WriteComparisonCSV(w, comparison); err != nil {
		h.logger.Error("write comparison csv", slog.Any("error", err))
	}
}

func (h *Handler) expensesOverview(w http.ResponseWriter, r *http.Request) {
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "year and month query parameters are required")
		return
	}
	sess := shared.SessionFromContext(r.Context())
	rows, err := h.service.ExpensesOverview(r.Context(), sess.Token(), year, month)
	if err != nil {
		h.logger.Error("expenses overview", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"hotels": rows})
}

func (h *Handler) activityLogs(w http.ResponseWriter, r *http.Request) {
	from, to, ok := requireRange(w, r)
	if !ok {
		return
	}
	sess := shared.SessionFromContext(r.Context())
	out, err := h.service.ActivityLogs(r.Context(), sess.Token(), from, to)
	if err != nil {
		h.logger.Error("activity logs", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) missingSales(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "date query parameter is required")
		return
	}
	sess := shared.SessionFromContext(r.Context())
	out, err := h.service.MissingSales(r.Context(), sess.Token(), date)
	if err != nil {
		h.logger.Error("missing sales", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func requireRange(w http.ResponseWriter, r *http.Request) (from, to string, ok bool) {
	from = r.URL.Query().Get("from")
	to = r.URL.Query().Get("to")
	if from == "" || to == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "from and to query parameters are required")
		return "", "", false
	}
	return from, to, true
}
