package expenses

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hoteldesk/hoteldesk/internal/platform/httpx"
	"github.com/hoteldesk/hoteldesk/internal/shared"
)

// Handler serves the monthly expense screens.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers expense routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.month)
	r.Get("/breakdown", h.breakdown)
	r.Post("/", h.save)
	r.Put("/", h.update)
}

type monthView struct {
	Current  Sheet `json:"current"`
	Previous Sheet `json:"previous"`
}

func (h *Handler) month(w http.ResponseWriter, r *http.Request) {
	hotelID, year, month, ok := h.parseMonthQuery(w, r)
	if !ok {
		return
	}
	sess := shared.SessionFromContext(r.Context())
	current, previous, err := h.service.MonthWithPrevious(r.Context(), sess.Token(), hotelID, year, month)
	if err != nil {
		h.logger.Error("load expense month", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, monthView{Current: current, Previous: previous})
}

func (h *Handler) breakdown(w http.ResponseWriter, r *http.Request) {
	hotelID, year, month, ok := h.parseMonthQuery(w, r)
	if !ok {
		return
	}
	sess := shared.SessionFromContext(r.Context())
	sheet, err := h.service.Month(r.Context(), sess.Token(), hotelID, year, month)
	if err != nil {
		h.logger.Error("load expense breakdown", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"total":     sheet.Total(),
		"breakdown": sheet.Breakdown(),
	})
}

type sheetPayload struct {
	HotelID       int64   `json:"hotel_id" validate:"required,gt=0"`
	Year          int     `json:"year" validate:"required,gte=2000,lte=2100"`
	Month         int     `json:"month" validate:"required,gte=1,lte=12"`
	Rent          float64 `json:"rent" validate:"gte=0"`
	LicenseFee    float64 `json:"license_fee" validate:"gte=0"`
	Salary        float64 `json:"salary" validate:"gte=0"`
	LightBill     float64 `json:"light_bill" validate:"gte=0"`
	Interest      float64 `json:"interest" validate:"gte=0"`
	Miscellaneous float64 `json:"miscellaneous" validate:"gte=0"`
}

func (p sheetPayload) sheet() Sheet {
	return Sheet{
		HotelID:       p.HotelID,
		Year:          p.Year,
		Month:         p.Month,
		Rent:          p.Rent,
		LicenseFee:    p.LicenseFee,
		Salary:        p.Salary,
		LightBill:     p.LightBill,
		Interest:      p.Interest,
		Miscellaneous: p.Miscellaneous,
	}
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, h.service.Save)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, h.service.Update)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, token string, sheet Sheet) (json.RawMessage, error)) {
	// Strict decoding rejects category keys outside the closed set before
	// anything reaches upstream.
	var payload sheetPayload
	if err := httpx.DecodeJSONStrict(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body must contain only known expense categories")
		return
	}
	if !h.authorizeHotel(w, r, &payload.HotelID) {
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	sess := shared.SessionFromContext(r.Context())
	saved, err := op(r.Context(), sess.Token(), payload.sheet())
	if err != nil {
		h.logger.Error("submit expense sheet", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *Handler) parseMonthQuery(w http.ResponseWriter, r *http.Request) (hotelID int64, year, month int, ok bool) {
	params := r.URL.Query()
	year, errYear := strconv.Atoi(params.Get("year"))
	month, errMonth := strconv.Atoi(params.Get("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "year and month query parameters are required")
		return 0, 0, 0, false
	}
	if raw := params.Get("hotel_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "hotel_id must be a positive integer")
			return 0, 0, 0, false
		}
		hotelID = id
	}
	if !h.authorizeHotel(w, r, &hotelID) {
		return 0, 0, 0, false
	}
	return hotelID, year, month, true
}

// authorizeHotel scopes the sheet's hotel by role: staff are pinned to their
// own hotel, managers must target a managed hotel.
func (h *Handler) authorizeHotel(w http.ResponseWriter, r *http.Request, hotelID *int64) bool {
	identity := shared.IdentityFromContext(r.Context())
	switch identity.Role {
	case shared.RoleStaff:
		if identity.Hotel == nil {
			httpx.Problem(w, http.StatusForbidden, "Forbidden", "no hotel assigned to this account")
			return false
		}
		*hotelID = identity.Hotel.ID
	case shared.RoleManager:
		found := false
		for _, hotel := range identity.Hotels {
			if hotel.ID == *hotelID {
				found = true
				break
			}
		}
		if !found {
			httpx.Problem(w, http.StatusForbidden, "Forbidden", "hotel not managed by this account")
			return false
		}
	default:
		if *hotelID == 0 {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "hotel_id query parameter is required")
			return false
		}
	}
	return true
}
