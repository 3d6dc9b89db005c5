package get_demo_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/api/handlers"
	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	getDemoSlots "github.com/eduschools/EduSchools-BookingService/internal/usecase/get_demo_slots"
)

const (
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD"
	msgNotSelectable = "demos can only be booked on weekdays within the booking window"
	msgUnavailable   = "availability is temporarily unavailable, please try again shortly"
)

type Handler struct {
	useCase GetDemoSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDemoSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/demo-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /demo-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDemoSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDemoSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getDemoSlots.ErrDateNotSelectable):
			h.logger.Warn("GET /demo-slots - Date not selectable: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgNotSelectable)

		case errors.Is(err, getDemoSlots.ErrStoreUnavailable):
			h.logger.Error("GET /demo-slots - Availability unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /demo-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Stale {
		h.logger.Warn("GET /demo-slots - Serving stale availability for date=%s", dateStr)
	}
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
