package get_demo_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/api/handlers"
	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	getDemoCalendar "github.com/eduschools/EduSchools-BookingService/internal/usecase/get_demo_calendar"
)

const (
	msgInvalidMonth = "invalid month, expected YYYY-MM"
)

type Handler struct {
	useCase GetDemoCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetDemoCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/demo-calendar?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req getDemoCalendar.Request

	if month := r.URL.Query().Get("month"); month != "" {
		parsed, err := time.Parse(domain.MonthFormat, month)
		if err != nil {
			h.logger.Warn("GET /demo-calendar - Invalid month %q: %v", month, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		req.Month = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, getDemoCalendar.ErrInvalidInput):
			h.logger.Warn("GET /demo-calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
		default:
			h.logger.Error("GET /demo-calendar - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
