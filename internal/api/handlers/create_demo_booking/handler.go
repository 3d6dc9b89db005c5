package create_demo_booking

import (
	"errors"
	"net/http"

	"github.com/eduschools/EduSchools-BookingService/internal/api/handlers"
	"github.com/eduschools/EduSchools-BookingService/internal/service/scheduler"
	createDemoBooking "github.com/eduschools/EduSchools-BookingService/internal/usecase/create_demo_booking"
)

const (
	msgInvalidRequestBody        = "invalid request body"
	msgInvalidForm               = "please fill in all required fields"
	msgDateNotSelectable         = "demos can only be booked on weekdays within the booking window"
	msgSlotConflict              = "this time slot has just been booked, please choose another one"
	msgStoreUnavailable          = "bookings are temporarily unavailable, please try again shortly"
	msgBooked                    = "demo booked, we will contact you to confirm"
	msgBookedNotificationDelayed = "demo booked, but our confirmation may be delayed; please contact us if you do not hear back"
)

type Handler struct {
	useCase CreateDemoBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateDemoBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/demo-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateDemoBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /demo-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /demo-bookings - Failed to parse request: %v", err)
		var fe *formatError
		if errors.As(err, &fe) {
			handlers.RespondValidationError(w, msgInvalidForm, fe.fields)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var verr *scheduler.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /demo-bookings - Validation failed: %v", verr)
			handlers.RespondValidationError(w, msgInvalidForm, verr.Fields)

		case errors.Is(err, createDemoBooking.ErrInvalidInput):
			h.logger.Warn("POST /demo-bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidForm)

		case errors.Is(err, createDemoBooking.ErrDateNotSelectable):
			h.logger.Warn("POST /demo-bookings - Date not selectable: date=%s", req.PreferredDemoDate)
			handlers.RespondBadRequest(w, msgDateNotSelectable)

		case errors.Is(err, createDemoBooking.ErrSlotConflict):
			h.logger.Warn("POST /demo-bookings - Slot conflict: date=%s, time=%s", req.PreferredDemoDate, req.PreferredDemoTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createDemoBooking.ErrStoreUnavailable):
			h.logger.Error("POST /demo-bookings - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /demo-bookings - Failed to create booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /demo-bookings - Booking created: booking_id=%s, notification_delayed=%t",
		result.ID, result.NotificationDelayed)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
