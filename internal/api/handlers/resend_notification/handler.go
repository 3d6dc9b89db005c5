package resend_notification

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/eduschools/EduSchools-BookingService/internal/api/handlers"
	resendNotification "github.com/eduschools/EduSchools-BookingService/internal/usecase/resend_notification"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgNotFound         = "booking not found"
	msgInactive         = "booking is cancelled"
	msgAlreadyNotified  = "notification for this booking has already been delivered"
	msgDelivery         = "notification could not be delivered, please try again later"
)

type Handler struct {
	useCase ResendNotificationUseCase
	logger  Logger
}

func NewHandler(useCase ResendNotificationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/demo-bookings/{bookingId}/notification
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("POST /demo-bookings/{id}/notification - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resendNotification.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, resendNotification.ErrBookingNotFound):
			h.logger.Warn("POST /demo-bookings/{id}/notification - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, resendNotification.ErrBookingInactive):
			h.logger.Warn("POST /demo-bookings/{id}/notification - Booking inactive: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgInactive)

		case errors.Is(err, resendNotification.ErrAlreadyNotified):
			h.logger.Warn("POST /demo-bookings/{id}/notification - Already notified: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgAlreadyNotified)

		case errors.Is(err, resendNotification.ErrDelivery):
			h.logger.Error("POST /demo-bookings/{id}/notification - Delivery failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgDelivery)

		default:
			h.logger.Error("POST /demo-bookings/{id}/notification - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /demo-bookings/{id}/notification - Notification sent: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, &ResendResponse{
		BookingID: result.BookingID.String(),
		Notified:  result.Notified,
	})
}
