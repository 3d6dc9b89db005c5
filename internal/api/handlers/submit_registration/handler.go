package submit_registration

import (
	"errors"
	"net/http"

	"github.com/eduschools/EduSchools-BookingService/internal/api/handlers"
	"github.com/eduschools/EduSchools-BookingService/internal/service/inquiries"
	"github.com/eduschools/EduSchools-BookingService/internal/service/inquiries/models"
	"github.com/eduschools/EduSchools-BookingService/pkg/validation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidForm        = "please fill in all required fields"
	msgSubmitted          = "thank you for registering, our team will contact you to complete the setup"
)

// SubmitResponse ответ на отправку формы
type SubmitResponse struct {
	*models.SubmitResponse
	Message string `json:"message"`
}

type Handler struct {
	service InquiryService
	logger  Logger
}

func NewHandler(service InquiryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/registrations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegistrationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /registrations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SubmitRegistration(r.Context(), &req)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /registrations - Validation failed: %v", verr)
			handlers.RespondValidationError(w, msgInvalidForm, verr.Fields)

		case errors.Is(err, inquiries.ErrInvalidInput):
			h.logger.Warn("POST /registrations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidForm)

		default:
			h.logger.Error("POST /registrations - Failed to save: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /registrations - Saved: id=%s, notification_delayed=%t", result.ID, result.NotificationDelayed)
	handlers.RespondJSON(w, http.StatusCreated, &SubmitResponse{
		SubmitResponse: result,
		Message:        msgSubmitted,
	})
}
