package submit_registration

import (
	"context"

	"github.com/eduschools/EduSchools-BookingService/internal/service/inquiries/models"
)

type InquiryService interface {
	SubmitRegistration(ctx context.Context, req *models.RegistrationRequest) (*models.SubmitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
