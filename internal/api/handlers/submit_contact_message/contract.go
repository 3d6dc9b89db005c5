package submit_contact_message

import (
	"context"

	"github.com/eduschools/EduSchools-BookingService/internal/service/inquiries/models"
)

type InquiryService interface {
	SubmitContact(ctx context.Context, req *models.ContactRequest) (*models.SubmitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
