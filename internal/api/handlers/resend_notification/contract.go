package resend_notification

import (
	"context"

	resendNotification "github.com/eduschools/EduSchools-BookingService/internal/usecase/resend_notification"
)

type ResendNotificationUseCase interface {
	Execute(ctx context.Context, req *resendNotification.Request) (*resendNotification.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
