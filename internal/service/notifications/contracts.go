package notifications

import (
	"context"

	"github.com/eduschools/EduSchools-BookingService/internal/integrations/resend"
)

// EmailSender интерфейс клиента почтового API
type EmailSender interface {
	Send(ctx context.Context, email *resend.Email) (string, error)
}

// MetricsRecorder интерфейс для учета отправленных писем
type MetricsRecorder interface {
	RecordNotification(kind, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
