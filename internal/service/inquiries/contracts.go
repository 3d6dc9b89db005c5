package inquiries

import (
	"context"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
)

// InquiryRepository интерфейс репозитория обращений
type InquiryRepository interface {
	CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	CreateRegistration(ctx context.Context, reg *domain.SchoolRegistration) (*domain.SchoolRegistration, error)
}

// Notifier интерфейс отправки писем администратору
type Notifier interface {
	NotifyContactMessage(ctx context.Context, msg *domain.ContactMessage) error
	NotifyRegistration(ctx context.Context, reg *domain.SchoolRegistration) error
}

// MetricsRecorder интерфейс для учета обращений
type MetricsRecorder interface {
	RecordInquiry(kind, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
