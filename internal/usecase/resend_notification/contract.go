package resend_notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	"github.com/eduschools/EduSchools-BookingService/internal/service/scheduler"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DemoBooking, error)
}

// SessionFactory восстанавливает сессию для сохраненного бронирования
type SessionFactory interface {
	ResumeFailed(booking *domain.DemoBooking) *scheduler.Session
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
