package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
)

// AvailabilityIndex индекс занятых слотов
type AvailabilityIndex interface {
	Reload(ctx context.Context) error
	Loaded() bool
	IsBooked(slot domain.Slot) bool
	SlotsForDate(date time.Time) []domain.SlotStatus
}

// SlotStore хранилище бронирований
type SlotStore interface {
	CreateBooking(ctx context.Context, booking *domain.DemoBooking) (*domain.DemoBooking, error)
	MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Notifier отправка письма о новой заявке
type Notifier interface {
	NotifyDemoBooking(ctx context.Context, booking *domain.DemoBooking) error
}

// MetricsRecorder интерфейс для учета исходов записи
type MetricsRecorder interface {
	RecordBooking(outcome string)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
