package get_demo_slots

import (
	"context"
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
)

// AvailabilityIndex индекс занятых слотов
type AvailabilityIndex interface {
	Reload(ctx context.Context) error
	Loaded() bool
	LoadedAt() time.Time
	SlotsForDate(date time.Time) []domain.SlotStatus
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
