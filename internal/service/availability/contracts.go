package availability

import (
	"context"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
)

// SlotLister источник занятых слотов (хранилище бронирований)
type SlotLister interface {
	ListBookedSlots(ctx context.Context) ([]domain.Slot, error)
}

// MetricsRecorder интерфейс для учета перезагрузок индекса
type MetricsRecorder interface {
	RecordIndexReload(result string, size int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
