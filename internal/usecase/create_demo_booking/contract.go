package create_demo_booking

import (
	"github.com/eduschools/EduSchools-BookingService/internal/service/scheduler"
)

// SessionFactory создает сессии записи
type SessionFactory interface {
	NewSession() *scheduler.Session
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
