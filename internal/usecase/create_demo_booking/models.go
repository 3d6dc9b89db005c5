package create_demo_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	"github.com/eduschools/EduSchools-BookingService/internal/service/scheduler"
	"github.com/eduschools/EduSchools-BookingService/pkg/types"
)

// Request модель запроса на запись на демонстрацию
type Request struct {
	Details scheduler.Details
	Date    time.Time        // Дата демонстрации (без времени)
	Time    types.TimeString // Время начала слота, например "10:00"
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        uuid.UUID
	Date      time.Time
	Time      types.TimeString
	Status    domain.BookingStatus
	CreatedAt time.Time

	// бронирование сохранено, но письмо администратору не ушло
	NotificationDelayed bool
}

func toResponse(b *domain.DemoBooking, delayed bool) *Response {
	return &Response{
		ID:                  b.ID,
		Date:                b.Slot.Date,
		Time:                b.Slot.Time,
		Status:              b.Status,
		CreatedAt:           b.CreatedAt,
		NotificationDelayed: delayed,
	}
}
