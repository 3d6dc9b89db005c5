package models

import (
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         string    `json:"id"`
	SchoolName string    `json:"schoolName"`
	Date       string    `json:"date"` // "2025-06-11"
	Time       string    `json:"time"` // "10:00"
	DemoMode   string    `json:"demoMode"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FromDomainBooking конвертирует domain.DemoBooking в BookingResponse
func FromDomainBooking(b *domain.DemoBooking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID.String(),
		SchoolName: b.SchoolName,
		Date:       b.Slot.Date.Format(domain.DateFormat),
		Time:       b.Slot.Time.String(),
		DemoMode:   b.DemoMode,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}
}
