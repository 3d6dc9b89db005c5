package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a demo booking
type BookingStatus string

// Статусы выставляются вне сервиса, кроме StatusPending
const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// InactiveStatuses бронирования в этих статусах не занимают слот
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// DemoBooking represents a persisted demo booking
// Сервис только создает записи, изменение и удаление выполняются вне его
type DemoBooking struct {
	ID uuid.UUID

	// Контактное лицо
	Name        string
	Email       string
	Position    string
	PhoneNumber *string

	// Школа
	SchoolName    string
	SchoolAddress string
	SchoolType    string
	StudentCount  string
	CurrentSystem *string

	// Пожелания к демонстрации
	SpecificNeeds          []string
	PreferredContactMethod string
	Timeframe              string
	DemoMode               string
	AdditionalComments     *string

	Slot      Slot
	Status    BookingStatus
	CreatedAt time.Time

	// момент успешной отправки письма администратору, nil если письмо не ушло
	NotifiedAt *time.Time
}

// IsPending returns true if the booking has not been processed yet
func (b *DemoBooking) IsPending() bool {
	return b.Status == StatusPending
}

// IsNotified returns true if the admin e-mail has been delivered
func (b *DemoBooking) IsNotified() bool {
	return b.NotifiedAt != nil
}

// IsActive returns true if the booking still holds its slot
func (b *DemoBooking) IsActive() bool {
	for _, s := range InactiveStatuses {
		if b.Status == s {
			return false
		}
	}
	return true
}
