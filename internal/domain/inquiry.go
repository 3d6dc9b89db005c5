package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage сообщение из формы обратной связи
type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// SchoolRegistration заявка на подключение школы
type SchoolRegistration struct {
	ID            uuid.UUID
	SchoolName    string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	StudentCount  string
	Plan          string
	Message       *string
	CreatedAt     time.Time
}
