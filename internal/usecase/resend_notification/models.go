package resend_notification

import "github.com/google/uuid"

// Request модель запроса на повторную отправку письма
type Request struct {
	BookingID uuid.UUID
}

// Response модель ответа
type Response struct {
	BookingID uuid.UUID
	Notified  bool
}
