package resend_notification

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("resend_notification: booking not found")

	// ErrBookingInactive возвращается для отмененных бронирований
	ErrBookingInactive = errors.New("resend_notification: booking is not active")

	// ErrAlreadyNotified возвращается, когда письмо по бронированию уже отправлено
	ErrAlreadyNotified = errors.New("resend_notification: notification already delivered")

	// ErrDelivery возвращается, когда письмо снова не удалось отправить
	ErrDelivery = errors.New("resend_notification: notification not delivered")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resend_notification: internal error")
)
