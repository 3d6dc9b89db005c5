package scheduler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	"github.com/eduschools/EduSchools-BookingService/pkg/validation"
)

var (
	// ErrValidation возвращается, когда в черновике не заполнены обязательные поля
	ErrValidation = errors.New("scheduler: validation failed")

	// ErrSlotConflict возвращается, когда выбранный слот уже занят
	ErrSlotConflict = errors.New("scheduler: slot is already booked")

	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	ErrStoreUnavailable = errors.New("scheduler: booking store unavailable")

	// ErrDateNotSelectable возвращается для прошедших дат, выходных и дат за горизонтом записи
	ErrDateNotSelectable = errors.New("scheduler: date is not selectable")

	// ErrInvalidTime возвращается для времени вне списка слотов
	ErrInvalidTime = errors.New("scheduler: time is not a bookable slot")

	// ErrIllegalTransition возвращается при операции, недопустимой в текущем состоянии
	ErrIllegalTransition = errors.New("scheduler: illegal transition")

	// ErrDelivery возвращается, когда бронирование сохранено, но письмо не отправлено
	ErrDelivery = errors.New("scheduler: booking recorded, notification not delivered")
)

// ValidationError список невалидных полей черновика
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(validation.Names(e.Fields), ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// DateError дата недоступна для записи
type DateError struct {
	Date   time.Time
	Reason domain.DisabledReason
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrDateNotSelectable, e.Date.Format(domain.DateFormat), e.Reason)
}

func (e *DateError) Unwrap() error {
	return ErrDateNotSelectable
}
