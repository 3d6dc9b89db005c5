package create_demo_booking

import "errors"

var (
	// ErrInvalidInput возвращается при незаполненных или некорректных полях формы
	ErrInvalidInput = errors.New("create_demo_booking: invalid input data")

	// ErrDateNotSelectable возвращается для прошедших дат, выходных и дат за горизонтом записи
	ErrDateNotSelectable = errors.New("create_demo_booking: date is not selectable")

	// ErrSlotConflict возвращается, когда слот уже занят. Нужно выбрать другой
	ErrSlotConflict = errors.New("create_demo_booking: slot is already booked")

	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	ErrStoreUnavailable = errors.New("create_demo_booking: booking store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_demo_booking: internal error")
)
