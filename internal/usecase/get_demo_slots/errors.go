package get_demo_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_demo_slots: invalid input data")

	// ErrDateNotSelectable возвращается для прошедших дат, выходных и дат за горизонтом записи
	ErrDateNotSelectable = errors.New("get_demo_slots: date is not selectable")

	// ErrStoreUnavailable возвращается, когда индекс не удалось загрузить ни разу
	ErrStoreUnavailable = errors.New("get_demo_slots: availability is temporarily unavailable")
)
