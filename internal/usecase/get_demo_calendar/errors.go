package get_demo_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном месяце
	ErrInvalidInput = errors.New("get_demo_calendar: invalid input data")
)
