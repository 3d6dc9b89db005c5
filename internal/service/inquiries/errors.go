package inquiries

import "errors"

var (
	// ErrInvalidInput возвращается при незаполненных или некорректных полях формы
	ErrInvalidInput = errors.New("inquiries: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("inquiries: internal error")
)
