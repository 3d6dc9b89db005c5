package resend

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, сеть)
	ErrInternal = errors.New("resend client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("resend client: invalid response")

	// ErrRejected возвращается, когда API отклонило письмо (4xx)
	ErrRejected = errors.New("resend client: email rejected")
)
