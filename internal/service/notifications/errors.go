package notifications

import "errors"

var (
	// ErrDelivery возвращается, когда письмо не удалось отправить
	ErrDelivery = errors.New("notifications: delivery failed")

	// ErrRender возвращается при ошибке сборки тела письма
	ErrRender = errors.New("notifications: failed to render email")
)
