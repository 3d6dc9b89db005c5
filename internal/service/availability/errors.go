package availability

import "errors"

var (
	// ErrStoreUnavailable возвращается, когда не удалось загрузить занятые слоты.
	// Ранее загруженный индекс при этом сохраняется
	ErrStoreUnavailable = errors.New("availability: slot store unavailable")
)
