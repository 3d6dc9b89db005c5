package get_demo_slots

import (
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	"github.com/eduschools/EduSchools-BookingService/pkg/types"
)

// Request модель запроса слотов на дату
type Request struct {
	Date time.Time // Дата (без времени)
}

// Response модель ответа со статусами слотов
type Response struct {
	Date     time.Time
	Slots    []Slot
	Stale    bool      // индекс не обновился, данные на момент LoadedAt
	LoadedAt time.Time // время последней успешной загрузки индекса
}

// Slot модель часового слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
	Booked          bool
}

func toSlots(statuses []domain.SlotStatus) []Slot {
	slots := make([]Slot, 0, len(statuses))
	for _, st := range statuses {
		slots = append(slots, Slot{
			StartTime:       st.Time,
			DurationMinutes: domain.SlotDurationMinutes,
			Booked:          st.Booked,
		})
	}
	return slots
}
