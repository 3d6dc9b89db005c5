package domain

import (
	"time"

	"github.com/eduschools/EduSchools-BookingService/pkg/types"
)

// Slot bookable (date, hourly time) pair
type Slot struct {
	Date time.Time // полночь в часовом поясе расписания
	Time types.TimeString
}

// NewSlot создает слот, отбрасывая время суток у date
func NewSlot(date time.Time, t types.TimeString) Slot {
	return Slot{Date: StartOfDay(date), Time: t}
}

// SlotFromTime восстанавливает слот по моменту начала в часовом поясе loc
func SlotFromTime(startsAt time.Time, loc *time.Location) Slot {
	local := startsAt.In(loc)
	return NewSlot(local, types.NewTimeString(local))
}

// Key ключ слота в индексе доступности: "2025-06-10-09:00"
func (s Slot) Key() string {
	return SlotKey(s.Date, s.Time)
}

// StartsAt момент начала слота
func (s Slot) StartsAt() (time.Time, error) {
	return s.Time.On(s.Date)
}

// IsZero true для незаполненного слота
func (s Slot) IsZero() bool {
	return s.Date.IsZero() || s.Time.IsZero()
}

func (s Slot) String() string {
	return s.Key()
}

// SlotKey см. Slot.Key
func SlotKey(date time.Time, t types.TimeString) string {
	return date.Format(DateFormat) + "-" + t.String()
}

// SlotStatus состояние одного часового слота на выбранную дату
type SlotStatus struct {
	Time   types.TimeString
	Booked bool
}
