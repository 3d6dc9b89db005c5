package domain

import "github.com/eduschools/EduSchools-BookingService/pkg/types"

// Time format constants
const (
	TimeFormat        = "15:04"                   // HH:MM
	DateFormat        = "2006-01-02"              // YYYY-MM-DD
	MonthFormat       = "2006-01"                 // YYYY-MM
	DisplayDateFormat = "Monday, January 2, 2006" // формат даты в письмах
)

// Scheduling constants
const (
	DefaultHorizonDays  = 30 // на сколько дней вперед можно записаться (включительно)
	SlotDurationMinutes = 60
	DaysInWeek          = 7
)

// TimeSlots фиксированный список часовых слотов демонстрации
var TimeSlots = []types.TimeString{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00",
}

// IsTimeSlot проверяет, что время входит в фиксированный список слотов
func IsTimeSlot(t types.TimeString) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// Поля формы
const (
	MaxNameLength    = 200
	MaxTextLength    = 2000
	MaxSpecificNeeds = 20
)
