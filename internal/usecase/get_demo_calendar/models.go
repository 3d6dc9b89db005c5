package get_demo_calendar

import (
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
)

// Request модель запроса сетки месяца
type Request struct {
	Month time.Time // любой момент внутри месяца, нулевое значение - текущий месяц
}

// Response сетка месяца: целые недели с воскресенья по субботу
type Response struct {
	Month        time.Time // первое число месяца
	Today        time.Time
	LastBookable time.Time // today + горизонт
	Weeks        [][]Day
}

// Day ячейка календаря
type Day struct {
	Date       time.Time
	InMonth    bool
	Today      bool
	Sunday     bool // только для отображения
	Selectable bool
	Reason     domain.DisabledReason
}
