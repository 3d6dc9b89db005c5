package get_demo_calendar

import (
	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	getDemoCalendar "github.com/eduschools/EduSchools-BookingService/internal/usecase/get_demo_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Month            string          `json:"month"`            // "2025-06"
	Today            string          `json:"today"`            // "2025-06-02"
	LastBookableDate string          `json:"lastBookableDate"` // "2025-07-02"
	Weeks            [][]DayResponse `json:"weeks"`
}

// DayResponse ячейка календаря
type DayResponse struct {
	Date           string `json:"date"`
	InMonth        bool   `json:"inMonth"`
	Today          bool   `json:"today"`
	Sunday         bool   `json:"sunday"`
	Selectable     bool   `json:"selectable"`
	DisabledReason string `json:"disabledReason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getDemoCalendar.Response) *CalendarResponse {
	weeks := make([][]DayResponse, 0, len(resp.Weeks))
	for _, week := range resp.Weeks {
		days := make([]DayResponse, 0, len(week))
		for _, d := range week {
			days = append(days, DayResponse{
				Date:           d.Date.Format(domain.DateFormat),
				InMonth:        d.InMonth,
				Today:          d.Today,
				Sunday:         d.Sunday,
				Selectable:     d.Selectable,
				DisabledReason: string(d.Reason),
			})
		}
		weeks = append(weeks, days)
	}

	return &CalendarResponse{
		Month:            resp.Month.Format(domain.MonthFormat),
		Today:            resp.Today.Format(domain.DateFormat),
		LastBookableDate: resp.LastBookable.Format(domain.DateFormat),
		Weeks:            weeks,
	}
}
