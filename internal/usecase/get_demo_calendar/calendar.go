package get_demo_calendar

import (
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
)

// firstOfMonth первое число месяца в полночь
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// generateMonth строит сетку месяца month относительно дня today
// Сетка начинается с воскресенья не позже 1-го числа и заканчивается субботой не раньше последнего.
// Правила по порядку: вне месяца, прошлое, за горизонтом, выходной
func generateMonth(today, month time.Time, horizonDays int) [][]Day {
	today = domain.DateIn(today, month.Location())
	first := firstOfMonth(month)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	weeks := make([][]Day, 0, 6)
	week := make([]Day, 0, domain.DaysInWeek)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		week = append(week, classifyDay(d, first.Month(), today, horizonDays))
		if len(week) == domain.DaysInWeek {
			weeks = append(weeks, week)
			week = make([]Day, 0, domain.DaysInWeek)
		}
	}

	return weeks
}

func classifyDay(d time.Time, month time.Month, today time.Time, horizonDays int) Day {
	day := Day{
		Date:    d,
		InMonth: d.Month() == month,
		Today:   d.Equal(today),
		Sunday:  d.Weekday() == time.Sunday,
	}

	if !day.InMonth {
		day.Reason = domain.ReasonOutOfMonth
		return day
	}

	day.Reason = domain.ClassifyDate(d, today, horizonDays)
	day.Selectable = day.Reason == domain.ReasonNone
	return day
}
