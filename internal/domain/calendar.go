package domain

import "time"

// DisabledReason причина, по которой день нельзя выбрать. Пустая строка - день доступен
type DisabledReason string

const (
	ReasonNone          DisabledReason = ""
	ReasonOutOfMonth    DisabledReason = "out_of_month"
	ReasonPast          DisabledReason = "past"
	ReasonBeyondHorizon DisabledReason = "beyond_horizon"
	ReasonWeekend       DisabledReason = "weekend"
)

// StartOfDay полночь того же дня в той же локации
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ClassifyDate применяет правила выбора даты (кроме принадлежности месяцу) в порядке приоритета:
// прошлое, дальше горизонта (today+horizonDays включительно доступен), выходной
func ClassifyDate(date, today time.Time, horizonDays int) DisabledReason {
	day := StartOfDay(date)
	today = StartOfDay(today)

	if day.Before(today) {
		return ReasonPast
	}
	if day.After(today.AddDate(0, 0, horizonDays)) {
		return ReasonBeyondHorizon
	}
	if IsWeekend(day) {
		return ReasonWeekend
	}
	return ReasonNone
}

// IsSelectableDate true, если на дату можно записаться
func IsSelectableDate(date, today time.Time, horizonDays int) bool {
	return ClassifyDate(date, today, horizonDays) == ReasonNone
}

// IsWeekend суббота или воскресенье
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DateIn та же календарная дата в полночь в локации loc
func DateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
