package scheduler

import (
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
)

// Config параметры расписания
type Config struct {
	Location    *time.Location
	HorizonDays int
}

// Scheduler создает сессии записи и держит их общие зависимости
type Scheduler struct {
	index    AvailabilityIndex
	store    SlotStore
	notifier Notifier
	clock    TimeProvider
	metrics  MetricsRecorder
	logger   Logger

	location    *time.Location
	horizonDays int
}

// NewScheduler создает новый экземпляр планировщика
func NewScheduler(
	cfg Config,
	index AvailabilityIndex,
	store SlotStore,
	notifier Notifier,
	clock TimeProvider,
	metrics MetricsRecorder,
	logger Logger,
) *Scheduler {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	horizon := cfg.HorizonDays
	if horizon <= 0 {
		horizon = domain.DefaultHorizonDays
	}

	return &Scheduler{
		index:       index,
		store:       store,
		notifier:    notifier,
		clock:       clock,
		metrics:     metrics,
		logger:      logger,
		location:    loc,
		horizonDays: horizon,
	}
}

// NewSession новая сессия в состоянии Idle с пустым черновиком
func (s *Scheduler) NewSession() *Session {
	return &Session{
		sched: s,
		state: StateIdle,
	}
}

// ResumeFailed сессия для уже сохраненного бронирования, письмо по которому не ушло
// Confirm на такой сессии только повторяет отправку письма
func (s *Scheduler) ResumeFailed(booking *domain.DemoBooking) *Session {
	return &Session{
		sched:     s,
		state:     StateFailed,
		draft:     draftFromBooking(booking),
		committed: booking,
	}
}

// Location часовой пояс расписания
func (s *Scheduler) Location() *time.Location {
	return s.location
}

// HorizonDays горизонт записи в днях
func (s *Scheduler) HorizonDays() int {
	return s.horizonDays
}

// Today текущий день в часовом поясе расписания
func (s *Scheduler) Today() time.Time {
	return today(s.clock.Now(), s.location)
}

// CheckDate проверяет, что на дату можно записаться
func (s *Scheduler) CheckDate(date time.Time) error {
	date = domain.DateIn(date, s.location)
	if reason := domain.ClassifyDate(date, s.Today(), s.horizonDays); reason != domain.ReasonNone {
		return &DateError{Date: date, Reason: reason}
	}
	return nil
}
