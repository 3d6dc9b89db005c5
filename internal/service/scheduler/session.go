package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	bookingRepo "github.com/eduschools/EduSchools-BookingService/internal/infra/storage/booking"
	"github.com/eduschools/EduSchools-BookingService/pkg/metrics"
	"github.com/eduschools/EduSchools-BookingService/pkg/types"
)

// Session одна попытка записи на демонстрацию
// Слот не резервируется до успешной записи в хранилище
type Session struct {
	mu    sync.Mutex
	sched *Scheduler
	state State
	draft Draft

	// выбор в открытом пикере, в черновик попадает только по ConfirmSlot
	pickedDate time.Time
	pickedTime types.TimeString

	// сохраненное бронирование. Если задано, Confirm только повторяет отправку письма
	committed *domain.DemoBooking
}

// State текущее состояние сессии
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Draft копия черновика (для сводки перед подтверждением)
func (s *Session) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.clone()
}

// Booking сохраненное бронирование или nil
func (s *Session) Booking() *domain.DemoBooking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed
}

// SetDetails заполняет поля формы. Выбранный слот не меняется
func (s *Session) SetDetails(details Details) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return fmt.Errorf("%w: edit details in %s", ErrIllegalTransition, s.state)
	}
	s.draft.Details = details
	s.draft.SpecificNeeds = append([]string(nil), details.SpecificNeeds...)
	return nil
}

// Open перезагружает индекс при открытии формы
// Если загрузка не удалась, но старый индекс есть, работаем по нему
func (s *Session) Open(ctx context.Context) error {
	return s.sched.reloadIndex(ctx, "Open")
}

// PickDate выбирает дату в пикере и возвращает статусы слотов на нее
func (s *Session) PickDate(date time.Time) ([]domain.SlotStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := Transition(s.state, EventPickDate); err != nil {
		return nil, err
	}
	if !s.sched.index.Loaded() {
		return nil, fmt.Errorf("%w: availability index is not loaded", ErrStoreUnavailable)
	}
	if err := s.sched.CheckDate(date); err != nil {
		return nil, err
	}

	s.apply(EventPickDate)
	s.pickedDate = domain.DateIn(date, s.sched.location)
	s.pickedTime = ""

	return s.sched.index.SlotsForDate(s.pickedDate), nil
}

// PickTime выбирает свободное время на выбранную дату
func (s *Session) PickTime(t types.TimeString) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := Transition(s.state, EventPickTime); err != nil {
		return err
	}
	if !domain.IsTimeSlot(t) {
		return fmt.Errorf("%w: %q", ErrInvalidTime, t)
	}

	slot := domain.NewSlot(s.pickedDate, t)
	if s.sched.index.IsBooked(slot) {
		return fmt.Errorf("%w: %s", ErrSlotConflict, slot)
	}

	s.apply(EventPickTime)
	s.pickedTime = t
	return nil
}

// ConfirmSlot записывает выбранный слот в черновик и закрывает пикер
func (s *Session) ConfirmSlot() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fire(EventConfirmSlot); err != nil {
		return err
	}

	slot := domain.NewSlot(s.pickedDate, s.pickedTime)
	s.draft.Slot = &slot
	s.clearPicker()
	return nil
}

// CancelPicker закрывает пикер без изменения слота в черновике
func (s *Session) CancelPicker() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fire(EventCancelPicker); err != nil {
		return err
	}
	s.clearPicker()
	return nil
}

// Submit проверяет черновик, перезагружает индекс и только после этого
// повторно проверяет, что слот свободен. При успехе сессия ждет подтверждения
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if err := s.fire(EventSubmit); err != nil {
		s.mu.Unlock()
		return err
	}
	draft := s.draft.clone()
	s.mu.Unlock()

	err := s.sched.validate(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err == nil:
		s.apply(EventValidated)
	case errors.Is(err, ErrSlotConflict):
		s.draft.Slot = nil
		s.apply(EventConflict)
	default:
		s.apply(EventRejected)
	}
	return err
}

// Decline возврат из сводки к редактированию
func (s *Session) Decline() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fire(EventDecline)
}

// Reopen возврат к редактированию после ошибки записи
// Недоступно, если бронирование уже сохранено
func (s *Session) Reopen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.committed != nil {
		return fmt.Errorf("%w: booking %s is already recorded", ErrIllegalTransition, s.committed.ID)
	}
	return s.fire(EventReopen)
}

// Confirm сохраняет бронирование и отправляет письмо
// Повторный вызов после ErrDelivery не создает второе бронирование, а только повторяет отправку
func (s *Session) Confirm(ctx context.Context) (*domain.DemoBooking, error) {
	s.mu.Lock()
	if err := s.fire(EventConfirm); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	draft := s.draft.clone()
	committed := s.committed
	s.mu.Unlock()

	booking, err := s.sched.commit(ctx, draft, committed)

	s.mu.Lock()
	defer s.mu.Unlock()

	if booking != nil {
		s.committed = booking
	}

	switch {
	case err == nil:
		s.apply(EventCommitted)
	case errors.Is(err, ErrSlotConflict):
		s.draft.Slot = nil
		s.apply(EventConflict)
	default:
		s.apply(EventFailed)
	}
	return booking, err
}

func (s *Session) fire(event Event) error {
	to, err := Transition(s.state, event)
	if err != nil {
		return err
	}
	s.state = to
	return nil
}

// apply переход, допустимость которого уже гарантирована текущим состоянием
func (s *Session) apply(event Event) {
	if err := s.fire(event); err != nil {
		s.sched.logger.Error("Session: %v", err)
	}
}

func (s *Session) clearPicker() {
	s.pickedDate = time.Time{}
	s.pickedTime = ""
}

func (s *Scheduler) reloadIndex(ctx context.Context, op string) error {
	err := s.index.Reload(ctx)
	if err == nil {
		return nil
	}
	if s.index.Loaded() {
		s.logger.Warn("%s: availability reload failed, using stale index: %v", op, err)
		return nil
	}
	s.logger.Error("%s: availability index unavailable: %v", op, err)
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func (s *Scheduler) validate(ctx context.Context, draft Draft) error {
	if err := draft.Validate(); err != nil {
		s.metrics.RecordBooking(metrics.OutcomeInvalid)
		s.logger.Warn("Submit: invalid draft: %v", err)
		return err
	}

	slot := *draft.Slot
	if err := s.CheckDate(slot.Date); err != nil {
		s.metrics.RecordBooking(metrics.OutcomeInvalid)
		s.logger.Warn("Submit: %v", err)
		return err
	}
	if !domain.IsTimeSlot(slot.Time) {
		s.metrics.RecordBooking(metrics.OutcomeInvalid)
		return fmt.Errorf("%w: %q", ErrInvalidTime, slot.Time)
	}

	// повторная проверка только по индексу, загруженному после начала Submit
	if err := s.reloadIndex(ctx, "Submit"); err != nil {
		s.metrics.RecordBooking(metrics.OutcomeFailed)
		return err
	}

	if s.index.IsBooked(slot) {
		s.metrics.RecordBooking(metrics.OutcomeConflict)
		s.logger.Warn("Submit: slot %s was booked after it had been chosen", slot)
		return fmt.Errorf("%w: %s", ErrSlotConflict, slot)
	}

	return nil
}

func (s *Scheduler) commit(ctx context.Context, draft Draft, committed *domain.DemoBooking) (*domain.DemoBooking, error) {
	booking := committed
	retry := committed != nil

	if booking == nil {
		created, err := s.store.CreateBooking(ctx, draft.ToBooking())
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				s.metrics.RecordBooking(metrics.OutcomeConflict)
				s.logger.Warn("Confirm: slot %s taken by a concurrent booking", draft.Slot)
				return nil, fmt.Errorf("%w: %s", ErrSlotConflict, draft.Slot)
			}
			s.metrics.RecordBooking(metrics.OutcomeFailed)
			s.logger.Error("Confirm: failed to create booking for slot %s: %v", draft.Slot, err)
			return nil, fmt.Errorf("%w: CreateBooking: %v", ErrStoreUnavailable, err)
		}
		booking = created
		s.logger.Info("Confirm: booking id=%s created for slot %s", booking.ID, booking.Slot)

		if err := s.index.Reload(ctx); err != nil {
			s.logger.Warn("Confirm: availability reload after booking id=%s failed: %v", booking.ID, err)
		}
	}

	if err := s.notifier.NotifyDemoBooking(ctx, booking); err != nil {
		s.metrics.RecordBooking(metrics.OutcomePartial)
		s.logger.Error("Confirm: booking id=%s recorded, notification failed: %v", booking.ID, err)
		return booking, fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	// письмо ушло; если отметка не сохранится, повторная отправка останется возможной
	notifiedAt := s.clock.Now()
	if err := s.store.MarkNotified(ctx, booking.ID, notifiedAt); err != nil {
		s.logger.Warn("Confirm: booking id=%s notified, failed to record it: %v", booking.ID, err)
	} else {
		booking.NotifiedAt = &notifiedAt
	}

	if retry {
		s.metrics.RecordBooking(metrics.OutcomeNotifyRetried)
	} else {
		s.metrics.RecordBooking(metrics.OutcomeCreated)
	}
	s.logger.Info("Confirm: booking id=%s submitted", booking.ID)
	return booking, nil
}
