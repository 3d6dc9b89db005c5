package create_demo_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	"github.com/eduschools/EduSchools-BookingService/internal/service/scheduler"
)

// UseCase use case для записи на демонстрацию
// Проводит одну сессию планировщика через весь сценарий формы
type UseCase struct {
	sessions SessionFactory
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionFactory, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Execute выполняет use case записи на демонстрацию
// Если бронирование сохранено, а письмо не отправлено, возвращает ответ с NotificationDelayed
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateDemoBooking: school=%q, date=%s, time=%s",
		req.Details.SchoolName, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Проверяем форму до любых обращений к хранилищу
	slot := domain.NewSlot(req.Date, req.Time)
	draft := scheduler.Draft{Details: req.Details, Slot: &slot}
	if err := draft.Validate(); err != nil {
		uc.logger.Warn("CreateDemoBooking: validation failed: %v", err)
		return nil, uc.mapError(err)
	}

	session := uc.sessions.NewSession()
	if err := session.SetDetails(req.Details); err != nil {
		return nil, uc.mapError(err)
	}

	// 2. Открываем форму: свежий индекс занятых слотов
	if err := session.Open(ctx); err != nil {
		return nil, uc.mapError(err)
	}

	// 3. Выбор даты и времени в пикере
	if _, err := session.PickDate(req.Date); err != nil {
		return nil, uc.mapError(err)
	}
	if err := session.PickTime(req.Time); err != nil {
		return nil, uc.mapError(err)
	}
	if err := session.ConfirmSlot(); err != nil {
		return nil, uc.mapError(err)
	}

	// 4. Отправка формы: повторная проверка слота по перезагруженному индексу
	if err := session.Submit(ctx); err != nil {
		return nil, uc.mapError(err)
	}

	// 5. Подтверждение: запись в хранилище и письмо администратору
	booking, err := session.Confirm(ctx)
	if err != nil {
		if booking != nil && errors.Is(err, scheduler.ErrDelivery) {
			uc.logger.Warn("CreateDemoBooking: booking id=%s recorded, notification delayed: %v", booking.ID, err)
			return toResponse(booking, true), nil
		}
		return nil, uc.mapError(err)
	}

	uc.logger.Info("CreateDemoBooking: booking id=%s created for %s", booking.ID, booking.Slot)
	return toResponse(booking, false), nil
}

func (uc *UseCase) mapError(err error) error {
	switch {
	case errors.Is(err, scheduler.ErrValidation), errors.Is(err, scheduler.ErrInvalidTime):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, scheduler.ErrDateNotSelectable):
		return fmt.Errorf("%w: %w", ErrDateNotSelectable, err)
	case errors.Is(err, scheduler.ErrSlotConflict):
		uc.logger.Warn("CreateDemoBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrSlotConflict, err)
	case errors.Is(err, scheduler.ErrStoreUnavailable):
		uc.logger.Error("CreateDemoBooking: %v", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		uc.logger.Error("CreateDemoBooking: unexpected error: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
