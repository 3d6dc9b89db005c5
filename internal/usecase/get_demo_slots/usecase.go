package get_demo_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
)

// UseCase use case для получения статусов слотов на дату
type UseCase struct {
	index        AvailabilityIndex
	location     *time.Location
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(index AvailabilityIndex, location *time.Location, horizonDays int, logger Logger) *UseCase {
	return &UseCase{
		index:        index,
		location:     location,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
// Для недоступной даты слоты не возвращаются вовсе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := domain.DateIn(req.Date, uc.location)
	today := domain.StartOfDay(uc.timeProvider.Now().In(uc.location))

	uc.logger.Info("GetDemoSlots: date=%s", date.Format(domain.DateFormat))

	if reason := domain.ClassifyDate(date, today, uc.horizonDays); reason != domain.ReasonNone {
		uc.logger.Warn("GetDemoSlots: date %s is not selectable: %s", date.Format(domain.DateFormat), reason)
		return nil, fmt.Errorf("%w: %s", ErrDateNotSelectable, reason)
	}

	stale := false
	if err := uc.index.Reload(ctx); err != nil {
		if !uc.index.Loaded() {
			uc.logger.Error("GetDemoSlots: availability unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Warn("GetDemoSlots: reload failed, serving stale availability: %v", err)
		stale = true
	}

	return &Response{
		Date:     date,
		Slots:    toSlots(uc.index.SlotsForDate(date)),
		Stale:    stale,
		LoadedAt: uc.index.LoadedAt(),
	}, nil
}
