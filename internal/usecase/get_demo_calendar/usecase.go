package get_demo_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
)

// UseCase use case для получения календаря записи на месяц
type UseCase struct {
	location     *time.Location
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(location *time.Location, horizonDays int, logger Logger) *UseCase {
	return &UseCase{
		location:     location,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения календаря
// Использует один снимок текущего времени на весь расчет
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.location)
	today := domain.StartOfDay(now)

	month := today
	if !req.Month.IsZero() {
		month = domain.DateIn(req.Month, uc.location)
	}
	month = firstOfMonth(month)

	if month.Year() < 1970 || month.Year() > 9999 {
		uc.logger.Warn("GetDemoCalendar: month %s out of range", month.Format(domain.MonthFormat))
		return nil, fmt.Errorf("%w: month out of range", ErrInvalidInput)
	}

	uc.logger.Info("GetDemoCalendar: month=%s, today=%s", month.Format(domain.MonthFormat), today.Format(domain.DateFormat))

	return &Response{
		Month:        month,
		Today:        today,
		LastBookable: today.AddDate(0, 0, uc.horizonDays),
		Weeks:        generateMonth(today, month, uc.horizonDays),
	}, nil
}
