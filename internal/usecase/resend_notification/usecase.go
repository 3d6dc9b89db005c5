package resend_notification

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/eduschools/EduSchools-BookingService/internal/infra/storage/booking"
	"github.com/eduschools/EduSchools-BookingService/internal/service/scheduler"
)

// UseCase use case для повторной отправки письма по сохраненному бронированию
// Бронирование повторно не создается
type UseCase struct {
	bookingRepo BookingRepository
	sessions    SessionFactory
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, sessions SessionFactory, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		sessions:    sessions,
		logger:      logger,
	}
}

// Execute выполняет use case повторной отправки письма
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResendNotification: booking id=%s", req.BookingID)

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ResendNotification: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ResendNotification: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !booking.IsActive() {
		uc.logger.Warn("ResendNotification: booking id=%s has status %s", booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: status %s", ErrBookingInactive, booking.Status)
	}

	if booking.IsNotified() {
		uc.logger.Warn("ResendNotification: booking id=%s already notified at %s", booking.ID, booking.NotifiedAt)
		return nil, fmt.Errorf("%w: at %s", ErrAlreadyNotified, booking.NotifiedAt)
	}

	session := uc.sessions.ResumeFailed(booking)
	if _, err := session.Confirm(ctx); err != nil {
		if errors.Is(err, scheduler.ErrDelivery) {
			return nil, fmt.Errorf("%w: %v", ErrDelivery, err)
		}
		uc.logger.Error("ResendNotification: booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("ResendNotification: booking id=%s notification sent", booking.ID)
	return &Response{BookingID: booking.ID, Notified: true}, nil
}
