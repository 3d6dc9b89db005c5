package create_demo_booking

import (
	"context"

	createDemoBooking "github.com/eduschools/EduSchools-BookingService/internal/usecase/create_demo_booking"
)

type CreateDemoBookingUseCase interface {
	Execute(ctx context.Context, req *createDemoBooking.Request) (*createDemoBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
