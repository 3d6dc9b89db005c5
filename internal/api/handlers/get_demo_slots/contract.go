package get_demo_slots

import (
	"context"

	getDemoSlots "github.com/eduschools/EduSchools-BookingService/internal/usecase/get_demo_slots"
)

type GetDemoSlotsUseCase interface {
	Execute(ctx context.Context, req *getDemoSlots.Request) (*getDemoSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
