package get_demo_calendar

import (
	"context"

	getDemoCalendar "github.com/eduschools/EduSchools-BookingService/internal/usecase/get_demo_calendar"
)

type GetDemoCalendarUseCase interface {
	Execute(ctx context.Context, req *getDemoCalendar.Request) (*getDemoCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
