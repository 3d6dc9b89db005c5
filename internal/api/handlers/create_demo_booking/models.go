package create_demo_booking

import (
	"fmt"
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	"github.com/eduschools/EduSchools-BookingService/internal/service/scheduler"
	createDemoBooking "github.com/eduschools/EduSchools-BookingService/internal/usecase/create_demo_booking"
	"github.com/eduschools/EduSchools-BookingService/pkg/types"
	"github.com/eduschools/EduSchools-BookingService/pkg/validation"
)

// CreateDemoBookingRequest HTTP request model, поля формы сайта
type CreateDemoBookingRequest struct {
	Name                   string   `json:"name"`
	Email                  string   `json:"email"`
	Position               string   `json:"position"`
	PhoneNumber            string   `json:"phoneNumber"`
	SchoolName             string   `json:"schoolName"`
	SchoolAddress          string   `json:"schoolAddress"`
	SchoolType             string   `json:"schoolType"`
	StudentCount           string   `json:"studentCount"`
	CurrentSystem          string   `json:"currentSystem"`
	SpecificNeeds          []string `json:"specificNeeds"`
	PreferredContactMethod string   `json:"preferredContactMethod"`
	Timeframe              string   `json:"timeframe"`
	DemoMode               string   `json:"demoMode"`
	AdditionalComments     string   `json:"additionalComments"`
	PreferredDemoDate      string   `json:"preferredDemoDate"` // "2025-06-11"
	PreferredDemoTime      string   `json:"preferredDemoTime"` // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                  string `json:"id"`
	Date                string `json:"date"`
	Time                string `json:"time"`
	Status              string `json:"status"`
	CreatedAt           string `json:"createdAt"`
	NotificationDelayed bool   `json:"notificationDelayed"`
	Message             string `json:"message"`
}

// formatError невалидный формат даты или времени
type formatError struct {
	fields []validation.FieldError
}

func (e *formatError) Error() string {
	return fmt.Sprintf("invalid format: %v", validation.Names(e.fields))
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые дата и время остаются нулевыми, их отсутствие отметит валидация черновика
func (r *CreateDemoBookingRequest) ToUseCaseRequest() (*createDemoBooking.Request, error) {
	var (
		date   time.Time
		start  types.TimeString
		fields []validation.FieldError
	)

	if r.PreferredDemoDate != "" {
		parsed, err := time.Parse(domain.DateFormat, r.PreferredDemoDate)
		if err != nil {
			fields = append(fields, validation.FieldError{Field: scheduler.FieldPreferredDate, Rule: "date"})
		}
		date = parsed
	}

	if r.PreferredDemoTime != "" {
		parsed, err := types.NewTimeStringFromString(r.PreferredDemoTime)
		if err != nil {
			fields = append(fields, validation.FieldError{Field: scheduler.FieldPreferredTime, Rule: "time"})
		}
		start = parsed
	}

	if len(fields) > 0 {
		return nil, &formatError{fields: fields}
	}

	return &createDemoBooking.Request{
		Details: scheduler.Details{
			Name:                   r.Name,
			Email:                  r.Email,
			Position:               r.Position,
			PhoneNumber:            r.PhoneNumber,
			SchoolName:             r.SchoolName,
			SchoolAddress:          r.SchoolAddress,
			SchoolType:             r.SchoolType,
			StudentCount:           r.StudentCount,
			CurrentSystem:          r.CurrentSystem,
			SpecificNeeds:          r.SpecificNeeds,
			PreferredContactMethod: r.PreferredContactMethod,
			Timeframe:              r.Timeframe,
			DemoMode:               r.DemoMode,
			AdditionalComments:     r.AdditionalComments,
		},
		Date: date,
		Time: start,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createDemoBooking.Response) *BookingResponse {
	message := msgBooked
	if resp.NotificationDelayed {
		message = msgBookedNotificationDelayed
	}

	return &BookingResponse{
		ID:                  resp.ID.String(),
		Date:                resp.Date.Format(domain.DateFormat),
		Time:                resp.Time.String(),
		Status:              string(resp.Status),
		CreatedAt:           resp.CreatedAt.UTC().Format(time.RFC3339),
		NotificationDelayed: resp.NotificationDelayed,
		Message:             message,
	}
}
