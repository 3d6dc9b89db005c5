package scheduler

import (
	"time"

	"github.com/google/uuid"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	"github.com/eduschools/EduSchools-BookingService/pkg/ptr"
	"github.com/eduschools/EduSchools-BookingService/pkg/validation"
)

// Details поля формы записи на демонстрацию, кроме слота
type Details struct {
	Name     string `json:"name" validate:"required,notblank,max=200"`
	Email    string `json:"email" validate:"required,email,max=200"`
	Position string `json:"position" validate:"required,notblank,max=200"`

	PhoneNumber string `json:"phoneNumber" validate:"max=50"`

	SchoolName    string `json:"schoolName" validate:"required,notblank,max=200"`
	SchoolAddress string `json:"schoolAddress" validate:"required,notblank,max=2000"`
	SchoolType    string `json:"schoolType" validate:"required,notblank,max=200"`
	StudentCount  string `json:"studentCount" validate:"required,notblank,max=200"`
	CurrentSystem string `json:"currentSystem" validate:"max=200"`

	SpecificNeeds          []string `json:"specificNeeds" validate:"max=20,dive,notblank,max=200"`
	PreferredContactMethod string   `json:"preferredContactMethod" validate:"required,notblank,max=200"`
	Timeframe              string   `json:"timeframe" validate:"required,notblank,max=200"`
	DemoMode               string   `json:"demoMode" validate:"required,notblank,max=200"`
	AdditionalComments     string   `json:"additionalComments" validate:"max=2000"`
}

// Draft черновик заявки: поля формы и выбранный слот
type Draft struct {
	Details
	Slot *domain.Slot
}

// Поля слота в ошибках валидации
const (
	FieldPreferredDate = "preferredDemoDate"
	FieldPreferredTime = "preferredDemoTime"
)

// Validate проверяет обязательные поля и наличие слота
func (d *Draft) Validate() error {
	fields, err := validation.Struct(d.Details)
	if err != nil {
		return err
	}

	if d.Slot == nil || d.Slot.IsZero() {
		fields = append(fields,
			validation.FieldError{Field: FieldPreferredDate, Rule: "required"},
			validation.FieldError{Field: FieldPreferredTime, Rule: "required"},
		)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ToBooking новое бронирование в статусе pending
// specific_needs в базе NOT NULL, поэтому пустой список, а не nil
func (d *Draft) ToBooking() *domain.DemoBooking {
	needs := make([]string, 0, len(d.SpecificNeeds))
	needs = append(needs, d.SpecificNeeds...)

	return &domain.DemoBooking{
		ID:                     uuid.New(),
		Name:                   d.Name,
		Email:                  d.Email,
		Position:               d.Position,
		PhoneNumber:            optional(d.PhoneNumber),
		SchoolName:             d.SchoolName,
		SchoolAddress:          d.SchoolAddress,
		SchoolType:             d.SchoolType,
		StudentCount:           d.StudentCount,
		CurrentSystem:          optional(d.CurrentSystem),
		SpecificNeeds:          needs,
		PreferredContactMethod: d.PreferredContactMethod,
		Timeframe:              d.Timeframe,
		DemoMode:               d.DemoMode,
		AdditionalComments:     optional(d.AdditionalComments),
		Slot:                   *d.Slot,
		Status:                 domain.StatusPending,
	}
}

// clone копия черновика без общих ссылок
func (d Draft) clone() Draft {
	d.SpecificNeeds = append([]string(nil), d.SpecificNeeds...)
	if d.Slot != nil {
		d.Slot = ptr.Ptr(*d.Slot)
	}
	return d
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return ptr.Ptr(s)
}

// draftFromBooking восстанавливает черновик по уже сохраненному бронированию
func draftFromBooking(b *domain.DemoBooking) Draft {
	return Draft{
		Details: Details{
			Name:                   b.Name,
			Email:                  b.Email,
			Position:               b.Position,
			PhoneNumber:            ptr.Deref(b.PhoneNumber),
			SchoolName:             b.SchoolName,
			SchoolAddress:          b.SchoolAddress,
			SchoolType:             b.SchoolType,
			StudentCount:           b.StudentCount,
			CurrentSystem:          ptr.Deref(b.CurrentSystem),
			SpecificNeeds:          append([]string(nil), b.SpecificNeeds...),
			PreferredContactMethod: b.PreferredContactMethod,
			Timeframe:              b.Timeframe,
			DemoMode:               b.DemoMode,
			AdditionalComments:     ptr.Deref(b.AdditionalComments),
		},
		Slot: ptr.Ptr(b.Slot),
	}
}

// today полночь текущего дня в часовом поясе расписания
func today(now time.Time, loc *time.Location) time.Time {
	return domain.StartOfDay(now.In(loc))
}
