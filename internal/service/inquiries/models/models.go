package models

import (
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	"github.com/eduschools/EduSchools-BookingService/pkg/ptr"
)

// ContactRequest сообщение из формы обратной связи
type ContactRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=200"`
	Email   string `json:"email" validate:"required,email,max=200"`
	Phone   string `json:"phone" validate:"max=50"`
	Subject string `json:"subject" validate:"required,notblank,max=200"`
	Message string `json:"message" validate:"required,notblank,max=2000"`
}

// ToDomain конвертирует запрос в domain.ContactMessage
func (r *ContactRequest) ToDomain() *domain.ContactMessage {
	msg := &domain.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
	if r.Phone != "" {
		msg.Phone = ptr.Ptr(r.Phone)
	}
	return msg
}

// RegistrationRequest заявка на подключение школы
type RegistrationRequest struct {
	SchoolName    string `json:"schoolName" validate:"required,notblank,max=200"`
	ContactPerson string `json:"contactPerson" validate:"required,notblank,max=200"`
	Email         string `json:"email" validate:"required,email,max=200"`
	Phone         string `json:"phone" validate:"required,notblank,max=50"`
	Address       string `json:"address" validate:"required,notblank,max=2000"`
	StudentCount  string `json:"studentCount" validate:"required,notblank,max=200"`
	Plan          string `json:"plan" validate:"required,notblank,max=200"`
	Message       string `json:"message" validate:"max=2000"`
}

// ToDomain конвертирует запрос в domain.SchoolRegistration
func (r *RegistrationRequest) ToDomain() *domain.SchoolRegistration {
	reg := &domain.SchoolRegistration{
		SchoolName:    r.SchoolName,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		StudentCount:  r.StudentCount,
		Plan:          r.Plan,
	}
	if r.Message != "" {
		reg.Message = ptr.Ptr(r.Message)
	}
	return reg
}

// SubmitResponse ответ на сохраненное обращение
type SubmitResponse struct {
	ID                  string    `json:"id"`
	CreatedAt           time.Time `json:"createdAt"`
	NotificationDelayed bool      `json:"notificationDelayed"`
}
