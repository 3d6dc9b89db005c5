package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	"github.com/eduschools/EduSchools-BookingService/internal/integrations/resend"
	"github.com/eduschools/EduSchools-BookingService/pkg/metrics"
	"github.com/eduschools/EduSchools-BookingService/pkg/ptr"
)

// Типы уведомлений (лейбл метрики)
const (
	KindDemoBooking    = "demo_booking"
	KindContactMessage = "contact_message"
	KindRegistration   = "registration"
)

const submittedOnFormat = "2 January 2006, 15:04 MST"

// Senders адреса отправителей для разных форм
type Senders struct {
	Demo         string
	Contact      string
	Registration string
}

// Service отправляет администратору письма о новых заявках
type Service struct {
	sender     EmailSender
	adminEmail string
	from       Senders
	location   *time.Location
	metrics    MetricsRecorder
	logger     Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	sender EmailSender,
	adminEmail string,
	from Senders,
	location *time.Location,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		sender:     sender,
		adminEmail: adminEmail,
		from:       from,
		location:   location,
		metrics:    metrics,
		logger:     logger,
	}
}

// NotifyDemoBooking отправляет письмо о новой заявке на демонстрацию
func (s *Service) NotifyDemoBooking(ctx context.Context, booking *domain.DemoBooking) error {
	html, err := render(templateDemoBooking, demoBookingView{
		ID:                     booking.ID.String(),
		Name:                   booking.Name,
		Email:                  booking.Email,
		Position:               booking.Position,
		PhoneNumber:            ptr.Deref(booking.PhoneNumber),
		SchoolName:             booking.SchoolName,
		SchoolAddress:          booking.SchoolAddress,
		SchoolType:             booking.SchoolType,
		StudentCount:           booking.StudentCount,
		CurrentSystem:          ptr.Deref(booking.CurrentSystem),
		Date:                   booking.Slot.Date.Format(domain.DisplayDateFormat),
		Time:                   booking.Slot.Time.String(),
		DemoMode:               booking.DemoMode,
		PreferredContactMethod: booking.PreferredContactMethod,
		Timeframe:              booking.Timeframe,
		SpecificNeeds:          booking.SpecificNeeds,
		AdditionalComments:     ptr.Deref(booking.AdditionalComments),
		SubmittedOn:            s.formatSubmitted(booking.CreatedAt),
	})
	if err != nil {
		s.logger.Error("NotifyDemoBooking: booking id=%s: %v", booking.ID, err)
		return err
	}

	subject := fmt.Sprintf("New Demo Request from %s - %s", booking.Name, booking.SchoolName)
	return s.send(ctx, KindDemoBooking, &resend.Email{
		From:    s.from.Demo,
		To:      []string{s.adminEmail},
		Subject: subject,
		HTML:    html,
		ReplyTo: booking.Email,
	})
}

// NotifyContactMessage отправляет письмо о сообщении из формы обратной связи
func (s *Service) NotifyContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	html, err := render(templateContactMessage, contactMessageView{
		ID:          msg.ID.String(),
		Name:        msg.Name,
		Email:       msg.Email,
		Phone:       ptr.Deref(msg.Phone),
		Subject:     msg.Subject,
		Message:     msg.Message,
		SubmittedOn: s.formatSubmitted(msg.CreatedAt),
	})
	if err != nil {
		s.logger.Error("NotifyContactMessage: message id=%s: %v", msg.ID, err)
		return err
	}

	return s.send(ctx, KindContactMessage, &resend.Email{
		From:    s.from.Contact,
		To:      []string{s.adminEmail},
		Subject: "New Contact Message: " + msg.Subject,
		HTML:    html,
		ReplyTo: msg.Email,
	})
}

// NotifyRegistration отправляет письмо о заявке на регистрацию школы
func (s *Service) NotifyRegistration(ctx context.Context, reg *domain.SchoolRegistration) error {
	html, err := render(templateRegistration, registrationView{
		ID:            reg.ID.String(),
		SchoolName:    reg.SchoolName,
		ContactPerson: reg.ContactPerson,
		Email:         reg.Email,
		Phone:         reg.Phone,
		Address:       reg.Address,
		StudentCount:  reg.StudentCount,
		Plan:          reg.Plan,
		Message:       ptr.Deref(reg.Message),
		SubmittedOn:   s.formatSubmitted(reg.CreatedAt),
	})
	if err != nil {
		s.logger.Error("NotifyRegistration: registration id=%s: %v", reg.ID, err)
		return err
	}

	return s.send(ctx, KindRegistration, &resend.Email{
		From:    s.from.Registration,
		To:      []string{s.adminEmail},
		Subject: "New School Registration: " + reg.SchoolName,
		HTML:    html,
		ReplyTo: reg.Email,
	})
}

func (s *Service) send(ctx context.Context, kind string, email *resend.Email) error {
	id, err := s.sender.Send(ctx, email)
	if err != nil {
		s.metrics.RecordNotification(kind, metrics.ResultFailure)
		s.logger.Error("Notify %s: failed to send %q: %v", kind, email.Subject, err)
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	s.metrics.RecordNotification(kind, metrics.ResultSuccess)
	s.logger.Info("Notify %s: sent %q, email id=%s", kind, email.Subject, id)
	return nil
}

func (s *Service) formatSubmitted(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.In(s.location).Format(submittedOnFormat)
}
