package inquiries

import (
	"context"
	"fmt"

	"github.com/eduschools/EduSchools-BookingService/internal/service/inquiries/models"
	"github.com/eduschools/EduSchools-BookingService/pkg/metrics"
	"github.com/eduschools/EduSchools-BookingService/pkg/validation"
)

// Типы обращений (лейбл метрики)
const (
	KindContact      = "contact"
	KindRegistration = "registration"
)

// Service сохраняет обращения с сайта и уведомляет администратора
// Сохранение первично: ошибка отправки письма не откатывает запись
type Service struct {
	repo     InquiryRepository
	notifier Notifier
	metrics  MetricsRecorder
	logger   Logger
}

// NewService создает новый экземпляр сервиса обращений
func NewService(repo InquiryRepository, notifier Notifier, metrics MetricsRecorder, logger Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// SubmitContact сохраняет сообщение обратной связи и отправляет письмо
func (s *Service) SubmitContact(ctx context.Context, req *models.ContactRequest) (*models.SubmitResponse, error) {
	s.logger.Info("SubmitContact: subject=%q", req.Subject)

	if err := validation.Validate(req); err != nil {
		s.metrics.RecordInquiry(KindContact, metrics.OutcomeInvalid)
		s.logger.Warn("SubmitContact: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	msg, err := s.repo.CreateContactMessage(ctx, req.ToDomain())
	if err != nil {
		s.metrics.RecordInquiry(KindContact, metrics.OutcomeFailed)
		s.logger.Error("SubmitContact: repository error: %v", err)
		return nil, fmt.Errorf("%w: SubmitContact - repository error: %v", ErrInternal, err)
	}

	resp := &models.SubmitResponse{ID: msg.ID.String(), CreatedAt: msg.CreatedAt}

	if err := s.notifier.NotifyContactMessage(ctx, msg); err != nil {
		s.metrics.RecordInquiry(KindContact, metrics.OutcomePartial)
		s.logger.Warn("SubmitContact: message id=%s saved, notification delayed: %v", msg.ID, err)
		resp.NotificationDelayed = true
		return resp, nil
	}

	s.metrics.RecordInquiry(KindContact, metrics.OutcomeCreated)
	s.logger.Info("SubmitContact: message id=%s saved", msg.ID)
	return resp, nil
}

// SubmitRegistration сохраняет заявку на регистрацию школы и отправляет письмо
func (s *Service) SubmitRegistration(ctx context.Context, req *models.RegistrationRequest) (*models.SubmitResponse, error) {
	s.logger.Info("SubmitRegistration: school=%q, plan=%q", req.SchoolName, req.Plan)

	if err := validation.Validate(req); err != nil {
		s.metrics.RecordInquiry(KindRegistration, metrics.OutcomeInvalid)
		s.logger.Warn("SubmitRegistration: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	reg, err := s.repo.CreateRegistration(ctx, req.ToDomain())
	if err != nil {
		s.metrics.RecordInquiry(KindRegistration, metrics.OutcomeFailed)
		s.logger.Error("SubmitRegistration: repository error: %v", err)
		return nil, fmt.Errorf("%w: SubmitRegistration - repository error: %v", ErrInternal, err)
	}

	resp := &models.SubmitResponse{ID: reg.ID.String(), CreatedAt: reg.CreatedAt}

	if err := s.notifier.NotifyRegistration(ctx, reg); err != nil {
		s.metrics.RecordInquiry(KindRegistration, metrics.OutcomePartial)
		s.logger.Warn("SubmitRegistration: registration id=%s saved, notification delayed: %v", reg.ID, err)
		resp.NotificationDelayed = true
		return resp, nil
	}

	s.metrics.RecordInquiry(KindRegistration, metrics.OutcomeCreated)
	s.logger.Info("SubmitRegistration: registration id=%s saved", reg.ID)
	return resp, nil
}
