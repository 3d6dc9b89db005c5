package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	"github.com/eduschools/EduSchools-BookingService/internal/integrations/resend"
	"github.com/eduschools/EduSchools-BookingService/pkg/logger"
	"github.com/eduschools/EduSchools-BookingService/pkg/metrics"
	"github.com/eduschools/EduSchools-BookingService/pkg/ptr"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, email *resend.Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

var testSenders = Senders{
	Demo:         "EduSchools Demo <onboarding@resend.dev>",
	Contact:      "EduSchools Contact <onboarding@resend.dev>",
	Registration: "EduSchools Registration <onboarding@resend.dev>",
}

func newTestService(t *testing.T, sender EmailSender) (*Service, *metrics.Metrics) {
	t.Helper()
	loc, err := time.LoadLocation("Africa/Johannesburg")
	require.NoError(t, err)
	m := metrics.New("test")
	return NewService(sender, "admin@eduschools.co.za", testSenders, loc, m, logger.NewNop()), m
}

func testBooking(t *testing.T) *domain.DemoBooking {
	t.Helper()
	loc, err := time.LoadLocation("Africa/Johannesburg")
	require.NoError(t, err)
	return &domain.DemoBooking{
		ID:                     uuid.MustParse("6f1c1f7e-1111-4c1e-9a3a-0a0a0a0a0a0a"),
		Name:                   "Thandi Nkosi",
		Email:                  "thandi@school.co.za",
		Position:               "Principal",
		SchoolName:             "Sunrise Primary",
		SchoolAddress:          "12 Oak Street, Pretoria",
		SchoolType:             "primary",
		StudentCount:           "200-500",
		SpecificNeeds:          []string{"Attendance", "Fees & Billing"},
		PreferredContactMethod: "email",
		Timeframe:              "immediately",
		DemoMode:               "online",
		AdditionalComments:     ptr.Ptr("<b>bold</b>"),
		Slot:                   domain.NewSlot(time.Date(2025, 6, 10, 0, 0, 0, 0, loc), "10:00"),
		Status:                 domain.StatusPending,
		CreatedAt:              time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC),
	}
}

func TestService_NotifyDemoBooking(t *testing.T) {
	sender := new(mockSender)
	svc, m := newTestService(t, sender)
	booking := testBooking(t)

	var sent *resend.Email
	sender.On("Send", mock.Anything, mock.AnythingOfType("*resend.Email")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*resend.Email) }).
		Return("email-1", nil).Once()

	err := svc.NotifyDemoBooking(context.Background(), booking)

	require.NoError(t, err)
	sender.AssertExpectations(t)
	require.NotNil(t, sent)
	assert.Equal(t, testSenders.Demo, sent.From)
	assert.Equal(t, []string{"admin@eduschools.co.za"}, sent.To)
	assert.Equal(t, "New Demo Request from Thandi Nkosi - Sunrise Primary", sent.Subject)
	assert.Equal(t, "thandi@school.co.za", sent.ReplyTo)
	assert.Contains(t, sent.HTML, "Tuesday, June 10, 2025")
	assert.Contains(t, sent.HTML, "10:00")
	assert.Contains(t, sent.HTML, "Fees &amp; Billing")
	assert.Contains(t, sent.HTML, "&lt;b&gt;bold&lt;/b&gt;")
	assert.Contains(t, sent.HTML, "2 June 2025, 10:30 SAST")
	assert.NotContains(t, sent.HTML, "Phone:")
	assert.NotContains(t, sent.HTML, "Current System:")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues(KindDemoBooking, metrics.ResultSuccess)))
}

func TestService_NotifyDemoBooking_SendFails(t *testing.T) {
	sender := new(mockSender)
	svc, m := newTestService(t, sender)

	sender.On("Send", mock.Anything, mock.Anything).
		Return("", resend.ErrInternal).Once()

	err := svc.NotifyDemoBooking(context.Background(), testBooking(t))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDelivery))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues(KindDemoBooking, metrics.ResultFailure)))
}

func TestService_NotifyContactMessage(t *testing.T) {
	sender := new(mockSender)
	svc, _ := newTestService(t, sender)

	msg := &domain.ContactMessage{
		ID:      uuid.New(),
		Name:    "Sipho",
		Email:   "sipho@example.com",
		Phone:   ptr.Ptr("+27 82 000 0000"),
		Subject: "Pricing",
		Message: "How much for 300 learners?",
	}

	sender.On("Send", mock.Anything, mock.MatchedBy(func(e *resend.Email) bool {
		return e.Subject == "New Contact Message: Pricing" &&
			e.From == testSenders.Contact &&
			e.ReplyTo == "sipho@example.com"
	})).Return("email-2", nil).Once()

	require.NoError(t, svc.NotifyContactMessage(context.Background(), msg))
	sender.AssertExpectations(t)
}

func TestService_NotifyRegistration(t *testing.T) {
	sender := new(mockSender)
	svc, _ := newTestService(t, sender)

	reg := &domain.SchoolRegistration{
		ID:            uuid.New(),
		SchoolName:    "Hilltop High",
		ContactPerson: "Naledi",
		Email:         "naledi@hilltop.co.za",
		Phone:         "012 345 6789",
		Address:       "1 Hill Road",
		StudentCount:  "500-1000",
		Plan:          "premium",
	}

	sender.On("Send", mock.Anything, mock.MatchedBy(func(e *resend.Email) bool {
		return e.Subject == "New School Registration: Hilltop High" &&
			e.From == testSenders.Registration
	})).Return("email-3", nil).Once()

	require.NoError(t, svc.NotifyRegistration(context.Background(), reg))
	sender.AssertExpectations(t)
}
