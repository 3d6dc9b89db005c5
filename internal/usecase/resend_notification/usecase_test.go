package resend_notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	bookingRepo "github.com/eduschools/EduSchools-BookingService/internal/infra/storage/booking"
	"github.com/eduschools/EduSchools-BookingService/internal/service/availability"
	"github.com/eduschools/EduSchools-BookingService/internal/service/scheduler"
	"github.com/eduschools/EduSchools-BookingService/pkg/logger"
	"github.com/eduschools/EduSchools-BookingService/pkg/metrics"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.DemoBooking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.DemoBooking)
	return b, args.Error(1)
}

func (m *mockStore) ListBookedSlots(ctx context.Context) ([]domain.Slot, error) {
	args := m.Called(ctx)
	slots, _ := args.Get(0).([]domain.Slot)
	return slots, args.Error(1)
}

func (m *mockStore) CreateBooking(ctx context.Context, b *domain.DemoBooking) (*domain.DemoBooking, error) {
	args := m.Called(ctx, b)
	created, _ := args.Get(0).(*domain.DemoBooking)
	return created, args.Error(1)
}

func (m *mockStore) MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyDemoBooking(ctx context.Context, b *domain.DemoBooking) error {
	return m.Called(ctx, b).Error(0)
}

func newTestUseCase(store *mockStore, notifier *mockNotifier) *UseCase {
	m := metrics.New("test")
	log := logger.NewNop()
	sched := scheduler.NewScheduler(
		scheduler.Config{Location: time.UTC},
		availability.NewIndex(store, m, log), store, notifier, scheduler.RealTimeProvider{}, m, log,
	)
	return NewUseCase(store, sched, log)
}

func testBooking(status domain.BookingStatus) *domain.DemoBooking {
	return &domain.DemoBooking{
		ID:         uuid.New(),
		Name:       "Thandi",
		SchoolName: "Sunrise Primary",
		Slot:       domain.NewSlot(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), "10:00"),
		Status:     status,
	}
}

func TestUseCase_Execute(t *testing.T) {
	store := new(mockStore)
	notifier := new(mockNotifier)
	booking := testBooking(domain.StatusPending)

	store.On("GetByID", mock.Anything, booking.ID).Return(booking, nil).Once()
	notifier.On("NotifyDemoBooking", mock.Anything, booking).Return(nil).Once()
	store.On("MarkNotified", mock.Anything, booking.ID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	resp, err := newTestUseCase(store, notifier).Execute(context.Background(), &Request{BookingID: booking.ID})

	require.NoError(t, err)
	assert.True(t, resp.Notified)
	assert.Equal(t, booking.ID, resp.BookingID)
	assert.True(t, booking.IsNotified())
	store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUseCase_Execute_AlreadyNotified(t *testing.T) {
	store := new(mockStore)
	notifier := new(mockNotifier)
	booking := testBooking(domain.StatusPending)
	notifiedAt := time.Date(2025, 6, 2, 9, 1, 0, 0, time.UTC)
	booking.NotifiedAt = &notifiedAt

	store.On("GetByID", mock.Anything, booking.ID).Return(booking, nil).Once()

	resp, err := newTestUseCase(store, notifier).Execute(context.Background(), &Request{BookingID: booking.ID})

	assert.ErrorIs(t, err, ErrAlreadyNotified)
	assert.Nil(t, resp)
	notifier.AssertNotCalled(t, "NotifyDemoBooking", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "MarkNotified", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		booking   *domain.DemoBooking
		repoErr   error
		notifyErr error
		wantErr   error
	}{
		{name: "not found", repoErr: bookingRepo.ErrBookingNotFound, wantErr: ErrBookingNotFound},
		{name: "repository failure", repoErr: errors.New("db down"), wantErr: ErrInternal},
		{name: "cancelled booking", booking: testBooking(domain.StatusCancelled), wantErr: ErrBookingInactive},
		{name: "delivery fails again", booking: testBooking(domain.StatusPending), notifyErr: errors.New("503"), wantErr: ErrDelivery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockStore)
			notifier := new(mockNotifier)
			store.On("GetByID", mock.Anything, mock.Anything).Return(tt.booking, tt.repoErr).Once()
			notifier.On("NotifyDemoBooking", mock.Anything, mock.Anything).Return(tt.notifyErr).Maybe()

			resp, err := newTestUseCase(store, notifier).Execute(context.Background(), &Request{BookingID: uuid.New()})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
			store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
		})
	}
}
