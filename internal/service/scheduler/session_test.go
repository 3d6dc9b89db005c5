package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	bookingRepo "github.com/eduschools/EduSchools-BookingService/internal/infra/storage/booking"
	"github.com/eduschools/EduSchools-BookingService/internal/service/availability"
	"github.com/eduschools/EduSchools-BookingService/pkg/logger"
	"github.com/eduschools/EduSchools-BookingService/pkg/metrics"
	"github.com/eduschools/EduSchools-BookingService/pkg/types"
)

// mockStore хранит занятые слоты в памяти, вызовы CreateBooking проверяются через mock
type mockStore struct {
	mock.Mock

	mu       sync.Mutex
	booked   []domain.Slot
	listErr  error
	markErr  error
	notified map[uuid.UUID]time.Time
}

func (m *mockStore) ListBookedSlots(_ context.Context) ([]domain.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]domain.Slot(nil), m.booked...), nil
}

func (m *mockStore) CreateBooking(ctx context.Context, b *domain.DemoBooking) (*domain.DemoBooking, error) {
	args := m.Called(ctx, b)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	m.book(b.Slot)
	b.CreatedAt = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	return b, nil
}

// MarkNotified запоминает отметку об отправке письма
func (m *mockStore) MarkNotified(_ context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.markErr != nil {
		return m.markErr
	}
	if m.notified == nil {
		m.notified = make(map[uuid.UUID]time.Time)
	}
	m.notified[id] = at
	return nil
}

func (m *mockStore) notifiedAt(id uuid.UUID) (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	at, ok := m.notified[id]
	return at, ok
}

// book занимает слот "другим пользователем"
func (m *mockStore) book(slot domain.Slot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.booked = append(m.booked, slot)
}

func (m *mockStore) setListErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr = err
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyDemoBooking(ctx context.Context, b *domain.DemoBooking) error {
	return m.Called(ctx, b).Error(0)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type testEnv struct {
	store    *mockStore
	notifier *mockNotifier
	index    *availability.Index
	sched    *Scheduler
}

// понедельник 2025-06-02
var testToday = time.Date(2025, 6, 2, 10, 15, 0, 0, time.UTC)

func newTestEnv(t *testing.T, booked ...domain.Slot) *testEnv {
	t.Helper()

	store := &mockStore{booked: booked}
	notifier := new(mockNotifier)
	m := metrics.New("test")
	log := logger.NewNop()
	index := availability.NewIndex(store, m, log)

	sched := NewScheduler(
		Config{Location: time.UTC, HorizonDays: domain.DefaultHorizonDays},
		index, store, notifier, fixedClock{now: testToday}, m, log,
	)

	return &testEnv{store: store, notifier: notifier, index: index, sched: sched}
}

func date(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func validDetails() Details {
	return Details{
		Name:                   "Thandi Nkosi",
		Email:                  "thandi@school.co.za",
		Position:               "Principal",
		SchoolName:             "Sunrise Primary",
		SchoolAddress:          "12 Oak Street, Pretoria",
		SchoolType:             "primary",
		StudentCount:           "200-500",
		PreferredContactMethod: "email",
		Timeframe:              "immediately",
		DemoMode:               "online",
		SpecificNeeds:          []string{"Attendance"},
	}
}

// chooseSlot проводит сессию через пикер до Idle с выбранным слотом
func chooseSlot(t *testing.T, s *Session, day time.Time, tm string) {
	t.Helper()
	_, err := s.PickDate(day)
	require.NoError(t, err)
	require.NoError(t, s.PickTime(typesTime(tm)))
	require.NoError(t, s.ConfirmSlot())
}

func TestSession_WeekendDateNotSelectable(t *testing.T) {
	env := newTestEnv(t)
	s := env.sched.NewSession()
	require.NoError(t, s.Open(context.Background()))

	slots, err := s.PickDate(date(time.June, 7))

	assert.ErrorIs(t, err, ErrDateNotSelectable)
	var dateErr *DateError
	require.True(t, errors.As(err, &dateErr))
	assert.Equal(t, domain.ReasonWeekend, dateErr.Reason)
	assert.Nil(t, slots)
	assert.Equal(t, StateIdle, s.State())
}

func TestSession_PastAndBeyondHorizon(t *testing.T) {
	env := newTestEnv(t)
	s := env.sched.NewSession()
	require.NoError(t, s.Open(context.Background()))

	_, err := s.PickDate(date(time.May, 30))
	assert.ErrorIs(t, err, ErrDateNotSelectable)

	_, err = s.PickDate(date(time.July, 3))
	assert.ErrorIs(t, err, ErrDateNotSelectable)

	// today+30 включительно
	_, err = s.PickDate(date(time.July, 2))
	assert.NoError(t, err)
}

func TestSession_BookedSlotDisabled(t *testing.T) {
	env := newTestEnv(t, domain.NewSlot(date(time.June, 10), "09:00"))
	s := env.sched.NewSession()
	require.NoError(t, s.Open(context.Background()))

	slots, err := s.PickDate(date(time.June, 10))
	require.NoError(t, err)
	require.Len(t, slots, 8)

	free := 0
	for _, st := range slots {
		if st.Time == "09:00" {
			assert.True(t, st.Booked)
			continue
		}
		assert.False(t, st.Booked, st.Time)
		free++
	}
	assert.Equal(t, 7, free)

	err = s.PickTime("09:00")
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, StateDateChosen, s.State())

	require.NoError(t, s.PickTime("10:00"))
	assert.Equal(t, StateSlotChosen, s.State())
}

func TestSession_InvalidTime(t *testing.T) {
	env := newTestEnv(t)
	s := env.sched.NewSession()
	require.NoError(t, s.Open(context.Background()))
	_, err := s.PickDate(date(time.June, 10))
	require.NoError(t, err)

	assert.ErrorIs(t, s.PickTime("17:00"), ErrInvalidTime)
	assert.ErrorIs(t, s.PickTime("09:30"), ErrInvalidTime)
	assert.Equal(t, StateDateChosen, s.State())
}

func TestSession_SubmitSuccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.sched.NewSession()

	require.NoError(t, s.Open(ctx))
	require.NoError(t, s.SetDetails(validDetails()))
	chooseSlot(t, s, date(time.June, 11), "10:00")

	env.store.On("CreateBooking", mock.Anything, mock.MatchedBy(func(b *domain.DemoBooking) bool {
		return b.Status == domain.StatusPending &&
			b.Slot.Key() == "2025-06-11-10:00" &&
			b.Name == "Thandi Nkosi" &&
			b.PhoneNumber == nil
	})).Return(nil).Once()
	env.notifier.On("NotifyDemoBooking", mock.Anything, mock.AnythingOfType("*domain.DemoBooking")).
		Return(nil).Once()

	require.NoError(t, s.Submit(ctx))
	assert.Equal(t, StateConfirming, s.State())
	assert.Equal(t, "2025-06-11-10:00", s.Draft().Slot.Key())

	booking, err := s.Confirm(ctx)

	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, StateSubmitted, s.State())
	assert.Equal(t, booking, s.Booking())
	env.store.AssertNumberOfCalls(t, "CreateBooking", 1)
	env.notifier.AssertNumberOfCalls(t, "NotifyDemoBooking", 1)

	// индекс перезагружен после записи
	assert.True(t, env.index.IsBooked(booking.Slot))

	at, ok := env.store.notifiedAt(booking.ID)
	require.True(t, ok)
	assert.Equal(t, testToday, at)
	require.NotNil(t, booking.NotifiedAt)
	assert.Equal(t, testToday, *booking.NotifiedAt)

	_, err = s.Confirm(ctx)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestSession_NotificationFailureKeepsBooking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.sched.NewSession()

	require.NoError(t, s.Open(ctx))
	require.NoError(t, s.SetDetails(validDetails()))
	chooseSlot(t, s, date(time.June, 11), "10:00")

	env.store.On("CreateBooking", mock.Anything, mock.Anything).Return(nil).Once()
	env.notifier.On("NotifyDemoBooking", mock.Anything, mock.Anything).
		Return(errors.New("resend: 503")).Once()
	env.notifier.On("NotifyDemoBooking", mock.Anything, mock.Anything).
		Return(nil).Once()

	require.NoError(t, s.Submit(ctx))
	booking, err := s.Confirm(ctx)

	assert.ErrorIs(t, err, ErrDelivery)
	require.NotNil(t, booking)
	assert.Equal(t, StateFailed, s.State())

	// бронирование видно после перезагрузки
	require.NoError(t, env.index.Reload(ctx))
	assert.True(t, env.index.IsBooked(booking.Slot))

	assert.ErrorIs(t, s.Reopen(), ErrIllegalTransition)
	_, notified := env.store.notifiedAt(booking.ID)
	assert.False(t, notified)
	assert.False(t, booking.IsNotified())

	retried, err := s.Confirm(ctx)

	require.NoError(t, err)
	assert.Equal(t, booking.ID, retried.ID)
	_, notified = env.store.notifiedAt(booking.ID)
	assert.True(t, notified)
	assert.Equal(t, StateSubmitted, s.State())
	env.store.AssertNumberOfCalls(t, "CreateBooking", 1)
	env.notifier.AssertNumberOfCalls(t, "NotifyDemoBooking", 2)
}

func TestSession_SlotBookedBeforeSubmit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.sched.NewSession()

	require.NoError(t, s.Open(ctx))
	require.NoError(t, s.SetDetails(validDetails()))
	chooseSlot(t, s, date(time.June, 11), "10:00")

	// другой пользователь успел занять слот
	env.store.book(domain.NewSlot(date(time.June, 11), "10:00"))

	err := s.Submit(ctx)

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Draft().Slot)
	env.store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	env.notifier.AssertNotCalled(t, "NotifyDemoBooking", mock.Anything, mock.Anything)
}

func TestSession_ConstraintViolationOnCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.sched.NewSession()

	require.NoError(t, s.Open(ctx))
	require.NoError(t, s.SetDetails(validDetails()))
	chooseSlot(t, s, date(time.June, 11), "10:00")
	require.NoError(t, s.Submit(ctx))

	env.store.On("CreateBooking", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: 2025-06-11-10:00", bookingRepo.ErrSlotTaken)).Once()

	booking, err := s.Confirm(ctx)

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, booking)
	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Draft().Slot)
	env.store.AssertNumberOfCalls(t, "CreateBooking", 1)
	env.notifier.AssertNotCalled(t, "NotifyDemoBooking", mock.Anything, mock.Anything)
}

func TestSession_StoreWriteFailureRetainsDraft(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.sched.NewSession()

	require.NoError(t, s.Open(ctx))
	require.NoError(t, s.SetDetails(validDetails()))
	chooseSlot(t, s, date(time.June, 11), "10:00")
	require.NoError(t, s.Submit(ctx))

	env.store.On("CreateBooking", mock.Anything, mock.Anything).
		Return(errors.New("connection reset")).Once()
	env.store.On("CreateBooking", mock.Anything, mock.Anything).Return(nil).Once()
	env.notifier.On("NotifyDemoBooking", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := s.Confirm(ctx)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, StateFailed, s.State())
	assert.Equal(t, "Thandi Nkosi", s.Draft().Name)
	assert.Equal(t, "2025-06-11-10:00", s.Draft().Slot.Key())

	booking, err := s.Confirm(ctx)

	require.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Equal(t, StateSubmitted, s.State())
	env.store.AssertNumberOfCalls(t, "CreateBooking", 2)
}

func TestSession_ValidationError(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.sched.NewSession()

	details := validDetails()
	details.Email = "not-an-email"
	details.SchoolName = ""
	require.NoError(t, s.SetDetails(details))

	err := s.Submit(ctx)

	assert.ErrorIs(t, err, ErrValidation)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	var names []string
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	assert.ElementsMatch(t, []string{"email", "schoolName", FieldPreferredDate, FieldPreferredTime}, names)
	assert.Equal(t, StateIdle, s.State())
	env.store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	assert.False(t, env.index.Loaded())
}

func TestSession_CancelPickerKeepsPriorSlot(t *testing.T) {
	env := newTestEnv(t)
	s := env.sched.NewSession()
	require.NoError(t, s.Open(context.Background()))

	chooseSlot(t, s, date(time.June, 11), "10:00")

	_, err := s.PickDate(date(time.June, 12))
	require.NoError(t, err)
	require.NoError(t, s.PickTime("14:00"))
	require.NoError(t, s.CancelPicker())

	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, "2025-06-11-10:00", s.Draft().Slot.Key())

	// подтвердить без выбора времени нельзя
	_, err = s.PickDate(date(time.June, 12))
	require.NoError(t, err)
	assert.ErrorIs(t, s.ConfirmSlot(), ErrIllegalTransition)
}

func TestSession_DeclineReturnsToIdle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.sched.NewSession()

	require.NoError(t, s.Open(ctx))
	require.NoError(t, s.SetDetails(validDetails()))
	chooseSlot(t, s, date(time.June, 11), "10:00")
	require.NoError(t, s.Submit(ctx))

	require.NoError(t, s.Decline())
	assert.Equal(t, StateIdle, s.State())
	assert.NotNil(t, s.Draft().Slot)
}

func TestSession_StoreUnavailable(t *testing.T) {
	env := newTestEnv(t)
	env.store.setListErr(errors.New("connection refused"))
	s := env.sched.NewSession()

	err := s.Open(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = s.PickDate(date(time.June, 10))
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, StateIdle, s.State())
}

func TestSession_StaleIndexOnSubmit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.sched.NewSession()

	require.NoError(t, s.Open(ctx))
	require.NoError(t, s.SetDetails(validDetails()))
	chooseSlot(t, s, date(time.June, 11), "10:00")

	env.store.setListErr(errors.New("timeout"))

	require.NoError(t, s.Submit(ctx))
	assert.Equal(t, StateConfirming, s.State())
}

func TestSession_SubmitStoreNeverLoaded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.sched.NewSession()

	require.NoError(t, s.Open(ctx))
	require.NoError(t, s.SetDetails(validDetails()))
	chooseSlot(t, s, date(time.June, 11), "10:00")

	// новая сессия на новом индексе, который ни разу не загрузился
	broken := newTestEnv(t)
	broken.store.setListErr(errors.New("timeout"))
	s.sched = broken.sched

	err := s.Submit(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, StateIdle, s.State())
	assert.NotNil(t, s.Draft().Slot)
}

func TestSession_ConcurrentConfirmRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	s := env.sched.NewSession()

	require.NoError(t, s.Open(ctx))
	require.NoError(t, s.SetDetails(validDetails()))
	chooseSlot(t, s, date(time.June, 11), "10:00")
	require.NoError(t, s.Submit(ctx))

	release := make(chan struct{})
	env.store.On("CreateBooking", mock.Anything, mock.Anything).Return(nil).Once()
	env.notifier.On("NotifyDemoBooking", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).Return(nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := s.Confirm(ctx)
		done <- err
	}()

	require.Eventually(t, func() bool {
		return s.Booking() == nil && s.State() == StateSubmitting
	}, time.Second, time.Millisecond)

	_, err := s.Confirm(ctx)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateSubmitted, s.State())
	env.store.AssertNumberOfCalls(t, "CreateBooking", 1)
}

func TestScheduler_ResumeFailed(t *testing.T) {
	env := newTestEnv(t)
	booking := validDetailsBooking()

	env.notifier.On("NotifyDemoBooking", mock.Anything, booking).Return(nil).Once()

	s := env.sched.ResumeFailed(booking)
	assert.Equal(t, StateFailed, s.State())

	got, err := s.Confirm(context.Background())

	require.NoError(t, err)
	assert.Equal(t, booking, got)
	assert.Equal(t, StateSubmitted, s.State())
	env.store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestSession_MarkNotifiedFailureKeepsSuccess(t *testing.T) {
	env := newTestEnv(t)
	env.store.markErr = errors.New("db down")
	booking := validDetailsBooking()

	env.notifier.On("NotifyDemoBooking", mock.Anything, booking).Return(nil).Once()

	s := env.sched.ResumeFailed(booking)
	got, err := s.Confirm(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, s.State())
	assert.Nil(t, got.NotifiedAt)
}

func validDetailsBooking() *domain.DemoBooking {
	d := Draft{Details: validDetails()}
	slot := domain.NewSlot(date(time.June, 11), "10:00")
	d.Slot = &slot
	return d.ToBooking()
}

func typesTime(s string) types.TimeString {
	return types.TimeString(s)
}
