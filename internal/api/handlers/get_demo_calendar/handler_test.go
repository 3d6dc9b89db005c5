package get_demo_calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	getDemoCalendar "github.com/eduschools/EduSchools-BookingService/internal/usecase/get_demo_calendar"
	"github.com/eduschools/EduSchools-BookingService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getDemoCalendar.Request) (*getDemoCalendar.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getDemoCalendar.Response)
	return resp, args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	uc := new(mockUseCase)
	june := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getDemoCalendar.Request) bool {
		return req.Month.Equal(june)
	})).Return(&getDemoCalendar.Response{
		Month:        june,
		Today:        time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		LastBookable: time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
		Weeks: [][]getDemoCalendar.Day{{
			{Date: june, InMonth: true, Sunday: true, Reason: domain.ReasonPast},
			{Date: june.AddDate(0, 0, 1), InMonth: true, Today: true, Selectable: true},
		}},
	}, nil).Once()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/demo-calendar?month=2025-06", nil)

	NewHandler(uc, logger.NewNop()).Handle(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var body CalendarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2025-06", body.Month)
	assert.Equal(t, "2025-07-02", body.LastBookableDate)
	require.Len(t, body.Weeks, 1)
	assert.Equal(t, "past", body.Weeks[0][0].DisabledReason)
	assert.True(t, body.Weeks[0][1].Selectable)
	assert.Empty(t, body.Weeks[0][1].DisabledReason)
}

func TestHandler_Handle_InvalidMonth(t *testing.T) {
	uc := new(mockUseCase)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/demo-calendar?month=June", nil)

	NewHandler(uc, logger.NewNop()).Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
