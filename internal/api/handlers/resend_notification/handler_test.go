package resend_notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	resendNotification "github.com/eduschools/EduSchools-BookingService/internal/usecase/resend_notification"
	"github.com/eduschools/EduSchools-BookingService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *resendNotification.Request) (*resendNotification.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*resendNotification.Response)
	return resp, args.Error(1)
}

func serve(uc ResendNotificationUseCase, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/demo-bookings/{bookingId}/notification", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
	return w
}

func TestHandler_Handle(t *testing.T) {
	id := uuid.New()
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &resendNotification.Request{BookingID: id}).
		Return(&resendNotification.Response{BookingID: id, Notified: true}, nil).Once()

	w := serve(uc, "/api/v1/demo-bookings/"+id.String()+"/notification")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookingId":"`+id.String()+`","notified":true}`, w.Body.String())
	uc.AssertExpectations(t)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		ucErr      error
		wantStatus int
	}{
		{"invalid id", "not-a-uuid", nil, http.StatusBadRequest},
		{"not found", uuid.NewString(), resendNotification.ErrBookingNotFound, http.StatusNotFound},
		{"inactive", uuid.NewString(), resendNotification.ErrBookingInactive, http.StatusConflict},
		{"already notified", uuid.NewString(), resendNotification.ErrAlreadyNotified, http.StatusConflict},
		{"delivery failed", uuid.NewString(), resendNotification.ErrDelivery, http.StatusBadGateway},
		{"internal", uuid.NewString(), resendNotification.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr).Maybe()

			w := serve(uc, "/api/v1/demo-bookings/"+tt.id+"/notification")

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
