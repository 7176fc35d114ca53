package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	createBooking "github.com/m04kA/SMC-ChefReservationService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ChefReservationService/pkg/logger"
	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

type fakeUseCase struct {
	got     *createBooking.Request
	booking *domain.Booking
	err     error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*domain.Booking, error) {
	f.got = req
	return f.booking, f.err
}

const validBody = `{
	"chefId": 7,
	"serviceType": "home-dining",
	"eventDate": "2025-07-01",
	"startTime": "19:00",
	"durationMinutes": 180,
	"guests": 6,
	"location": {"address": "Lenina 1", "city": "Moscow", "zipCode": "101000"}
}`

func doRequest(t *testing.T, uc CreateBookingUseCase, body string, withActor bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	if withActor {
		req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 42, Role: domain.RoleClient}))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{booking: &domain.Booking{
		ID:          100,
		ClientID:    42,
		ChefID:      7,
		ServiceType: domain.ServiceTypeHomeDining,
		Status:      domain.BookingStatusPending,
		CreatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(42), uc.got.Actor.UserID)
	assert.Equal(t, int64(7), uc.got.ChefID)
	assert.Equal(t, types.TimeString("19:00"), uc.got.StartTime)
	assert.Equal(t, 6, uc.got.Guests)
	assert.Equal(t, "Moscow", uc.got.Location.City)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.EqualValues(t, 100, body["id"])
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "broken json", body: `{"chefId":`},
		{name: "bad date", body: `{"chefId":7,"eventDate":"01.07.2025","startTime":"19:00"}`},
		{name: "bad time", body: `{"chefId":7,"eventDate":"2025-07-01","startTime":"7pm"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := doRequest(t, uc, tt.body, true)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_Unauthorized(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, validBody, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "conflict",
			err:        domain.Reject(domain.CodeConflictDetected, "chef is booked"),
			wantStatus: http.StatusConflict,
			wantCode:   string(domain.CodeConflictDetected),
		},
		{
			name:       "capacity",
			err:        fmt.Errorf("create_booking: %w", domain.Reject(domain.CodeOutOfCapacity, "too many guests")),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   string(domain.CodeOutOfCapacity),
		},
		{
			name:       "lead time",
			err:        domain.Reject(domain.CodeLeadTimeViolation, ""),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   string(domain.CodeLeadTimeViolation),
		},
		{
			name:       "busy",
			err:        createBooking.ErrBusy,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   handlers.CodeBusy,
		},
		{
			name:       "chef not found",
			err:        createBooking.ErrChefNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   handlers.CodeNotFound,
		},
		{
			name:       "forbidden",
			err:        createBooking.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantCode:   handlers.CodeForbidden,
		},
		{
			name:       "service not offered",
			err:        createBooking.ErrServiceNotOffered,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   handlers.CodeValidation,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   handlers.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody, true)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

