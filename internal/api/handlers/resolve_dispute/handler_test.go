package resolve_dispute

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	resolveDispute "github.com/m04kA/SMC-ChefReservationService/internal/usecase/resolve_dispute"
	"github.com/m04kA/SMC-ChefReservationService/pkg/logger"
)

type fakeUseCase struct {
	got *resolveDispute.Request
	err error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *resolveDispute.Request) (*domain.Booking, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Booking{ID: req.BookingID, Status: domain.BookingStatusCompleted}, nil
}

func serve(uc ResolveDisputeUseCase, bookingID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/disputes/"+bookingID+"/resolve", bytes.NewBufferString(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 1, Role: domain.RoleAdmin}))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Resolved(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "15", `{"resolution":"partial refund","refundAmount":120.5}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(15), uc.got.BookingID)
	assert.Equal(t, "partial refund", uc.got.Resolution)
	assert.Equal(t, 120.5, uc.got.RefundAmount)
	assert.Equal(t, domain.RoleAdmin, uc.got.Actor.Role)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		bookingID  string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "bad id", bookingID: "x", body: `{}`, wantStatus: http.StatusBadRequest, wantCode: handlers.CodeValidation},
		{name: "bad body", bookingID: "1", body: `{`, wantStatus: http.StatusBadRequest, wantCode: handlers.CodeValidation},
		{name: "forbidden", bookingID: "1", body: `{}`, err: resolveDispute.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: handlers.CodeForbidden},
		{name: "not found", bookingID: "1", body: `{}`, err: resolveDispute.ErrBookingNotFound, wantStatus: http.StatusNotFound, wantCode: handlers.CodeNotFound},
		{name: "not disputed", bookingID: "1", body: `{}`, err: resolveDispute.ErrNotDisputed, wantStatus: http.StatusConflict, wantCode: "NOT_DISPUTED"},
		{name: "refund too large", bookingID: "1", body: `{}`, err: resolveDispute.ErrRefundExceedsCaptured, wantStatus: http.StatusUnprocessableEntity, wantCode: "REFUND_EXCEEDS_CAPTURED"},
		{name: "payment provider", bookingID: "1", body: `{}`, err: resolveDispute.ErrPaymentProvider, wantStatus: http.StatusBadGateway, wantCode: handlers.CodePaymentProvider},
		{name: "internal", bookingID: "1", body: `{}`, err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.bookingID, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}
