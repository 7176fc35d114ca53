package create_payment_intent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ChefReservationService/pkg/logger"
	"github.com/m04kA/SMC-ChefReservationService/pkg/retry"
)

var client = domain.Actor{UserID: 100, Role: domain.RoleClient}

type memRepo struct {
	booking   domain.Booking
	conflicts int
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if id != r.booking.ID {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b := r.booking
	return &b, nil
}

func (r *memRepo) Update(_ context.Context, b *domain.Booking) error {
	if r.conflicts > 0 {
		r.conflicts--
		return bookingRepo.ErrVersionConflict
	}
	r.booking = *b
	return nil
}

type fakePayments struct {
	amounts []float64
	err     error
}

func (p *fakePayments) CreateIntent(_ context.Context, _ int64, amount float64) (string, error) {
	p.amounts = append(p.amounts, amount)
	if p.err != nil {
		return "", p.err
	}
	return "pi_123", nil
}

func newUseCase(status domain.BookingStatus, captured float64) (*UseCase, *memRepo, *fakePayments) {
	repo := &memRepo{booking: domain.Booking{
		ID: 1, ClientID: 100, ChefID: 7, Status: status, TotalAmount: 180,
		Payment: domain.Payment{Status: domain.PaymentStatusUnpaid, DepositAmount: 54, CapturedAmount: captured},
	}}
	payments := &fakePayments{}
	uc := NewUseCase(repo, payments, retry.Budget{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}, logger.NewNop())
	return uc, repo, payments
}

func TestExecute_Amounts(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		captured float64
		want     float64
	}{
		{name: "deposit", kind: KindDeposit, want: 54},
		{name: "full", kind: KindFull, want: 180},
		{name: "balance after deposit", kind: KindFull, captured: 54, want: 126},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, payments := newUseCase(domain.BookingStatusConfirmed, tt.captured)

			resp, err := uc.Execute(context.Background(), &Request{Actor: client, BookingID: 1, Kind: tt.kind})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Amount)
			assert.Equal(t, "pi_123", resp.IntentID)
			assert.Equal(t, []float64{tt.want}, payments.amounts)
			require.NotNil(t, repo.booking.Payment.IntentID)
			assert.Equal(t, "pi_123", *repo.booking.Payment.IntentID)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.BookingStatus
		captured float64
		req      Request
		payErr   error
		wantErr  error
	}{
		{name: "deposit already paid", status: domain.BookingStatusPending, captured: 54, req: Request{Actor: client, BookingID: 1, Kind: KindDeposit}, wantErr: ErrNothingToPay},
		{name: "completed booking", status: domain.BookingStatusCompleted, req: Request{Actor: client, BookingID: 1, Kind: KindFull}, wantErr: ErrNotPayable},
		{name: "chef cannot pay", status: domain.BookingStatusPending, req: Request{Actor: domain.Actor{UserID: 100, Role: domain.RoleChef}, BookingID: 1, Kind: KindFull}, wantErr: ErrAccessDenied},
		{name: "other client", status: domain.BookingStatusPending, req: Request{Actor: domain.Actor{UserID: 101, Role: domain.RoleClient}, BookingID: 1, Kind: KindFull}, wantErr: ErrAccessDenied},
		{name: "unknown kind", status: domain.BookingStatusPending, req: Request{Actor: client, BookingID: 1, Kind: "tip"}, wantErr: ErrInvalidInput},
		{name: "not found", status: domain.BookingStatusPending, req: Request{Actor: client, BookingID: 2, Kind: KindFull}, wantErr: ErrBookingNotFound},
		{name: "provider down", status: domain.BookingStatusPending, req: Request{Actor: client, BookingID: 1, Kind: KindFull}, payErr: errors.New("503"), wantErr: ErrPaymentProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, payments := newUseCase(tt.status, tt.captured)
			payments.err = tt.payErr

			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.booking.Payment.IntentID)
		})
	}
}

func TestExecute_StoresIntentAfterVersionConflict(t *testing.T) {
	uc, repo, payments := newUseCase(domain.BookingStatusPending, 0)
	repo.conflicts = 1

	_, err := uc.Execute(context.Background(), &Request{Actor: client, BookingID: 1, Kind: KindDeposit})
	require.NoError(t, err)
	assert.Len(t, payments.amounts, 1)
	require.NotNil(t, repo.booking.Payment.IntentID)
}
