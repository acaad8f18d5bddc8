package requestrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/revpay/wallet/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	amount := decimal.NewFromFloat(50.00)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "New request starts PENDING",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payment_requests (requester_id, payer_id, amount, status)`)).
					WithArgs(1, 2, amount, domain.RequestPending).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payment_requests (requester_id, payer_id, amount, status)`)).
					WithArgs(1, 2, amount, domain.RequestPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := &domain.PaymentRequest{RequesterID: 1, PayerID: 2, Amount: amount}
			created, err := repo.Create(context.Background(), req)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.RequestPending, created.Status)
			assert.Equal(t, 10, created.ID)
		})
	}
}

func TestRepository_ListIncoming(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "requester_id", "payer_id", "amount", "status", "created_at"}).
		AddRow(10, 1, 2, decimal.NewFromFloat(50.00), domain.RequestPending, now)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE payer_id = $1 AND status = $2`)).
		WithArgs(2, domain.RequestPending).
		WillReturnRows(rows)

	requests, err := repo.ListIncoming(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, domain.RequestPending, requests[0].Status)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		status    domain.RequestStatus
		mockSetup func()
		wantErr   error
	}{
		{
			name:   "Status flips to ACCEPTED",
			status: domain.RequestAccepted,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE payment_requests`)).
					WithArgs(domain.RequestAccepted, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:   "Unknown request id",
			status: domain.RequestDeclined,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE payment_requests`)).
					WithArgs(domain.RequestDeclined, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: pgx.ErrNoRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.UpdateStatus(context.Background(), 10, tt.status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
