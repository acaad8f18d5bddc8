package requestservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/revpay/wallet/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRequestRepo, *MockTransferrer) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestRepo := NewMockRequestRepo(ctrl)
	ledger := NewMockTransferrer(ctrl)
	svc := New(requestRepo, ledger)

	return svc, requestRepo, ledger
}

func TestCreate(t *testing.T) {
	amount := decimal.NewFromFloat(50.00)

	tests := []struct {
		name      string
		mockSetup func(repo *MockRequestRepo)
		expectErr bool
	}{
		{
			name: "Creates pending request",
			mockSetup: func(repo *MockRequestRepo) {
				repo.EXPECT().Create(gomock.Any(), &domain.PaymentRequest{
					RequesterID: 1,
					PayerID:     2,
					Amount:      amount,
				}).Return(&domain.PaymentRequest{
					ID:          10,
					RequesterID: 1,
					PayerID:     2,
					Amount:      amount,
					Status:      domain.RequestPending,
				}, nil)
			},
		},
		{
			name: "Repo error is propagated",
			mockSetup: func(repo *MockRequestRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := NewMock(t)
			tt.mockSetup(repo)

			created, err := svc.Create(context.Background(), 1, 2, amount)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.RequestPending, created.Status)
		})
	}
}

func TestAccept(t *testing.T) {
	amount := decimal.NewFromFloat(50.00)
	pending := func() *domain.PaymentRequest {
		return &domain.PaymentRequest{
			ID:          10,
			RequesterID: 1,
			PayerID:     2,
			Amount:      amount,
			Status:      domain.RequestPending,
		}
	}

	tests := []struct {
		name      string
		payerID   int
		mockSetup func(repo *MockRequestRepo, ledger *MockTransferrer)
		wantErr   error
	}{
		{
			name:    "Transfer settles before the status flips",
			payerID: 2,
			mockSetup: func(repo *MockRequestRepo, ledger *MockTransferrer) {
				repo.EXPECT().GetByID(gomock.Any(), 10).Return(pending(), nil)
				gomock.InOrder(
					ledger.EXPECT().Transfer(gomock.Any(), 2, 1, amount).Return(nil),
					repo.EXPECT().UpdateStatus(gomock.Any(), 10, domain.RequestAccepted).Return(nil),
				)
			},
		},
		{
			name:    "Unknown request",
			payerID: 2,
			mockSetup: func(repo *MockRequestRepo, ledger *MockTransferrer) {
				repo.EXPECT().GetByID(gomock.Any(), 10).Return(nil, nil)
			},
			wantErr: ErrRequestNotFound,
		},
		{
			name:    "Request addressed to someone else",
			payerID: 3,
			mockSetup: func(repo *MockRequestRepo, ledger *MockTransferrer) {
				repo.EXPECT().GetByID(gomock.Any(), 10).Return(pending(), nil)
			},
			wantErr: ErrRequestNotFound,
		},
		{
			name:    "Already settled request",
			payerID: 2,
			mockSetup: func(repo *MockRequestRepo, ledger *MockTransferrer) {
				req := pending()
				req.Status = domain.RequestAccepted
				repo.EXPECT().GetByID(gomock.Any(), 10).Return(req, nil)
			},
			wantErr: ErrRequestNotPending,
		},
		{
			name:    "Failed transfer leaves the request pending",
			payerID: 2,
			mockSetup: func(repo *MockRequestRepo, ledger *MockTransferrer) {
				repo.EXPECT().GetByID(gomock.Any(), 10).Return(pending(), nil)
				ledger.EXPECT().Transfer(gomock.Any(), 2, 1, amount).Return(errors.New("insufficient funds"))
			},
			wantErr: errors.New("insufficient funds"),
		},
		{
			name:    "Failed status write after a committed transfer",
			payerID: 2,
			mockSetup: func(repo *MockRequestRepo, ledger *MockTransferrer) {
				repo.EXPECT().GetByID(gomock.Any(), 10).Return(pending(), nil)
				gomock.InOrder(
					ledger.EXPECT().Transfer(gomock.Any(), 2, 1, amount).Return(nil),
					repo.EXPECT().UpdateStatus(gomock.Any(), 10, domain.RequestAccepted).Return(errors.New("database error")),
				)
			},
			wantErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, ledger := NewMock(t)
			tt.mockSetup(repo, ledger)

			err := svc.Accept(context.Background(), 10, tt.payerID)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDecline(t *testing.T) {
	pending := &domain.PaymentRequest{
		ID:          10,
		RequesterID: 1,
		PayerID:     2,
		Amount:      decimal.NewFromFloat(50.00),
		Status:      domain.RequestPending,
	}

	tests := []struct {
		name      string
		mockSetup func(repo *MockRequestRepo)
		wantErr   error
	}{
		{
			name: "Declines without touching balances",
			mockSetup: func(repo *MockRequestRepo) {
				repo.EXPECT().GetByID(gomock.Any(), 10).Return(pending, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), 10, domain.RequestDeclined).Return(nil)
			},
		},
		{
			name: "Unknown request",
			mockSetup: func(repo *MockRequestRepo) {
				repo.EXPECT().GetByID(gomock.Any(), 10).Return(nil, nil)
			},
			wantErr: ErrRequestNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := NewMock(t)
			tt.mockSetup(repo)

			err := svc.Decline(context.Background(), 10, 2)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIncoming(t *testing.T) {
	svc, repo, _ := NewMock(t)

	expected := []domain.PaymentRequest{
		{ID: 10, RequesterID: 1, PayerID: 2, Amount: decimal.NewFromFloat(50.00), Status: domain.RequestPending},
	}
	repo.EXPECT().ListIncoming(gomock.Any(), 2).Return(expected, nil)

	requests, err := svc.Incoming(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, expected, requests)
}
