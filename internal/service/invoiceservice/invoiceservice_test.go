package invoiceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/revpay/wallet/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockInvoiceRepo, *MockTransferrer) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceRepo := NewMockInvoiceRepo(ctrl)
	ledger := NewMockTransferrer(ctrl)
	svc := New(invoiceRepo, ledger)

	return svc, invoiceRepo, ledger
}

func TestCreate(t *testing.T) {
	amount := decimal.NewFromFloat(150.00)

	tests := []struct {
		name      string
		mockSetup func(repo *MockInvoiceRepo)
		expectErr bool
	}{
		{
			name: "Invoice gets a generated number",
			mockSetup: func(repo *MockInvoiceRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
						assert.NotEmpty(t, inv.Number)
						assert.Equal(t, 1, inv.BusinessID)
						assert.Equal(t, "bob@example.com", inv.CustomerEmail)
						inv.ID = 20
						inv.Status = domain.InvoicePending
						return inv, nil
					})
			},
		},
		{
			name: "Repo error is propagated",
			mockSetup: func(repo *MockInvoiceRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := NewMock(t)
			tt.mockSetup(repo)

			created, err := svc.Create(context.Background(), 1, "bob@example.com", amount, "Consulting, April")

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.InvoicePending, created.Status)
		})
	}
}

func TestPay(t *testing.T) {
	amount := decimal.NewFromFloat(150.00)
	pending := func() *domain.Invoice {
		return &domain.Invoice{
			ID:            20,
			Number:        "7a1d6b3c",
			BusinessID:    1,
			CustomerEmail: "bob@example.com",
			Amount:        amount,
			Status:        domain.InvoicePending,
		}
	}

	tests := []struct {
		name      string
		email     string
		mockSetup func(repo *MockInvoiceRepo, ledger *MockTransferrer)
		wantErr   error
	}{
		{
			name:  "Transfer settles before the invoice flips to PAID",
			email: "bob@example.com",
			mockSetup: func(repo *MockInvoiceRepo, ledger *MockTransferrer) {
				repo.EXPECT().GetByID(gomock.Any(), 20).Return(pending(), nil)
				gomock.InOrder(
					ledger.EXPECT().Transfer(gomock.Any(), 2, 1, amount).Return(nil),
					repo.EXPECT().MarkPaid(gomock.Any(), 20).Return(nil),
				)
			},
		},
		{
			name:  "Unknown invoice",
			email: "bob@example.com",
			mockSetup: func(repo *MockInvoiceRepo, ledger *MockTransferrer) {
				repo.EXPECT().GetByID(gomock.Any(), 20).Return(nil, nil)
			},
			wantErr: ErrInvoiceNotFound,
		},
		{
			name:  "Invoice billed to a different email",
			email: "mallory@example.com",
			mockSetup: func(repo *MockInvoiceRepo, ledger *MockTransferrer) {
				repo.EXPECT().GetByID(gomock.Any(), 20).Return(pending(), nil)
			},
			wantErr: ErrInvoiceNotFound,
		},
		{
			name:  "Already paid invoice",
			email: "bob@example.com",
			mockSetup: func(repo *MockInvoiceRepo, ledger *MockTransferrer) {
				inv := pending()
				inv.Status = domain.InvoicePaid
				repo.EXPECT().GetByID(gomock.Any(), 20).Return(inv, nil)
			},
			wantErr: ErrInvoiceNotPending,
		},
		{
			name:  "Failed transfer leaves the invoice pending",
			email: "bob@example.com",
			mockSetup: func(repo *MockInvoiceRepo, ledger *MockTransferrer) {
				repo.EXPECT().GetByID(gomock.Any(), 20).Return(pending(), nil)
				ledger.EXPECT().Transfer(gomock.Any(), 2, 1, amount).Return(errors.New("insufficient funds"))
			},
			wantErr: errors.New("insufficient funds"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, ledger := NewMock(t)
			tt.mockSetup(repo, ledger)

			err := svc.Pay(context.Background(), 20, 2, tt.email)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPendingForCustomer(t *testing.T) {
	svc, repo, _ := NewMock(t)

	expected := []domain.Invoice{
		{ID: 20, BusinessID: 1, CustomerEmail: "bob@example.com", Amount: decimal.NewFromFloat(150.00), Status: domain.InvoicePending},
	}
	repo.EXPECT().ListPendingForCustomer(gomock.Any(), "bob@example.com").Return(expected, nil)

	invoices, err := svc.PendingForCustomer(context.Background(), "bob@example.com")
	assert.NoError(t, err)
	assert.Equal(t, expected, invoices)
}

func TestListByBusiness(t *testing.T) {
	svc, repo, _ := NewMock(t)

	repo.EXPECT().ListByBusiness(gomock.Any(), 1).Return(nil, errors.New("database error"))

	invoices, err := svc.ListByBusiness(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, invoices)
}
