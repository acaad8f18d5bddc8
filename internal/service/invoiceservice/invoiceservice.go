package invoiceservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/revpay/wallet/internal/domain"
)

type InvoiceRepo interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	GetByID(ctx context.Context, id int) (*domain.Invoice, error)
	ListByBusiness(ctx context.Context, businessID int) ([]domain.Invoice, error)
	ListPendingForCustomer(ctx context.Context, email string) ([]domain.Invoice, error)
	MarkPaid(ctx context.Context, id int) error
}

type Transferrer interface {
	Transfer(ctx context.Context, fromID, toID int, amount decimal.Decimal) error
}

var (
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrInvoiceNotPending = errors.New("invoice is not pending")
)

type Service struct {
	invoiceRepo InvoiceRepo
	ledger      Transferrer
}

func New(invoiceRepo InvoiceRepo, ledger Transferrer) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		ledger:      ledger,
	}
}

func (s *Service) Create(ctx context.Context, businessID int, customerEmail string, amount decimal.Decimal, description string) (*domain.Invoice, error) {
	inv := &domain.Invoice{
		Number:        uuid.NewString(),
		BusinessID:    businessID,
		CustomerEmail: customerEmail,
		Amount:        amount,
		Description:   description,
	}
	created, err := s.invoiceRepo.Create(ctx, inv)
	if err != nil {
		zap.L().Error("failed to create invoice", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) ListByBusiness(ctx context.Context, businessID int) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		zap.L().Error("failed to fetch invoices", zap.Error(err))
		return nil, err
	}
	return invoices, nil
}

func (s *Service) PendingForCustomer(ctx context.Context, email string) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListPendingForCustomer(ctx, email)
	if err != nil {
		zap.L().Error("failed to fetch pending invoices", zap.Error(err))
		return nil, err
	}
	return invoices, nil
}

// Pay settles the invoice through the ledger engine, then marks it PAID.
// Same two-commit contract as payment requests: the status flip follows a
// committed transfer and never rolls it back.
func (s *Service) Pay(ctx context.Context, invoiceID, customerID int, customerEmail string) error {
	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if inv == nil || inv.CustomerEmail != customerEmail {
		return ErrInvoiceNotFound
	}
	if inv.Status != domain.InvoicePending {
		return ErrInvoiceNotPending
	}

	if err := s.ledger.Transfer(ctx, customerID, inv.BusinessID, inv.Amount); err != nil {
		return err
	}

	if err := s.invoiceRepo.MarkPaid(ctx, invoiceID); err != nil {
		zap.L().Error("transfer committed but invoice still pending",
			zap.Int("invoiceID", invoiceID), zap.Error(err))
		return err
	}
	return nil
}
