package loanservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/revpay/wallet/internal/domain"
)

type LoanRepo interface {
	Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Loan, error)
}

// Service keeps loan applications. Record-keeping only: approval and payout
// are manual back-office steps outside this service.
type Service struct {
	loanRepo LoanRepo
}

func New(loanRepo LoanRepo) *Service {
	return &Service{
		loanRepo: loanRepo,
	}
}

func (s *Service) Apply(ctx context.Context, userID int, amount decimal.Decimal, reason string) (*domain.Loan, error) {
	loan := &domain.Loan{
		UserID: userID,
		Amount: amount,
		Reason: reason,
	}
	created, err := s.loanRepo.Create(ctx, loan)
	if err != nil {
		zap.L().Error("failed to create loan application", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch loans", zap.Error(err))
		return nil, err
	}
	return loans, nil
}
