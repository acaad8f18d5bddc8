package loanrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/revpay/wallet/internal/domain"
	"github.com/revpay/wallet/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	query := `
		INSERT INTO loans (user_id, amount, reason, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, applied_at
	`
	loan.Status = domain.LoanPending
	err := r.db.QueryRow(ctx, query, loan.UserID, loan.Amount, loan.Reason, loan.Status).
		Scan(&loan.ID, &loan.AppliedAt)
	if err != nil {
		zap.L().Error("can't create loan application", zap.Error(err))
		return nil, err
	}
	return loan, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Loan, error) {
	query := `
        SELECT id, user_id, amount, reason, status, applied_at
        FROM loans
        WHERE user_id = $1
        ORDER BY applied_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch loans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var loan domain.Loan
		err := rows.Scan(&loan.ID, &loan.UserID, &loan.Amount, &loan.Reason, &loan.Status, &loan.AppliedAt)
		if err != nil {
			zap.L().Error("failed to scan loan row", zap.Error(err))
			return nil, err
		}
		if !loan.Status.Valid() {
			zap.L().Warn("unrecognized loan status stored", zap.Int("id", loan.ID), zap.String("status", string(loan.Status)))
		}
		loans = append(loans, loan)
	}

	return loans, nil
}
