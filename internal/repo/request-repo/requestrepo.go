package requestrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) Create(ctx context.Context, req *domain.PaymentRequest) (*domain.PaymentRequest, error) {
	query := `
		INSERT INTO payment_requests (requester_id, payer_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	req.Status = domain.RequestPending
	err := r.db.QueryRow(ctx, query, req.RequesterID, req.PayerID, req.Amount, req.Status).
		Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		zap.L().Error("can't create payment request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.PaymentRequest, error) {
	query := `
        SELECT id, requester_id, payer_id, amount, status, created_at
        FROM payment_requests
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var req domain.PaymentRequest
	err := row.Scan(&req.ID, &req.RequesterID, &req.PayerID, &req.Amount, &req.Status, &req.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get payment request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

func (r *Repository) ListIncoming(ctx context.Context, payerID int) ([]domain.PaymentRequest, error) {
	query := `
        SELECT id, requester_id, payer_id, amount, status, created_at
        FROM payment_requests
        WHERE payer_id = $1 AND status = $2
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, payerID, domain.RequestPending)
	if err != nil {
		zap.L().Error("failed to fetch incoming requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.PaymentRequest
	for rows.Next() {
		var req domain.PaymentRequest
		err := rows.Scan(&req.ID, &req.RequesterID, &req.PayerID, &req.Amount, &req.Status, &req.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan payment request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.RequestStatus) error {
	query := `
		UPDATE payment_requests
		SET status = $1
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update request status", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
