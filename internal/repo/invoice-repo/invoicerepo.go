package invoicerepo

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

func (r *Repository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	query := `
		INSERT INTO invoices (number, business_id, customer_email, amount, description, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	inv.Status = domain.InvoicePending
	err := r.db.QueryRow(ctx, query, inv.Number, inv.BusinessID, inv.CustomerEmail,
		inv.Amount, inv.Description, inv.Status).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		zap.L().Error("can't create invoice", zap.Error(err))
		return nil, err
	}
	return inv, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Invoice, error) {
	query := `
        SELECT id, number, business_id, customer_email, amount, description, status, created_at
        FROM invoices
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var inv domain.Invoice
	err := row.Scan(&inv.ID, &inv.Number, &inv.BusinessID, &inv.CustomerEmail,
		&inv.Amount, &inv.Description, &inv.Status, &inv.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get invoice", zap.Error(err))
		return nil, err
	}
	return &inv, nil
}

func (r *Repository) ListByBusiness(ctx context.Context, businessID int) ([]domain.Invoice, error) {
	query := `
        SELECT id, number, business_id, customer_email, amount, description, status, created_at
        FROM invoices
        WHERE business_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		zap.L().Error("failed to fetch invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanInvoices(rows)
}

func (r *Repository) ListPendingForCustomer(ctx context.Context, email string) ([]domain.Invoice, error) {
	query := `
        SELECT id, number, business_id, customer_email, amount, description, status, created_at
        FROM invoices
        WHERE customer_email = $1 AND status = $2
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, email, domain.InvoicePending)
	if err != nil {
		zap.L().Error("failed to fetch pending invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanInvoices(rows)
}

func (r *Repository) MarkPaid(ctx context.Context, id int) error {
	query := `
		UPDATE invoices
		SET status = $1
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, domain.InvoicePaid, id)
	if err != nil {
		zap.L().Error("failed to mark invoice paid", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanInvoices(rows pgx.Rows) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		err := rows.Scan(&inv.ID, &inv.Number, &inv.BusinessID, &inv.CustomerEmail,
			&inv.Amount, &inv.Description, &inv.Status, &inv.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}
