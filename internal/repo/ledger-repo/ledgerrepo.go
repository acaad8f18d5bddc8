package ledgerrepo

import (
	"context"
	"fmt"

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

// Append inserts one immutable ledger row. The timestamp is assigned by the
// store at write time. Rows are never updated or deleted.
func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO transactions (sender_id, receiver_id, amount, kind, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, entry.SenderID, entry.ReceiverID, entry.Amount, entry.Kind, entry.Status).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, sender_id, receiver_id, amount, kind, status, created_at
        FROM transactions
        WHERE sender_id = $1 OR receiver_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.SenderID, &e.ReceiverID, &e.Amount, &e.Kind, &e.Status, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger entry row", zap.Error(err))
			return nil, err
		}
		if !e.Kind.Valid() || !e.Status.Valid() {
			zap.L().Error("corrupt ledger entry",
				zap.Int("id", e.ID), zap.String("kind", string(e.Kind)), zap.String("status", string(e.Status)))
			return nil, fmt.Errorf("ledger entry %d has unrecognized kind %q or status %q", e.ID, e.Kind, e.Status)
		}
		entries = append(entries, e)
	}

	return entries, nil
}
