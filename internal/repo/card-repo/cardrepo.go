package cardrepo

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

func (r *Repository) Create(ctx context.Context, card *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	query := `
		INSERT INTO payment_methods (user_id, card_number, card_type, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, card.UserID, card.CardNumber, card.CardType, card.ExpiresAt).
		Scan(&card.ID)
	if err != nil {
		zap.L().Error("can't save payment method", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *Repository) GetForUser(ctx context.Context, id, userID int) (*domain.PaymentMethod, error) {
	query := `
        SELECT id, user_id, card_number, card_type, expires_at
        FROM payment_methods
        WHERE id = $1 AND user_id = $2
    `
	row := r.db.QueryRow(ctx, query, id, userID)
	var card domain.PaymentMethod
	err := row.Scan(&card.ID, &card.UserID, &card.CardNumber, &card.CardType, &card.ExpiresAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get payment method", zap.Error(err))
		return nil, err
	}
	return &card, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.PaymentMethod, error) {
	query := `
        SELECT id, user_id, card_number, card_type, expires_at
        FROM payment_methods
        WHERE user_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch payment methods", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cards []domain.PaymentMethod
	for rows.Next() {
		var card domain.PaymentMethod
		err := rows.Scan(&card.ID, &card.UserID, &card.CardNumber, &card.CardType, &card.ExpiresAt)
		if err != nil {
			zap.L().Error("failed to scan payment method row", zap.Error(err))
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, nil
}

func (r *Repository) Delete(ctx context.Context, id, userID int) error {
	query := `
		DELETE FROM payment_methods
		WHERE id = $1 AND user_id = $2
	`
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("failed to delete payment method", zap.Int("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
