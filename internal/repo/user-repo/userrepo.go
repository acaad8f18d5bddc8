package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/revpay/wallet/internal/domain"
	"github.com/revpay/wallet/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, email, phone_number, password_hash, transaction_pin, full_name, role, created_at
        FROM users
        WHERE email = $1
    `
	row := r.db.QueryRow(ctx, query, email)
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PhoneNumber, &user.PasswordHash,
		&user.TransactionPIN, &user.FullName, &user.Role, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find user by email", zap.Error(err))
		return nil, err
	}
	if !user.Role.Valid() {
		zap.L().Warn("unrecognized role stored for user", zap.String("email", email), zap.String("role", string(user.Role)))
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (email, phone_number, password_hash, transaction_pin, full_name, role)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, user.Email, user.PhoneNumber, user.PasswordHash,
		user.TransactionPIN, user.FullName, user.Role).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Delete removes the user and every dependent row in one transaction.
// Dependents go first so the user row never dangles references.
func (r *Repository) Delete(ctx context.Context, userID int) error {
	steps := []string{
		`DELETE FROM payment_methods WHERE user_id = $1`,
		`DELETE FROM payment_requests WHERE requester_id = $1 OR payer_id = $1`,
		`DELETE FROM invoices WHERE business_id = $1`,
		`DELETE FROM transactions WHERE sender_id = $1 OR receiver_id = $1`,
		`DELETE FROM loans WHERE user_id = $1`,
		`DELETE FROM wallets WHERE user_id = $1`,
		`DELETE FROM users WHERE id = $1`,
	}
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, query := range steps {
			if _, err := r.db.Exec(ctx, query, userID); err != nil {
				zap.L().Error("failed to delete user data", zap.Int("userID", userID), zap.Error(err))
				return err
			}
		}
		return nil
	})
	return err
}
