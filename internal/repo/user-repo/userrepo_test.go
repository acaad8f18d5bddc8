package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/revpay/wallet/internal/domain"
	"github.com/revpay/wallet/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing email returns user",
			email: "alice@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "phone_number", "password_hash", "transaction_pin", "full_name", "role", "created_at"}).
					AddRow(1, "alice@example.com", "+14155550123", "hash", "pinhash", "Alice Smith", domain.RolePersonal, now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
					WithArgs("alice@example.com").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:             1,
				Email:          "alice@example.com",
				PhoneNumber:    "+14155550123",
				PasswordHash:   "hash",
				TransactionPIN: "pinhash",
				FullName:       "Alice Smith",
				Role:           domain.RolePersonal,
				CreatedAt:      now,
			},
		},
		{
			name:  "Unknown email returns nil",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "alice@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
					WithArgs("alice@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	user := &domain.User{
		Email:          "bob@example.com",
		PhoneNumber:    "+14155550199",
		PasswordHash:   "hash",
		TransactionPIN: "pinhash",
		FullName:       "Bob Jones",
		Role:           domain.RoleBusiness,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, phone_number, password_hash, transaction_pin, full_name, role)`)).
					WithArgs(user.Email, user.PhoneNumber, user.PasswordHash, user.TransactionPIN, user.FullName, user.Role).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, phone_number, password_hash, transaction_pin, full_name, role)`)).
					WithArgs(user.Email, user.PhoneNumber, user.PasswordHash, user.TransactionPIN, user.FullName, user.Role).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.Create(context.Background(), user)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 5, result.ID)
			assert.Equal(t, now, result.CreatedAt)
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Removes user and dependents",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					for _, table := range []string{"payment_methods", "payment_requests", "invoices", "transactions", "loans", "wallets", "users"} {
						mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM ` + table)).
							WithArgs(1).
							WillReturnResult(pgxmock.NewResult("DELETE", 1))
					}
					return fn(ctx)
				})
			},
		},
		{
			name: "Failing step aborts the transaction",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM payment_methods`)).
						WithArgs(1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.Delete(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
