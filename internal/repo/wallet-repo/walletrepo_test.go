package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/revpay/wallet/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:   "Valid userID returns wallet",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "balance"}).
					AddRow(1, 1, decimal.NewFromFloat(100.50))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, balance`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Wallet{
				ID:      1,
				UserID:  1,
				Balance: decimal.NewFromFloat(100.50),
			},
		},
		{
			name:   "Non-existing userID returns nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, balance`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, balance`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:   "Successfully creates wallet",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallets (user_id, balance)`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "balance"}).
						AddRow(1, 1, decimal.Zero),
					)
			},
			expectErr: false,
			result: &domain.Wallet{
				ID:      1,
				UserID:  1,
				Balance: decimal.Zero,
			},
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallets (user_id, balance)`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.Create(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Debit(t *testing.T) {
	repo, mock := NewMock(t)
	amount := decimal.NewFromFloat(25.00)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		ok        bool
	}{
		{
			name:   "Covered balance is debited",
			userID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET balance = balance - $1`)).
					WithArgs(amount, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			ok: true,
		},
		{
			name:   "Insufficient balance touches no row",
			userID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET balance = balance - $1`)).
					WithArgs(amount, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			ok: false,
		},
		{
			name:   "Unknown wallet touches no row",
			userID: 99,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET balance = balance - $1`)).
					WithArgs(amount, 99).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			ok: false,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET balance = balance - $1`)).
					WithArgs(amount, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			ok:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			ok, err := repo.Debit(context.Background(), tt.userID, amount)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestRepository_Credit(t *testing.T) {
	repo, mock := NewMock(t)
	amount := decimal.NewFromFloat(25.00)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		ok        bool
	}{
		{
			name:   "Existing wallet is credited",
			userID: 2,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET balance = balance + $1`)).
					WithArgs(amount, 2).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			ok: true,
		},
		{
			name:   "Unknown wallet touches no row",
			userID: 99,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET balance = balance + $1`)).
					WithArgs(amount, 99).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			ok: false,
		},
		{
			name:   "Database error",
			userID: 2,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET balance = balance + $1`)).
					WithArgs(amount, 2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			ok:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			ok, err := repo.Credit(context.Background(), tt.userID, amount)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.ok, ok)
		})
	}
}
