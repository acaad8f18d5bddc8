package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	amount := decimal.NewFromFloat(42.00)

	tests := []struct {
		name      string
		entry     *domain.LedgerEntry
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Transfer entry is appended",
			entry: &domain.LedgerEntry{
				SenderID:   1,
				ReceiverID: 2,
				Amount:     amount,
				Kind:       domain.KindTransfer,
				Status:     domain.StatusSuccess,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions (sender_id, receiver_id, amount, kind, status)`)).
					WithArgs(1, 2, amount, domain.KindTransfer, domain.StatusSuccess).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, now))
			},
		},
		{
			name: "Deposit entry is appended",
			entry: &domain.LedgerEntry{
				SenderID:   1,
				ReceiverID: 1,
				Amount:     amount,
				Kind:       domain.KindDeposit,
				Status:     domain.StatusSuccess,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions (sender_id, receiver_id, amount, kind, status)`)).
					WithArgs(1, 1, amount, domain.KindDeposit, domain.StatusSuccess).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(11, now))
			},
		},
		{
			name: "Database error",
			entry: &domain.LedgerEntry{
				SenderID:   1,
				ReceiverID: 2,
				Amount:     amount,
				Kind:       domain.KindTransfer,
				Status:     domain.StatusSuccess,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions (sender_id, receiver_id, amount, kind, status)`)).
					WithArgs(1, 2, amount, domain.KindTransfer, domain.StatusSuccess).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.Append(context.Background(), tt.entry)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, result)
			assert.NotZero(t, result.ID)
			assert.Equal(t, now, result.CreatedAt)
		})
	}
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	newest := time.Now()
	oldest := newest.Add(-time.Hour)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		expected  []domain.LedgerEntry
	}{
		{
			name:   "Entries come back newest first",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "sender_id", "receiver_id", "amount", "kind", "status", "created_at"}).
					AddRow(2, 1, 2, decimal.NewFromFloat(15.00), domain.KindTransfer, domain.StatusSuccess, newest).
					AddRow(1, 1, 1, decimal.NewFromFloat(100.00), domain.KindDeposit, domain.StatusSuccess, oldest)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE sender_id = $1 OR receiver_id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expected: []domain.LedgerEntry{
				{ID: 2, SenderID: 1, ReceiverID: 2, Amount: decimal.NewFromFloat(15.00), Kind: domain.KindTransfer, Status: domain.StatusSuccess, CreatedAt: newest},
				{ID: 1, SenderID: 1, ReceiverID: 1, Amount: decimal.NewFromFloat(100.00), Kind: domain.KindDeposit, Status: domain.StatusSuccess, CreatedAt: oldest},
			},
		},
		{
			name:   "No entries returns empty list",
			userID: 7,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "sender_id", "receiver_id", "amount", "kind", "status", "created_at"})
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE sender_id = $1 OR receiver_id = $1`)).
					WithArgs(7).
					WillReturnRows(rows)
			},
			expected: nil,
		},
		{
			name:   "Unrecognized kind is rejected",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "sender_id", "receiver_id", "amount", "kind", "status", "created_at"}).
					AddRow(3, 1, 2, decimal.NewFromFloat(5.00), domain.TxnKind("REFUND"), domain.StatusSuccess, newest)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE sender_id = $1 OR receiver_id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: true,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE sender_id = $1 OR receiver_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.ListByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
