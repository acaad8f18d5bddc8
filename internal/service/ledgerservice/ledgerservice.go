package ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/revpay/wallet/internal/domain"
	"github.com/revpay/wallet/internal/metrics"
	"github.com/revpay/wallet/internal/pg"
)

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	Create(ctx context.Context, userID int) (*domain.Wallet, error)
	Debit(ctx context.Context, userID int, amount decimal.Decimal) (bool, error)
	Credit(ctx context.Context, userID int, amount decimal.Decimal) (bool, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.LedgerEntry, error)
}

type TxManager interface {
	Begin(ctx context.Context, fn pg.TransactionalFn) error
}

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrSameAccount   = errors.New("sender and receiver are the same account")
	// ErrInsufficientFunds covers both a balance too low and an unknown
	// sender: the conditional debit cannot tell them apart, and callers
	// resolve existence through the identity lookup beforehand.
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownReceiver   = errors.New("receiver wallet not found")
	ErrUnknownAccount    = errors.New("wallet not found")
)

// Service moves money between wallets. Every movement runs in exactly one
// transaction: both balances and the ledger row commit together or not at all.
type Service struct {
	walletRepo WalletRepo
	ledgerRepo LedgerRepo
	txManager  TxManager
}

func New(walletRepo WalletRepo, ledgerRepo LedgerRepo, txManager TxManager) *Service {
	return &Service{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
	}
}

// Transfer moves amount from one wallet to another. The debit runs first so
// the only compensation a later failure needs is the transaction rollback;
// the ledger row is written last so it never documents a movement that did
// not fully land in both wallets.
func (s *Service) Transfer(ctx context.Context, fromID, toID int, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		s.count("transfer", ErrInvalidAmount)
		return ErrInvalidAmount
	}
	if fromID == toID {
		s.count("transfer", ErrSameAccount)
		return ErrSameAccount
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.walletRepo.Debit(ctx, fromID, amount)
		if err != nil {
			return fmt.Errorf("debit wallet %d: %w", fromID, err)
		}
		if !ok {
			return ErrInsufficientFunds
		}

		ok, err = s.walletRepo.Credit(ctx, toID, amount)
		if err != nil {
			return fmt.Errorf("credit wallet %d: %w", toID, err)
		}
		if !ok {
			return ErrUnknownReceiver
		}

		_, err = s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			SenderID:   fromID,
			ReceiverID: toID,
			Amount:     amount,
			Kind:       domain.KindTransfer,
			Status:     domain.StatusSuccess,
		})
		if err != nil {
			return fmt.Errorf("append ledger entry: %w", err)
		}
		return nil
	})
	s.count("transfer", err)
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) || errors.Is(err, ErrUnknownReceiver) {
			zap.L().Info("transfer rejected",
				zap.Int("from", fromID), zap.Int("to", toID), zap.Error(err))
		} else {
			zap.L().Error("transfer failed, rolled back",
				zap.Int("from", fromID), zap.Int("to", toID), zap.Error(err))
		}
		return err
	}

	zap.L().Info("transfer completed",
		zap.Int("from", fromID), zap.Int("to", toID), zap.String("amount", amount.String()))
	return nil
}

// Deposit adds funds to a wallet from outside the ledger's closed system.
// Sender and receiver of the ledger row are both the depositing account.
func (s *Service) Deposit(ctx context.Context, userID int, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		s.count("deposit", ErrInvalidAmount)
		return ErrInvalidAmount
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.walletRepo.Credit(ctx, userID, amount)
		if err != nil {
			return fmt.Errorf("credit wallet %d: %w", userID, err)
		}
		if !ok {
			return ErrUnknownAccount
		}

		_, err = s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			SenderID:   userID,
			ReceiverID: userID,
			Amount:     amount,
			Kind:       domain.KindDeposit,
			Status:     domain.StatusSuccess,
		})
		if err != nil {
			return fmt.Errorf("append ledger entry: %w", err)
		}
		return nil
	})
	s.count("deposit", err)
	if err != nil {
		zap.L().Error("deposit failed, rolled back", zap.Int("userID", userID), zap.Error(err))
		return err
	}

	zap.L().Info("deposit completed", zap.Int("userID", userID), zap.String("amount", amount.String()))
	return nil
}

// History returns every ledger entry touching the account, newest first.
// Pure read, re-executed on each call.
func (s *Service) History(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrUnknownAccount
	}
	return wallet, nil
}

func (s *Service) CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) count(operation string, err error) {
	outcome := "success"
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidAmount):
		outcome = "invalid_amount"
	case errors.Is(err, ErrSameAccount):
		outcome = "same_account"
	case errors.Is(err, ErrInsufficientFunds):
		outcome = "insufficient_funds"
	case errors.Is(err, ErrUnknownReceiver):
		outcome = "unknown_receiver"
	case errors.Is(err, ErrUnknownAccount):
		outcome = "unknown_account"
	default:
		outcome = "system_failure"
	}
	metrics.LedgerOperations.WithLabelValues(operation, outcome).Inc()
}
