package cardservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/revpay/wallet/internal/domain"
	"github.com/revpay/wallet/pkg/validate"
)

type CardRepo interface {
	Create(ctx context.Context, card *domain.PaymentMethod) (*domain.PaymentMethod, error)
	GetForUser(ctx context.Context, id, userID int) (*domain.PaymentMethod, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.PaymentMethod, error)
	Delete(ctx context.Context, id, userID int) error
}

var (
	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrCardExpired       = errors.New("card is expired")
	ErrCardNotFound      = errors.New("payment method not found")
)

type Service struct {
	cardRepo CardRepo
}

func New(cardRepo CardRepo) *Service {
	return &Service{
		cardRepo: cardRepo,
	}
}

func (s *Service) Add(ctx context.Context, userID int, number, cardType string, expiresAt time.Time) (*domain.PaymentMethod, error) {
	if !validate.IsLuhn(number) {
		return nil, ErrInvalidCardNumber
	}
	if expiresAt.Before(time.Now()) {
		return nil, ErrCardExpired
	}

	card := &domain.PaymentMethod{
		UserID:     userID,
		CardNumber: number,
		CardType:   cardType,
		ExpiresAt:  expiresAt,
	}
	created, err := s.cardRepo.Create(ctx, card)
	if err != nil {
		zap.L().Error("failed to save payment method", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// GetForUser resolves a card only when it belongs to the user, so a deposit
// can never fund from someone else's instrument.
func (s *Service) GetForUser(ctx context.Context, id, userID int) (*domain.PaymentMethod, error) {
	card, err := s.cardRepo.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	return card, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]domain.PaymentMethod, error) {
	cards, err := s.cardRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch payment methods", zap.Error(err))
		return nil, err
	}
	return cards, nil
}

func (s *Service) Delete(ctx context.Context, id, userID int) error {
	if err := s.cardRepo.Delete(ctx, id, userID); err != nil {
		zap.L().Error("failed to delete payment method", zap.Error(err))
		return err
	}
	return nil
}
