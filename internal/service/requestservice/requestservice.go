package requestservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/revpay/wallet/internal/domain"
)

type RequestRepo interface {
	Create(ctx context.Context, req *domain.PaymentRequest) (*domain.PaymentRequest, error)
	GetByID(ctx context.Context, id int) (*domain.PaymentRequest, error)
	ListIncoming(ctx context.Context, payerID int) ([]domain.PaymentRequest, error)
	UpdateStatus(ctx context.Context, id int, status domain.RequestStatus) error
}

// Transferrer is the ledger engine surface this service settles against.
type Transferrer interface {
	Transfer(ctx context.Context, fromID, toID int, amount decimal.Decimal) error
}

var (
	ErrRequestNotFound   = errors.New("payment request not found")
	ErrRequestNotPending = errors.New("payment request is not pending")
)

type Service struct {
	requestRepo RequestRepo
	ledger      Transferrer
}

func New(requestRepo RequestRepo, ledger Transferrer) *Service {
	return &Service{
		requestRepo: requestRepo,
		ledger:      ledger,
	}
}

func (s *Service) Create(ctx context.Context, requesterID, payerID int, amount decimal.Decimal) (*domain.PaymentRequest, error) {
	req := &domain.PaymentRequest{
		RequesterID: requesterID,
		PayerID:     payerID,
		Amount:      amount,
	}
	created, err := s.requestRepo.Create(ctx, req)
	if err != nil {
		zap.L().Error("failed to create payment request", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Incoming(ctx context.Context, payerID int) ([]domain.PaymentRequest, error) {
	requests, err := s.requestRepo.ListIncoming(ctx, payerID)
	if err != nil {
		zap.L().Error("failed to fetch incoming requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// Accept settles the request: payer pays requester through the ledger engine,
// then the status flips. The transfer and the status update are separate
// commits; once the transfer is in, the status change must never undo it, so
// a failed status write is reported but the money stays moved. The ledger row
// is the source of truth for reconciling that state.
func (s *Service) Accept(ctx context.Context, requestID, payerID int) error {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil || req.PayerID != payerID {
		return ErrRequestNotFound
	}
	if req.Status != domain.RequestPending {
		return ErrRequestNotPending
	}

	if err := s.ledger.Transfer(ctx, payerID, req.RequesterID, req.Amount); err != nil {
		return err
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, domain.RequestAccepted); err != nil {
		zap.L().Error("transfer committed but request still pending",
			zap.Int("requestID", requestID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Decline(ctx context.Context, requestID, payerID int) error {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil || req.PayerID != payerID {
		return ErrRequestNotFound
	}
	if req.Status != domain.RequestPending {
		return ErrRequestNotPending
	}

	return s.requestRepo.UpdateStatus(ctx, requestID, domain.RequestDeclined)
}
