package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BalanceResponseDTO struct {
	Current decimal.Decimal `json:"current" example:"500.50"`
}

type DepositRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"100.00"`
	CardID int             `json:"card_id" example:"1"`
}

type TransferRequestDTO struct {
	ToEmail string          `json:"to_email" example:"bob@example.com"`
	Amount  decimal.Decimal `json:"amount" example:"200.00"`
}

type LedgerEntryResponseDTO struct {
	ID         int             `json:"id" example:"10"`
	SenderID   int             `json:"sender_id" example:"1"`
	ReceiverID int             `json:"receiver_id" example:"2"`
	Amount     decimal.Decimal `json:"amount" example:"200.00"`
	Kind       string          `json:"kind" example:"TRANSFER"`
	Status     string          `json:"status" example:"SUCCESS"`
	CreatedAt  time.Time       `json:"created_at" example:"2024-05-01T12:00:00Z"`
}
