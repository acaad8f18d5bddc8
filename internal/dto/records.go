package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateRequestDTO struct {
	PayerEmail string          `json:"payer_email" example:"bob@example.com"`
	Amount     decimal.Decimal `json:"amount" example:"50.00"`
}

type PaymentRequestResponseDTO struct {
	ID          int             `json:"id"`
	RequesterID int             `json:"requester_id"`
	PayerID     int             `json:"payer_id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CreateInvoiceDTO struct {
	CustomerEmail string          `json:"customer_email" example:"bob@example.com"`
	Amount        decimal.Decimal `json:"amount" example:"150.00"`
	Description   string          `json:"description" example:"Consulting, April"`
}

type InvoiceResponseDTO struct {
	ID            int             `json:"id"`
	Number        string          `json:"number"`
	BusinessID    int             `json:"business_id"`
	CustomerEmail string          `json:"customer_email"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ApplyLoanDTO struct {
	Amount decimal.Decimal `json:"amount" example:"1000.00"`
	Reason string          `json:"reason" example:"new laptop"`
}

type LoanResponseDTO struct {
	ID        int             `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	Status    string          `json:"status"`
	AppliedAt time.Time       `json:"applied_at"`
}

type AddCardDTO struct {
	Number    string `json:"number" example:"4539148803436467"`
	Type      string `json:"type" example:"VISA"`
	ExpiresAt string `json:"expires_at" example:"2027-09-01"`
}

type CardResponseDTO struct {
	ID        int    `json:"id"`
	Number    string `json:"number"`
	Type      string `json:"type"`
	ExpiresAt string `json:"expires_at"`
}
