package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RolePersonal Role = "PERSONAL"
	RoleBusiness Role = "BUSINESS"
)

func (r Role) Valid() bool {
	return r == RolePersonal || r == RoleBusiness
}

// TxnKind is the kind of a ledger entry. Values outside the closed set are a
// data-integrity error at read time, never silently defaulted.
type TxnKind string

const (
	KindDeposit  TxnKind = "DEPOSIT"
	KindTransfer TxnKind = "TRANSFER"
)

func (k TxnKind) Valid() bool {
	return k == KindDeposit || k == KindTransfer
}

type TxnStatus string

// Only SUCCESS is ever written: failed movements roll back and leave no row.
const StatusSuccess TxnStatus = "SUCCESS"

func (s TxnStatus) Valid() bool {
	return s == StatusSuccess
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestDeclined RequestStatus = "DECLINED"
)

func (s RequestStatus) Valid() bool {
	return s == RequestPending || s == RequestAccepted || s == RequestDeclined
}

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "PENDING"
	InvoicePaid    InvoiceStatus = "PAID"
)

func (s InvoiceStatus) Valid() bool {
	return s == InvoicePending || s == InvoicePaid
}

type LoanStatus string

const (
	LoanPending  LoanStatus = "PENDING"
	LoanApproved LoanStatus = "APPROVED"
	LoanRejected LoanStatus = "REJECTED"
)

func (s LoanStatus) Valid() bool {
	return s == LoanPending || s == LoanApproved || s == LoanRejected
}

type User struct {
	ID             int       `db:"id"`
	Email          string    `db:"email"`
	PhoneNumber    string    `db:"phone_number"`
	PasswordHash   string    `db:"password_hash"`
	TransactionPIN string    `db:"transaction_pin"`
	FullName       string    `db:"full_name"`
	Role           Role      `db:"role"`
	CreatedAt      time.Time `db:"created_at"`
}

type Wallet struct {
	ID      int             `db:"id"`
	UserID  int             `db:"user_id"`
	Balance decimal.Decimal `db:"balance"`
}

// LedgerEntry is immutable once written. For a deposit, sender and receiver
// are the same account.
type LedgerEntry struct {
	ID         int             `db:"id"`
	SenderID   int             `db:"sender_id"`
	ReceiverID int             `db:"receiver_id"`
	Amount     decimal.Decimal `db:"amount"`
	Kind       TxnKind         `db:"kind"`
	Status     TxnStatus       `db:"status"`
	CreatedAt  time.Time       `db:"created_at"`
}

type PaymentRequest struct {
	ID          int             `db:"id"`
	RequesterID int             `db:"requester_id"`
	PayerID     int             `db:"payer_id"`
	Amount      decimal.Decimal `db:"amount"`
	Status      RequestStatus   `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Invoice struct {
	ID            int             `db:"id"`
	Number        string          `db:"number"`
	BusinessID    int             `db:"business_id"`
	CustomerEmail string          `db:"customer_email"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Status        InvoiceStatus   `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Loan struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	Amount    decimal.Decimal `db:"amount"`
	Reason    string          `db:"reason"`
	Status    LoanStatus      `db:"status"`
	AppliedAt time.Time       `db:"applied_at"`
}

type PaymentMethod struct {
	ID         int       `db:"id"`
	UserID     int       `db:"user_id"`
	CardNumber string    `db:"card_number"`
	CardType   string    `db:"card_type"`
	ExpiresAt  time.Time `db:"expires_at"`
}
