package repo

import (
	"github.com/revpay/wallet/internal/pg"
	cardrepo "github.com/revpay/wallet/internal/repo/card-repo"
	invoicerepo "github.com/revpay/wallet/internal/repo/invoice-repo"
	ledgerrepo "github.com/revpay/wallet/internal/repo/ledger-repo"
	loanrepo "github.com/revpay/wallet/internal/repo/loan-repo"
	requestrepo "github.com/revpay/wallet/internal/repo/request-repo"
	userrepo "github.com/revpay/wallet/internal/repo/user-repo"
	walletrepo "github.com/revpay/wallet/internal/repo/wallet-repo"
	"github.com/revpay/wallet/internal/service/authservice"
	"github.com/revpay/wallet/internal/service/cardservice"
	"github.com/revpay/wallet/internal/service/invoiceservice"
	"github.com/revpay/wallet/internal/service/ledgerservice"
	"github.com/revpay/wallet/internal/service/loanservice"
	"github.com/revpay/wallet/internal/service/requestservice"
)

type Repositories struct {
	UserRepo    authservice.Repo
	WalletRepo  ledgerservice.WalletRepo
	LedgerRepo  ledgerservice.LedgerRepo
	RequestRepo requestservice.RequestRepo
	InvoiceRepo invoiceservice.InvoiceRepo
	LoanRepo    loanservice.LoanRepo
	CardRepo    cardservice.CardRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn, txManager)
	walletRepo := walletrepo.New(conn)
	ledgerRepo := ledgerrepo.New(conn)
	requestRepo := requestrepo.New(conn)
	invoiceRepo := invoicerepo.New(conn)
	loanRepo := loanrepo.New(conn)
	cardRepo := cardrepo.New(conn)

	return &Repositories{
		UserRepo:    userRepo,
		WalletRepo:  walletRepo,
		LedgerRepo:  ledgerRepo,
		RequestRepo: requestRepo,
		InvoiceRepo: invoiceRepo,
		LoanRepo:    loanRepo,
		CardRepo:    cardRepo,
	}
}
