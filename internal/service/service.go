package service

import (
	"github.com/revpay/wallet/internal/pg"
	"github.com/revpay/wallet/internal/repo"
	"github.com/revpay/wallet/internal/service/authservice"
	"github.com/revpay/wallet/internal/service/cardservice"
	"github.com/revpay/wallet/internal/service/invoiceservice"
	"github.com/revpay/wallet/internal/service/ledgerservice"
	"github.com/revpay/wallet/internal/service/loanservice"
	"github.com/revpay/wallet/internal/service/requestservice"
	pkgauth "github.com/revpay/wallet/pkg/auth"
)

type Services struct {
	AuthService    *authservice.Service
	LedgerService  *ledgerservice.Service
	RequestService *requestservice.Service
	InvoiceService *invoiceservice.Service
	LoanService    *loanservice.Service
	CardService    *cardservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	ledgerService := ledgerservice.New(repo.WalletRepo, repo.LedgerRepo, txManager)
	authService := authservice.New(repo.UserRepo, ledgerService, &pkgauth.HashService{}, &pkgauth.JWTService{})
	requestService := requestservice.New(repo.RequestRepo, ledgerService)
	invoiceService := invoiceservice.New(repo.InvoiceRepo, ledgerService)
	loanService := loanservice.New(repo.LoanRepo)
	cardService := cardservice.New(repo.CardRepo)

	return &Services{
		AuthService:    authService,
		LedgerService:  ledgerService,
		RequestService: requestService,
		InvoiceService: invoiceService,
		LoanService:    loanService,
		CardService:    cardService,
	}
}
