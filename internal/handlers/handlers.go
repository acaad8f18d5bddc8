package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/revpay/wallet/docs"
	authhandlers "github.com/revpay/wallet/internal/handlers/auth"
	cardhandlers "github.com/revpay/wallet/internal/handlers/cards"
	invoicehandlers "github.com/revpay/wallet/internal/handlers/invoices"
	loanhandlers "github.com/revpay/wallet/internal/handlers/loans"
	requesthandlers "github.com/revpay/wallet/internal/handlers/requests"
	wallethandlers "github.com/revpay/wallet/internal/handlers/wallet"
	"github.com/revpay/wallet/internal/service"
	"github.com/revpay/wallet/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Incoming(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Decline(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
}

type LoanHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type CardHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	WalletHandler  WalletHandler
	RequestHandler RequestHandler
	InvoiceHandler InvoiceHandler
	LoanHandler    LoanHandler
	CardHandler    CardHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		WalletHandler:  wallethandlers.New(s.LedgerService, s.AuthService, s.CardService),
		RequestHandler: requesthandlers.New(s.RequestService, s.AuthService),
		InvoiceHandler: invoicehandlers.New(s.InvoiceService),
		LoanHandler:    loanhandlers.New(s.LoanService),
		CardHandler:    cardhandlers.New(s.CardService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Delete("/", h.AuthHandler.Delete)
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetBalance)
				r.Post("/deposit", h.WalletHandler.Deposit)
			})
			r.Post("/transfer", h.WalletHandler.Transfer)
			r.Get("/transactions", h.WalletHandler.GetHistory)
			r.Route("/requests", func(r chi.Router) {
				r.Post("/", h.RequestHandler.Create)
				r.Get("/", h.RequestHandler.Incoming)
				r.Post("/{id}/accept", h.RequestHandler.Accept)
				r.Post("/{id}/decline", h.RequestHandler.Decline)
			})
			r.Route("/invoices", func(r chi.Router) {
				r.Post("/", h.InvoiceHandler.Create)
				r.Get("/", h.InvoiceHandler.ListMine)
				r.Get("/pending", h.InvoiceHandler.ListPending)
				r.Post("/{id}/pay", h.InvoiceHandler.Pay)
			})
			r.Route("/loans", func(r chi.Router) {
				r.Post("/", h.LoanHandler.Apply)
				r.Get("/", h.LoanHandler.List)
			})
			r.Route("/cards", func(r chi.Router) {
				r.Post("/", h.CardHandler.Add)
				r.Get("/", h.CardHandler.List)
				r.Delete("/{id}", h.CardHandler.Delete)
			})
		})
	})

	return r
}
