package invoices

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/revpay/wallet/internal/domain"
	"github.com/revpay/wallet/internal/dto"
	"github.com/revpay/wallet/internal/service/invoiceservice"
	"github.com/revpay/wallet/internal/service/ledgerservice"
	"github.com/revpay/wallet/pkg/auth"
	"github.com/revpay/wallet/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, businessID int, customerEmail string, amount decimal.Decimal, description string) (*domain.Invoice, error)
	ListByBusiness(ctx context.Context, businessID int) ([]domain.Invoice, error)
	PendingForCustomer(ctx context.Context, email string) ([]domain.Invoice, error)
	Pay(ctx context.Context, invoiceID, customerID int, customerEmail string) error
}

type InvoiceHandler struct {
	invoiceService Service
}

func New(invoiceService Service) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// Create godoc
//
//	@Summary		Issue an invoice
//	@Description	Business accounts bill a customer by email
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateInvoiceDTO	true	"Invoice payload"
//	@Success		200		{object}	dto.InvoiceResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not a business account"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/invoices [post]
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role, _ := r.Context().Value(auth.RoleKey).(string)
	if domain.Role(role) != domain.RoleBusiness {
		utils.RespondWithError(w, http.StatusForbidden, "Only business accounts can issue invoices")
		return
	}

	var req dto.CreateInvoiceDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := h.invoiceService.Create(r.Context(), userID, req.CustomerEmail, req.Amount, req.Description)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(inv))
}

// ListMine godoc
//
//	@Summary		List issued invoices
//	@Description	Invoices issued by the authenticated business account
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InvoiceResponseDTO
//	@Success		204	{object}	utils.Response	"No invoices"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/invoices [get]
func (h *InvoiceHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	list, err := h.invoiceService.ListByBusiness(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondInvoices(w, list)
}

// ListPending godoc
//
//	@Summary		List payable invoices
//	@Description	Pending invoices addressed to the authenticated user's email
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InvoiceResponseDTO
//	@Success		204	{object}	utils.Response	"No pending invoices"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/invoices/pending [get]
func (h *InvoiceHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	email, _ := r.Context().Value(auth.EmailKey).(string)

	list, err := h.invoiceService.PendingForCustomer(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondInvoices(w, list)
}

// Pay godoc
//
//	@Summary		Pay an invoice
//	@Description	Settle the invoice; the transfer commits before the invoice flips to PAID
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Invoice ID"
//	@Success		200	{string}	string	"Invoice paid"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient funds"
//	@Failure		404	{object}	utils.Response	"Invoice not found"
//	@Failure		409	{object}	utils.Response	"Invoice is not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/invoices/{id}/pay [post]
func (h *InvoiceHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid invoice id")
		return
	}

	email, _ := r.Context().Value(auth.EmailKey).(string)

	err = h.invoiceService.Pay(r.Context(), id, userID, email)
	if err != nil {
		switch {
		case errors.Is(err, invoiceservice.ErrInvoiceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, invoiceservice.ErrInvoiceNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, ledgerservice.ErrInvalidAmount),
			errors.Is(err, ledgerservice.ErrSameAccount),
			errors.Is(err, ledgerservice.ErrUnknownReceiver):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "invoice paid")
}

func respondInvoices(w http.ResponseWriter, list []domain.Invoice) {
	if len(list) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No invoices found")
		return
	}
	response := make([]dto.InvoiceResponseDTO, len(list))
	for i, inv := range list {
		response[i] = toDTO(&inv)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toDTO(inv *domain.Invoice) dto.InvoiceResponseDTO {
	return dto.InvoiceResponseDTO{
		ID:            inv.ID,
		Number:        inv.Number,
		BusinessID:    inv.BusinessID,
		CustomerEmail: inv.CustomerEmail,
		Amount:        inv.Amount,
		Description:   inv.Description,
		Status:        string(inv.Status),
		CreatedAt:     inv.CreatedAt,
	}
}
