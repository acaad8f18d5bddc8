package requests

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
	"github.com/revpay/wallet/internal/service/authservice"
	"github.com/revpay/wallet/internal/service/ledgerservice"
	"github.com/revpay/wallet/internal/service/requestservice"
	"github.com/revpay/wallet/pkg/auth"
	"github.com/revpay/wallet/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, requesterID, payerID int, amount decimal.Decimal) (*domain.PaymentRequest, error)
	Incoming(ctx context.Context, payerID int) ([]domain.PaymentRequest, error)
	Accept(ctx context.Context, requestID, payerID int) error
	Decline(ctx context.Context, requestID, payerID int) error
}

type Identity interface {
	ResolveAccountID(ctx context.Context, email string) (int, error)
}

type RequestHandler struct {
	requestService Service
	identity       Identity
}

func New(requestService Service, identity Identity) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
		identity:       identity,
	}
}

// Create godoc
//
//	@Summary		Request a payment
//	@Description	Ask another user for money; the request stays pending until accepted or declined
//	@Tags			Requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRequestDTO	true	"Payment request payload"
//	@Success		200		{object}	dto.PaymentRequestResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Payer not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/requests [post]
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payerID, err := h.identity.ResolveAccountID(r.Context(), req.PayerEmail)
	if err != nil {
		if errors.Is(err, authservice.ErrUnknownUser) {
			utils.RespondWithError(w, http.StatusNotFound, "Payer not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	created, err := h.requestService.Create(r.Context(), userID, payerID, req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(created))
}

// Incoming godoc
//
//	@Summary		List incoming payment requests
//	@Description	Pending requests where the authenticated user is the payer
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentRequestResponseDTO
//	@Success		204	{object}	utils.Response	"No pending requests"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/requests [get]
func (h *RequestHandler) Incoming(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	list, err := h.requestService.Incoming(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(list) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No pending requests")
		return
	}

	response := make([]dto.PaymentRequestResponseDTO, len(list))
	for i, req := range list {
		response[i] = toDTO(&req)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Accept godoc
//
//	@Summary		Accept a payment request
//	@Description	Pay the requester; the transfer commits before the request flips to ACCEPTED
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Request ID"
//	@Success		200	{string}	string	"Request accepted"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient funds"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request is not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/requests/{id}/accept [post]
func (h *RequestHandler) Accept(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	err = h.requestService.Accept(r.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, requestservice.ErrRequestNotPending):
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
	utils.RespondWithJSON(w, http.StatusOK, "request accepted")
}

// Decline godoc
//
//	@Summary		Decline a payment request
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Request ID"
//	@Success		200	{string}	string	"Request declined"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request is not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/requests/{id}/decline [post]
func (h *RequestHandler) Decline(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	err = h.requestService.Decline(r.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, requestservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, requestservice.ErrRequestNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "request declined")
}

func toDTO(req *domain.PaymentRequest) dto.PaymentRequestResponseDTO {
	return dto.PaymentRequestResponseDTO{
		ID:          req.ID,
		RequesterID: req.RequesterID,
		PayerID:     req.PayerID,
		Amount:      req.Amount,
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt,
	}
}
