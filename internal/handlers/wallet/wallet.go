package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/revpay/wallet/internal/domain"
	"github.com/revpay/wallet/internal/dto"
	"github.com/revpay/wallet/internal/service/authservice"
	"github.com/revpay/wallet/internal/service/cardservice"
	"github.com/revpay/wallet/internal/service/ledgerservice"
	"github.com/revpay/wallet/pkg/auth"
	"github.com/revpay/wallet/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Wallet, error)
	Transfer(ctx context.Context, fromID, toID int, amount decimal.Decimal) error
	Deposit(ctx context.Context, userID int, amount decimal.Decimal) error
	History(ctx context.Context, userID int) ([]domain.LedgerEntry, error)
}

// Identity resolves account-holder emails to internal account ids; the
// ledger engine itself never sees an email.
type Identity interface {
	ResolveAccountID(ctx context.Context, email string) (int, error)
}

// Cards verifies the funding instrument used by a deposit.
type Cards interface {
	GetForUser(ctx context.Context, id, userID int) (*domain.PaymentMethod, error)
}

type WalletHandler struct {
	walletService Service
	identity      Identity
	cards         Cards
}

func New(walletService Service, identity Identity, cards Cards) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		identity:      identity,
		cards:         cards,
	}
}

// GetBalance godoc
//
//	@Summary		Get current wallet balance
//	@Description	Retrieve the current balance for the authenticated user
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current: wallet.Balance,
	})
}

// Deposit godoc
//
//	@Summary		Deposit funds
//	@Description	Add funds to the wallet from a stored payment method
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request payload"
//	@Success		200		{string}	string					"Deposit successful"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		422		{object}	utils.Response			"Invalid amount or payment method"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.cards.GetForUser(r.Context(), req.CardID, userID); err != nil {
		if errors.Is(err, cardservice.ErrCardNotFound) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unknown payment method")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	err := h.walletService.Deposit(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, ledgerservice.ErrUnknownAccount):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "deposit successful")
}

// Transfer godoc
//
//	@Summary		Transfer funds
//	@Description	Send funds to another user identified by email
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer request payload"
//	@Success		200		{string}	string					"Transfer successful"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient funds"
//	@Failure		404		{object}	utils.Response			"Recipient not found"
//	@Failure		422		{object}	utils.Response			"Invalid amount or recipient"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/transfer [post]
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	toID, err := h.identity.ResolveAccountID(r.Context(), req.ToEmail)
	if err != nil {
		if errors.Is(err, authservice.ErrUnknownUser) {
			utils.RespondWithError(w, http.StatusNotFound, "Recipient not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	err = h.walletService.Transfer(r.Context(), userID, toID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidAmount),
			errors.Is(err, ledgerservice.ErrSameAccount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, ledgerservice.ErrUnknownReceiver):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "transfer successful")
}

// GetHistory godoc
//
//	@Summary		Get transaction history
//	@Description	Ledger entries touching the authenticated user, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LedgerEntryResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	entries, err := h.walletService.History(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}

	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions found")
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.LedgerEntryResponseDTO{
			ID:         e.ID,
			SenderID:   e.SenderID,
			ReceiverID: e.ReceiverID,
			Amount:     e.Amount,
			Kind:       string(e.Kind),
			Status:     string(e.Status),
			CreatedAt:  e.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
