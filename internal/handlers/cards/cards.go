package cards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/revpay/wallet/internal/domain"
	"github.com/revpay/wallet/internal/dto"
	"github.com/revpay/wallet/internal/service/cardservice"
	"github.com/revpay/wallet/pkg/auth"
	"github.com/revpay/wallet/pkg/utils"
)

type Service interface {
	Add(ctx context.Context, userID int, number, cardType string, expiresAt time.Time) (*domain.PaymentMethod, error)
	ListByUser(ctx context.Context, userID int) ([]domain.PaymentMethod, error)
	Delete(ctx context.Context, id, userID int) error
}

type CardHandler struct {
	cardService Service
}

func New(cardService Service) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// Add godoc
//
//	@Summary		Link a payment card
//	@Description	Register a card for funding deposits; the number must pass the Luhn check
//	@Tags			Cards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddCardDTO	true	"Card payload"
//	@Success		200		{object}	dto.CardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid or expired card"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/cards [post]
func (h *CardHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddCardDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	expiresAt, err := time.Parse("2006-01-02", req.ExpiresAt)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "expires_at must be YYYY-MM-DD")
		return
	}

	card, err := h.cardService.Add(r.Context(), userID, req.Number, req.Type, expiresAt)
	if err != nil {
		switch {
		case errors.Is(err, cardservice.ErrInvalidCardNumber),
			errors.Is(err, cardservice.ErrCardExpired):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(card))
}

// List godoc
//
//	@Summary		List linked cards
//	@Description	Payment cards registered by the authenticated user
//	@Tags			Cards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CardResponseDTO
//	@Success		204	{object}	utils.Response	"No cards"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/cards [get]
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	cards, err := h.cardService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(cards) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No cards found")
		return
	}

	response := make([]dto.CardResponseDTO, len(cards))
	for i, card := range cards {
		response[i] = toDTO(&card)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Delete godoc
//
//	@Summary		Remove a linked card
//	@Description	Delete one of the authenticated user's payment cards
//	@Tags			Cards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Card ID"
//	@Success		200	{object}	utils.Response	"Card removed"
//	@Failure		400	{object}	utils.Response	"Invalid card id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/cards/{id} [delete]
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	if err := h.cardService.Delete(r.Context(), id, userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Card removed"})
}

func toDTO(card *domain.PaymentMethod) dto.CardResponseDTO {
	return dto.CardResponseDTO{
		ID:        card.ID,
		Number:    utils.MaskCardNumber(card.CardNumber),
		Type:      card.CardType,
		ExpiresAt: card.ExpiresAt.Format("2006-01-02"),
	}
}
