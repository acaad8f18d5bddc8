package loans

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/revpay/wallet/internal/domain"
	"github.com/revpay/wallet/internal/dto"
	"github.com/revpay/wallet/pkg/auth"
	"github.com/revpay/wallet/pkg/utils"
)

type Service interface {
	Apply(ctx context.Context, userID int, amount decimal.Decimal, reason string) (*domain.Loan, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Loan, error)
}

type LoanHandler struct {
	loanService Service
}

func New(loanService Service) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
	}
}

// Apply godoc
//
//	@Summary		Apply for a loan
//	@Description	File a loan application for the authenticated user
//	@Tags			Loans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplyLoanDTO	true	"Loan application payload"
//	@Success		200		{object}	dto.LoanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/loans [post]
func (h *LoanHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ApplyLoanDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount.Sign() <= 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "loan amount must be positive")
		return
	}

	loan, err := h.loanService.Apply(r.Context(), userID, req.Amount, req.Reason)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(loan))
}

// List godoc
//
//	@Summary		List loan applications
//	@Description	Loan applications filed by the authenticated user
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LoanResponseDTO
//	@Success		204	{object}	utils.Response	"No loan applications"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/loans [get]
func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	loans, err := h.loanService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(loans) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No loan applications found")
		return
	}

	response := make([]dto.LoanResponseDTO, len(loans))
	for i, loan := range loans {
		response[i] = toDTO(&loan)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toDTO(loan *domain.Loan) dto.LoanResponseDTO {
	return dto.LoanResponseDTO{
		ID:        loan.ID,
		Amount:    loan.Amount,
		Reason:    loan.Reason,
		Status:    string(loan.Status),
		AppliedAt: loan.AppliedAt,
	}
}
